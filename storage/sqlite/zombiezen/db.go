package zombiezen

import (
	"fmt"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// conversion is sequential, one connection per reader is enough
const poolSize = 2

// NewPool creates a SQLite connection pool for the dataset database at
// dbPath, creating the file if needed (WAL mode).
func NewPool(dbPath string) (*sqlitex.Pool, error) {
	return newPool(dbPath, sqlite.OpenReadWrite|sqlite.OpenCreate|sqlite.OpenWAL|sqlite.OpenURI)
}

// OpenPool opens an existing dataset database read only.
func OpenPool(dbPath string) (*sqlitex.Pool, error) {
	return newPool(dbPath, sqlite.OpenReadOnly|sqlite.OpenURI)
}

func newPool(dbPath string, flags sqlite.OpenFlags) (*sqlitex.Pool, error) {
	pool, err := sqlitex.NewPool("file:"+dbPath, sqlitex.PoolOptions{
		Flags:    flags,
		PoolSize: poolSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite pool at %s: %w", dbPath, err)
	}

	return pool, nil
}
