package zombiezen

import (
	"context"
	_ "embed"
	"fmt"

	"zombiezen.com/go/sqlite/sqlitex"
)

// docsSQL holds one row per imported HuRIC command, keyed by the file name it
// was imported from.
//
//go:embed sql/docs.sql
var docsSQL string

// CreateDocTables prepares an imported dataset database. It is idempotent, so
// importing into an existing database keeps its docs.
func CreateDocTables(pool *sqlitex.Pool) error {
	conn, err := pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer pool.Put(conn)

	if err := sqlitex.ExecuteScript(conn, docsSQL, nil); err != nil {
		return fmt.Errorf("failed to create docs table: %w", err)
	}

	return nil
}
