package main

import (
	"fmt"

	"github.com/revelaction/huric/storage/sqlite/zombiezen"
	"zombiezen.com/go/sqlite/sqlitex"
)

// Pool holds the read only connection pool of an imported dataset (a .db
// file next to the dataset directories). The database is opened on first
// use, so commands reading an xml dataset directory never touch SQLite.
type Pool struct {
	path string
	p    *sqlitex.Pool
}

// Open returns the pool of the dataset database at path. A command reads a
// single dataset, asking for another one is an error.
func (p *Pool) Open(path string) (*sqlitex.Pool, error) {
	if p.p != nil {
		if path != p.path {
			return nil, fmt.Errorf("dataset database %s already open, cannot open %s", p.path, path)
		}
		return p.p, nil
	}

	pool, err := zombiezen.OpenPool(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset database %s: %w", path, err)
	}

	p.path, p.p = path, pool
	return p.p, nil
}

// Close closes the dataset database, if it was opened.
func (p *Pool) Close() error {
	if p.p == nil {
		return nil
	}
	return p.p.Close()
}
