package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/revelaction/huric/storage"
	"github.com/revelaction/huric/storage/filesystem"
	"github.com/revelaction/huric/storage/sqlite/zombiezen"
)

// dbExt is the extension of imported datasets
const dbExt = ".db"

// NewDocRepository returns the source of dataset: the directory
// dataDir/dataset, or else the SQLite file dataDir/dataset.db.
func NewDocRepository(p *Pool, dataDir, dataset string) (storage.DocReader, error) {
	path := filepath.Join(dataDir, dataset)

	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return filesystem.NewDocStore(path)
	}

	dbPath := path + dbExt
	info, err := os.Stat(dbPath)
	if err != nil || info.IsDir() {
		return nil, fmt.Errorf("dataset not found: %s", path)
	}

	pool, err := p.Open(dbPath)
	if err != nil {
		return nil, err
	}
	return zombiezen.NewDocStore(pool), nil
}
