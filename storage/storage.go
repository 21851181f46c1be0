package storage

import (
	sent "github.com/revelaction/huric/sentence"
)

// DocReader defines read operations for document storage
type DocReader interface {
	// List returns the metadata (Title) of all documents, sorted by Title.
	// Content (Tokens, Deps, Frames) is not loaded.
	List() ([]sent.Doc, error)

	// Read returns a document by Title
	Read(title string) (sent.Doc, error)
}

// DocWriter defines write operations for document storage
type DocWriter interface {
	// Write persists a document to storage
	Write(doc sent.Doc) error
}

// DocRepository combines read and write operations
type DocRepository interface {
	DocReader
	DocWriter
}
