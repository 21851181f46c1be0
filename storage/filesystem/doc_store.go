package filesystem

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/revelaction/huric/file"
	sent "github.com/revelaction/huric/sentence"
	"github.com/revelaction/huric/storage"
)

// DocStore reads HuRIC XML docs from a directory. Every regular file in the
// directory is a doc.
type DocStore struct {
	docDir string

	docs []sent.Doc
}

var _ storage.DocRepository = (*DocStore)(nil)

// NewDocStore creates a filesystem document handler.
func NewDocStore(docDir string) (*DocStore, error) {
	// ReadDir returns the entries sorted by filename
	files, err := os.ReadDir(docDir)
	if err != nil {
		return nil, err
	}

	docs := make([]sent.Doc, 0, len(files))
	for _, f := range files {
		if f.IsDir() {
			continue
		}

		docs = append(docs, sent.Doc{Title: f.Name()})
	}

	return &DocStore{
		docDir: docDir,
		docs:   docs,
	}, nil
}

func (h *DocStore) List() ([]sent.Doc, error) {
	return h.docs, nil
}

func (h *DocStore) Read(title string) (sent.Doc, error) {
	for _, d := range h.docs {
		if d.Title == title {
			return file.ReadDoc(filepath.Join(h.docDir, title))
		}
	}

	return sent.Doc{}, fmt.Errorf("doc not found: %s", title)
}

func (h *DocStore) Write(doc sent.Doc) error {
	return fmt.Errorf("read-only storage")
}
