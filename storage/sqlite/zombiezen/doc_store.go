package zombiezen

import (
	"context"
	"encoding/json"
	"fmt"

	sent "github.com/revelaction/huric/sentence"
	"github.com/revelaction/huric/storage"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

type DocStore struct {
	pool *sqlitex.Pool
}

var _ storage.DocRepository = (*DocStore)(nil)

func NewDocStore(pool *sqlitex.Pool) *DocStore {
	return &DocStore{pool: pool}
}

func (h *DocStore) List() ([]sent.Doc, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	var docs []sent.Doc
	err = sqlitex.Execute(conn, "SELECT title, command_id FROM docs ORDER BY title", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			docs = append(docs, sent.Doc{
				Title: stmt.ColumnText(0),
				Id:    stmt.ColumnText(1),
			})
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	return docs, nil
}

func (h *DocStore) Read(title string) (sent.Doc, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return sent.Doc{}, err
	}
	defer h.pool.Put(conn)

	var doc sent.Doc
	found := false

	err = sqlitex.Execute(conn, "SELECT data FROM docs WHERE title = ?", &sqlitex.ExecOptions{
		Args: []interface{}{title},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			found = true
			return json.Unmarshal([]byte(stmt.ColumnText(0)), &doc)
		},
	})
	if err != nil {
		return sent.Doc{}, fmt.Errorf("failed to read doc %s: %w", title, err)
	}
	if !found {
		return sent.Doc{}, fmt.Errorf("doc not found: %s", title)
	}

	// stored docs keep the title they were imported with
	doc.Title = title
	return doc, nil
}

// Write inserts the doc, replacing a doc with the same Title.
func (h *DocStore) Write(doc sent.Doc) (err error) {
	if doc.Title == "" {
		return fmt.Errorf("doc %s has no title", doc.Id)
	}

	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer h.pool.Put(conn)

	defer sqlitex.Save(conn)(&err)

	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	err = sqlitex.Execute(conn, "INSERT OR REPLACE INTO docs (title, command_id, data) VALUES (?, ?, ?)", &sqlitex.ExecOptions{
		Args: []interface{}{doc.Title, doc.Id, string(data)},
	})
	if err != nil {
		return fmt.Errorf("failed to insert doc: %w", err)
	}

	return nil
}
