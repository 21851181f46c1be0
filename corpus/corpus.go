// Package corpus converts all the docs of a dataset.
package corpus

import (
	"fmt"

	"github.com/revelaction/huric/conll"
	sent "github.com/revelaction/huric/sentence"
	"github.com/revelaction/huric/storage"
)

// Convert reads every doc of repo in Title order and returns the sentences
// of all their frames. The first error aborts the conversion. cb, if not
// nil, is called before each doc is read.
func Convert(repo storage.DocReader, c *conll.Converter, cb func(current, total int, name string)) ([]conll.Sentence, error) {
	docs, err := repo.List()
	if err != nil {
		return nil, err
	}

	return ConvertDocs(repo, docs, c, cb)
}

// ConvertDocs is Convert over docs already listed from repo. Only the Title
// of each doc is used.
func ConvertDocs(repo storage.DocReader, docs []sent.Doc, c *conll.Converter, cb func(current, total int, name string)) ([]conll.Sentence, error) {
	var results []conll.Sentence
	total := len(docs)
	for i, meta := range docs {
		if cb != nil {
			cb(i+1, total, meta.Title)
		}

		doc, err := repo.Read(meta.Title)
		if err != nil {
			return nil, fmt.Errorf("failed to read doc %s: %w", meta.Title, err)
		}

		sents, err := c.Convert(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to convert doc %s: %w", meta.Title, err)
		}

		results = append(results, sents...)
	}

	return results, nil
}
