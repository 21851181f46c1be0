package main

import (
	"fmt"

	"github.com/gosuri/uiprogress"

	"github.com/revelaction/huric/storage/filesystem"
	"github.com/revelaction/huric/storage/sqlite/zombiezen"
)

// importCommand stores every xml doc of dir in the SQLite file db. The file
// is created if needed, docs with the same title are replaced.
func importCommand(opts Options, dir, db string, ui UI) error {
	src, err := filesystem.NewDocStore(dir)
	if err != nil {
		return err
	}

	pool, err := zombiezen.NewPool(db)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := zombiezen.CreateDocTables(pool); err != nil {
		return fmt.Errorf("failed to create docs table: %w", err)
	}

	dst := zombiezen.NewDocStore(pool)

	fmt.Fprintf(ui.Out, "Reading docs from %s...\n", dir)
	docs, err := src.List()
	if err != nil {
		return err
	}

	var bar *uiprogress.Bar
	if !opts.Quiet {
		uiprogress.Start()
		bar = uiprogress.AddBar(len(docs))
		bar.AppendCompleted()
		bar.PrependElapsed()
	}

	stop := func() {
		if bar != nil {
			uiprogress.Stop()
		}
	}

	count := 0
	for _, docMeta := range docs {
		doc, err := src.Read(docMeta.Title)
		if err != nil {
			stop()
			return fmt.Errorf("failed to read doc %s: %w", docMeta.Title, err)
		}

		if err := dst.Write(doc); err != nil {
			stop()
			return fmt.Errorf("failed to write doc %s: %w", docMeta.Title, err)
		}
		count++
		if bar != nil {
			bar.Incr()
		}
	}
	stop()

	fmt.Fprintf(ui.Out, "Successfully imported %d docs from %s to %s\n", count, dir, db)
	return nil
}
