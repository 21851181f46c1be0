package main

import (
	"fmt"

	"github.com/gosuri/uiprogress"

	"github.com/revelaction/huric/conll"
	"github.com/revelaction/huric/corpus"
	"github.com/revelaction/huric/file"
	"github.com/revelaction/huric/render"
)

type ConvertOptions struct {
	Options

	AllowRoot bool
	JSON      bool
}

// defaultCommand converts the fixed datasets, in order. The first failure
// stops.
func defaultCommand(opts Options, ui UI) error {
	for _, run := range defaultRuns {
		if err := convertCommand(ConvertOptions{Options: opts}, run.Dataset, run.Mode, ui); err != nil {
			return err
		}
	}

	return nil
}

func convertCommand(opts ConvertOptions, dataset, mode string, ui UI) error {
	c := conll.NewConverter()
	c.AllowRoot = opts.AllowRoot

	// stdout only carries the JSON document
	loadOpts, loadUI := opts.Options, ui
	if opts.JSON {
		loadOpts.Quiet = true
		loadUI.Out = ui.Err
	}

	sents, err := loadSentences(loadOpts, dataset, c, loadUI)
	if err != nil {
		return err
	}

	if opts.JSON {
		return render.NewJSONRenderer(ui.Out).Render(sents)
	}

	if err := file.WriteSamples(opts.OutDir, dataset, mode, sents); err != nil {
		return err
	}

	fmt.Fprintf(ui.Out, "✍  %d sentences -> %s\n", len(sents), file.ConllPath(opts.OutDir, dataset, mode))
	return nil
}

// loadSentences converts all docs of dataset, showing the number of files and
// a progress bar.
func loadSentences(opts Options, dataset string, c *conll.Converter, ui UI) ([]conll.Sentence, error) {
	var p Pool
	defer p.Close()

	repo, err := NewDocRepository(&p, opts.DataDir, dataset)
	if err != nil {
		return nil, err
	}

	docs, err := repo.List()
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(ui.Out, "#files: %d\n", len(docs))

	if opts.Quiet || len(docs) == 0 {
		return corpus.ConvertDocs(repo, docs, c, nil)
	}

	// Start progress indicator
	uiprogress.Start()
	bar := uiprogress.AddBar(len(docs))
	bar.AppendCompleted()
	bar.PrependElapsed()
	// Append Doc name to the progress bar
	bar.AppendFunc(func(b *uiprogress.Bar) string {
		if b.Current() == 0 {
			return ""
		}
		return docs[b.Current()-1].Title
	})

	sents, err := corpus.ConvertDocs(repo, docs, c, func(current, total int, name string) {
		bar.Set(current)
	})

	// stop rendering
	uiprogress.Stop()

	return sents, err
}
