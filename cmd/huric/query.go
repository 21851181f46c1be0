package main

import (
	"github.com/revelaction/huric/conll"
	"github.com/revelaction/huric/query"
	"github.com/revelaction/huric/render"
)

type QueryOptions struct {
	Options

	NoColor bool
	Format  string
}

func queryCommand(opts QueryOptions, dataset string, ui UI) error {
	sents, err := loadSentences(opts.Options, dataset, conll.NewConverter(), ui)
	if err != nil {
		return err
	}

	r := render.NewRenderer()
	r.W = ui.Out
	r.HasColor = !opts.NoColor
	r.HasPrefix = true
	r.Format = opts.Format

	return query.NewHandler(sents, r).Run()
}
