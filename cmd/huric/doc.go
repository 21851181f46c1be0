package main

import (
	"fmt"

	"github.com/revelaction/huric/conll"
	"github.com/revelaction/huric/render"
)

// docCommand lists the docs of dataset when title is empty, otherwise it
// shows the sentences of the frames of the doc.
func docCommand(opts Options, dataset, title string, hasColor bool, ui UI) error {
	var p Pool
	defer p.Close()

	repo, err := NewDocRepository(&p, opts.DataDir, dataset)
	if err != nil {
		return err
	}

	if title == "" {
		docs, err := repo.List()
		if err != nil {
			return err
		}

		for i, d := range docs {
			fmt.Fprintf(ui.Out, "📖 %d %s \n", i, d.Title)
		}

		return nil
	}

	doc, err := repo.Read(title)
	if err != nil {
		return err
	}

	sents, err := conll.NewConverter().Convert(doc)
	if err != nil {
		return err
	}

	r := render.NewRenderer()
	r.W = ui.Out
	r.HasColor = hasColor
	for _, s := range sents {
		prefix := fmt.Sprintf("✍  %s %s ", doc.Id, s.Frame())
		r.Sentence(s, prefix)
		r.Table(s)
		fmt.Fprintln(ui.Out)
	}

	return nil
}
