package main

import (
	"fmt"

	"github.com/revelaction/huric/conll"
	"github.com/revelaction/huric/stat"
)

func statCommand(opts Options, dataset string, ui UI) error {
	sents, err := loadSentences(opts, dataset, conll.NewConverter(), ui)
	if err != nil {
		return err
	}

	hdl := stat.NewHandler()
	hdl.Aggregate(sents)

	stats := hdl.Get()
	fmt.Fprintf(ui.Out, "Num sentences %d, num tokens per sentence %d, num lexical unit tokens %d\n", stats.NumSentences, stats.TokensPerSentenceMean, stats.NumLexicalUnits)

	fmt.Fprintln(ui.Out, "\nFrames:")
	for _, c := range stat.Sorted(stats.Frames) {
		fmt.Fprintf(ui.Out, "%6d %s\n", c.N, c.Name)
	}

	fmt.Fprintln(ui.Out, "\nFrame elements:")
	for _, c := range stat.Sorted(stats.FrameElements) {
		fmt.Fprintf(ui.Out, "%6d %s\n", c.N, c.Name)
	}

	return nil
}
