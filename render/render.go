package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/revelaction/huric/conll"
)

const (
	Defaultformat = "sentence"
)

var (
	Black   = "\033[1;30m"
	Red     = "\033[1;31m"
	Green   = "\033[1;32m"
	Yellow  = "\033[0;33m"
	Purple  = "\033[1;34m"
	Magenta = "\033[1;35m"
	Teal    = "\033[1;36m"
	Gray    = "\033[0;37m"
	White   = "\033[1;37m"
	Off     = "\033[0m"
	//Yellow256  = "\033[1;38;5;202m"
	Yellow256 = "\033[1;38;5;130m"
	Grey256   = "\033[1;38;5;145m"
	Green256  = "\033[1;38;5;70m"
	ClearLine = "\033[K"
)

// frame element colors, cycled in order of appearance in the sentence
var feColors = []string{Teal, Magenta, Yellow, Purple, Red}

func SupportedFormats() []string {
	return []string{"sentence", "table"}
}

// Conll writes the sentences in CoNLL format: a tab separated line per row,
// each sentence followed by an empty line.
func Conll(w io.Writer, sents []conll.Sentence) error {
	for _, s := range sents {
		for _, r := range s {
			if _, err := io.WriteString(w, r.String()+"\n"); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}

	return nil
}

// Sents writes a line per sentence with the words separated by spaces.
func Sents(w io.Writer, sents []conll.Sentence) error {
	for _, s := range sents {
		if _, err := io.WriteString(w, strings.Join(s.Forms(), " ")+"\n"); err != nil {
			return err
		}
	}

	return nil
}

type Renderer struct {
	W io.Writer

	HasColor bool

	HasPrefix bool

	// Format determines how a sentence is shown
	//
	// sentence: the words of the sentence in one line, lexical unit and
	// frame elements colored
	// table: a line per token with the annotation columns
	Format string
}

func NewRenderer() *Renderer {
	return &Renderer{W: os.Stdout, Format: Defaultformat}
}

// Render shows the sentences in the Renderer Format.
func (r *Renderer) Render(sents []conll.Sentence) {
	for _, s := range sents {
		prefix := ""
		if r.HasPrefix {
			prefix = r.prefix(s)
		}

		switch r.Format {
		case "table":
			fmt.Fprintf(r.W, "%s\n", prefix)
			r.Table(s)
			fmt.Fprintln(r.W)
		default:
			r.Sentence(s, prefix)
		}
	}
}

func (r *Renderer) Sentence(s conll.Sentence, prefix string) {
	fmt.Fprintf(r.W, "%s%s\n", prefix, r.SentenceString(s))
}

// SentenceString returns the words of the sentence. With color, lexical unit
// words are green and each frame element has its own color.
func (r *Renderer) SentenceString(s conll.Sentence) string {
	words := make([]string, 0, len(s))
	colors := map[string]string{}
	for _, row := range s {
		words = append(words, r.colorRow(row, colors))
	}

	return strings.Join(words, " ")
}

func (r *Renderer) colorRow(row conll.Row, colors map[string]string) string {
	if !r.HasColor {
		return row.Form
	}

	if row.IsPredicate() {
		return Green256 + row.Form + Off
	}

	role := Role(row.APred)
	if role == "" {
		return row.Form
	}

	color, ok := colors[role]
	if !ok {
		color = feColors[len(colors)%len(feColors)]
		colors[role] = color
	}

	return color + row.Form + Off
}

// Table writes a line per token with the annotation columns that differ
// from the surface.
func (r *Renderer) Table(s conll.Sentence) {
	for _, row := range s {
		fmt.Fprintf(r.W, "%4s %20q %15q %6s %4s %8s %18s %12s %s\n", row.Id, row.Form, row.Lemma, row.Pos, row.Head, row.DepRel, row.FillPred, row.Pred, row.APred)
	}
}

func (r *Renderer) prefix(s conll.Sentence) string {
	id := conll.Placeholder
	if len(s) > 0 {
		id = s[0].Feat
	}

	framePrefix := "🏷  " + Yellow256 + s.Frame() + Off
	if !r.HasColor {
		framePrefix = "🏷  " + s.Frame()
	}

	return fmt.Sprintf("[%6s %-30s] ✍  ", id, framePrefix)
}

// NextFormat sets the Renderer Format option to a different one, following
// the SupportedFormats() order.
func (r *Renderer) NextFormat() {

	supported := SupportedFormats()
	for i, format := range supported {
		if format == r.Format {
			switch i {
			case len(supported) - 1:
				r.Format = supported[0]
			default:
				r.Format = supported[i+1]
			}

			return
		}
	}
}

func (r *Renderer) NextPrefix() {

	// toggle
	r.HasPrefix = !r.HasPrefix
}

// Role returns the frame element name of an APRED label, or the empty string
// for the Outside label.
func Role(label string) string {
	if label == conll.Outside {
		return ""
	}

	_, role, ok := strings.Cut(label, "-")
	if !ok {
		return ""
	}

	return role
}
