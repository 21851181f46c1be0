// Package conll converts HuRIC docs into CoNLL 2009 sentences.
//
// Each row has 15 columns (see
// http://ufal.mff.cuni.cz/conll2009-st/task-description.html):
//
//	ID FORM LEMMA PLEMMA POS PPOS FEAT PFEAT HEAD PHEAD DEPREL PDEPREL FILLPRED PRED APRED
//
// The predicted columns are copies of the gold ones. FEAT carries the
// sentence (command) id, FILLPRED the lexical unit (lemma.pos), PRED the
// frame name and APRED the frame element label in IOB notation, plus S- for
// single token spans.
package conll

import (
	"errors"
	"fmt"
	"strings"

	sent "github.com/revelaction/huric/sentence"
)

const (
	NumFields = 15

	// Placeholder fills empty columns
	Placeholder = "_"

	// Outside is the label of tokens not in any frame element.
	Outside = "O"

	RootHead   = "0"
	RootDepRel = "ROOT"

	FieldSeparator = "\t"
)

var (
	// ErrUnmappedPos is returned for a lexical unit token whose part of
	// speech has no FrameNet rule.
	ErrUnmappedPos = errors.New("conll: rule not defined for part-of-speech")

	// ErrMissingDependency is returned for a token without incoming
	// dependency edge.
	ErrMissingDependency = errors.New("conll: no dependency for token")
)

// Row is a CoNLL 2009 line.
type Row struct {
	Id       string `json:"id"`
	Form     string `json:"form"`
	Lemma    string `json:"lemma"`
	PLemma   string `json:"plemma"`
	Pos      string `json:"pos"`
	PPos     string `json:"ppos"`
	Feat     string `json:"feat"`
	PFeat    string `json:"pfeat"`
	Head     string `json:"head"`
	PHead    string `json:"phead"`
	DepRel   string `json:"deprel"`
	PDepRel  string `json:"pdeprel"`
	FillPred string `json:"fillpred"`
	Pred     string `json:"pred"`
	APred    string `json:"apred"`
}

// Fields returns the 15 columns of the row in order.
func (r Row) Fields() []string {
	return []string{
		r.Id, r.Form, r.Lemma, r.PLemma, r.Pos, r.PPos, r.Feat, r.PFeat,
		r.Head, r.PHead, r.DepRel, r.PDepRel, r.FillPred, r.Pred, r.APred,
	}
}

func (r Row) String() string {
	return strings.Join(r.Fields(), FieldSeparator)
}

// IsPredicate reports whether the row token belongs to the lexical unit.
func (r Row) IsPredicate() bool {
	return r.Pred != Placeholder
}

// Sentence is the annotation of one frame of a doc: a row for each token.
type Sentence []Row

// Forms returns the FORM column.
func (s Sentence) Forms() []string {
	forms := make([]string, 0, len(s))
	for _, r := range s {
		forms = append(forms, r.Form)
	}

	return forms
}

// Frame returns the (FrameNet) frame name of the sentence, or the
// placeholder if no row has a predicate.
func (s Sentence) Frame() string {
	for _, r := range s {
		if r.IsPredicate() {
			return r.Pred
		}
	}

	return Placeholder
}

type Converter struct {
	// AllowRoot sets HEAD 0 and DEPREL ROOT for tokens without incoming
	// edge. When false those tokens are an error.
	AllowRoot bool
}

func NewConverter() *Converter {
	return &Converter{}
}

// Convert returns a Sentence for each frame of doc, in doc order.
func (c *Converter) Convert(doc sent.Doc) ([]Sentence, error) {
	deps := make(map[string]sent.Dep, len(doc.Deps))
	for _, d := range doc.Deps {
		deps[d.To] = d
	}

	sentences := make([]Sentence, 0, len(doc.Frames))
	for _, frame := range doc.Frames {
		s, err := c.frame(doc, frame, deps)
		if err != nil {
			return nil, err
		}

		sentences = append(sentences, s)
	}

	return sentences, nil
}

func (c *Converter) frame(doc sent.Doc, frame sent.Frame, deps map[string]sent.Dep) (Sentence, error) {
	lus := frame.LexicalUnitIds()
	labels := Labels(frame)
	frameName := FrameName(frame.Name)

	s := make(Sentence, 0, len(doc.Tokens))
	for _, t := range doc.Tokens {
		head, depRel, err := c.dependency(doc, t, deps)
		if err != nil {
			return nil, err
		}

		fillPred, pred := Placeholder, Placeholder
		if lus[t.Id] {
			pos, err := PosCategory(t.Pos)
			if err != nil {
				return nil, fmt.Errorf("doc %s token %s: %w", doc.Id, t.Id, err)
			}

			fillPred = LuLemma(t.Lemma) + "." + pos
			pred = frameName
		}

		s = append(s, Row{
			Id:       t.Id,
			Form:     t.Surface,
			Lemma:    t.Lemma,
			PLemma:   t.Lemma,
			Pos:      t.Pos,
			PPos:     t.Pos,
			Feat:     doc.Id,
			PFeat:    Placeholder,
			Head:     head,
			PHead:    head,
			DepRel:   depRel,
			PDepRel:  depRel,
			FillPred: fillPred,
			Pred:     pred,
			APred:    label(labels, t.Id),
		})
	}

	return s, nil
}

func (c *Converter) dependency(doc sent.Doc, t sent.Token, deps map[string]sent.Dep) (string, string, error) {
	d, ok := deps[t.Id]
	if ok {
		return d.From, d.Type, nil
	}

	if c.AllowRoot {
		return RootHead, RootDepRel, nil
	}

	return "", "", fmt.Errorf("%w: doc %s token %s", ErrMissingDependency, doc.Id, t.Id)
}

// Labels returns the frame element label of each token id covered by a
// frame element of frame. Frame element names are mapped to FrameNet. If
// spans overlap, the last frame element wins.
func Labels(frame sent.Frame) map[string]string {
	labels := map[string]string{}
	for _, fe := range frame.Elements {
		name := FrameElementName(fe.Type)
		for i, ref := range fe.Tokens {
			prefix := "I"
			switch {
			case len(fe.Tokens) == 1:
				prefix = "S"
			case i == 0:
				prefix = "B"
			}

			labels[ref.Id] = prefix + "-" + name
		}
	}

	return labels
}

func label(labels map[string]string, id string) string {
	if l, ok := labels[id]; ok {
		return l
	}

	return Outside
}
