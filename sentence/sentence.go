package sentence

import (
	"encoding/xml"
	"errors"
	"fmt"
)

// ErrMissingAttr is returned when a required XML attribute is absent.
var ErrMissingAttr = errors.New("sentence: missing attribute")

// Doc is a single HuRIC command: one sentence with its tokens, its
// dependency tree and its frame annotations.
type Doc struct {
	// The command id, the `id` attribute of the root element
	Id string `xml:"id,attr" json:"id"`

	// The file name (or storage key) the doc was read from. Not part of the
	// xml.
	Title string `xml:"-" json:"title"`

	Tokens []Token `xml:"tokens>token" json:"tokens"`
	Deps   []Dep   `xml:"dependencies>dep" json:"deps"`
	Frames []Frame `xml:"semantics>frameSemantics>frame" json:"frames"`
}

// Token represents a word of the sentence, with POS and lemma.
type Token struct {
	Id string `xml:"id,attr" json:"id"`

	// The unmodified word
	Surface string `xml:"surface,attr" json:"surface"`

	// The lemma of the word
	Lemma string `xml:"lemma,attr" json:"lemma"`

	// Penn Treebank part of speech tag
	Pos string `xml:"pos,attr" json:"pos"`
}

// Dep is a dependency edge. A token has at most one incoming edge, so edges
// are looked up by To.
type Dep struct {
	From string `xml:"from,attr" json:"from"`
	To   string `xml:"to,attr" json:"to"`
	Type string `xml:"type,attr" json:"type"`
}

// UnmarshalXML decodes a token element. All its attributes are required.
func (t *Token) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	if err := requireAttrs(start, "id", "surface", "lemma", "pos"); err != nil {
		return err
	}

	type token Token
	return d.DecodeElement((*token)(t), &start)
}

// UnmarshalXML decodes a dep element. All its attributes are required.
func (dep *Dep) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	if err := requireAttrs(start, "from", "to", "type"); err != nil {
		return err
	}

	type edge Dep
	return d.DecodeElement((*edge)(dep), &start)
}

func requireAttrs(start xml.StartElement, names ...string) error {
	for _, name := range names {
		found := false
		for _, a := range start.Attr {
			if a.Name.Local == name {
				found = true
				break
			}
		}

		if !found {
			return fmt.Errorf("%w: %s of %s", ErrMissingAttr, name, start.Name.Local)
		}
	}

	return nil
}

// Frame is a semantic frame evoked by the tokens of its lexical unit.
type Frame struct {
	Name        string         `xml:"name,attr" json:"name"`
	LexicalUnit []TokenRef     `xml:"lexicalUnit>token" json:"lu"`
	Elements    []FrameElement `xml:"frameElement" json:"elements"`
}

// FrameElement is a semantic role filled by one or more tokens, in
// annotation order.
type FrameElement struct {
	Type   string     `xml:"type,attr" json:"type"`
	Tokens []TokenRef `xml:"token" json:"tokens"`
}

// TokenRef points to a Token of the same Doc by id.
type TokenRef struct {
	Id string `xml:"id,attr" json:"id"`
}

// LexicalUnitIds returns the set of token ids of the lexical unit.
func (f Frame) LexicalUnitIds() map[string]bool {
	ids := make(map[string]bool, len(f.LexicalUnit))
	for _, ref := range f.LexicalUnit {
		ids[ref.Id] = true
	}

	return ids
}

// Validate checks that the attributes used as keys are present.
func (d Doc) Validate() error {
	if d.Id == "" {
		return fmt.Errorf("%w: id of root element", ErrMissingAttr)
	}

	for i, t := range d.Tokens {
		if t.Id == "" {
			return fmt.Errorf("%w: id of token %d", ErrMissingAttr, i)
		}
	}

	for i, dep := range d.Deps {
		if dep.To == "" {
			return fmt.Errorf("%w: to of dep %d", ErrMissingAttr, i)
		}

		if dep.From == "" {
			return fmt.Errorf("%w: from of dep %d", ErrMissingAttr, i)
		}
	}

	for i, f := range d.Frames {
		if f.Name == "" {
			return fmt.Errorf("%w: name of frame %d", ErrMissingAttr, i)
		}

		for _, ref := range f.LexicalUnit {
			if ref.Id == "" {
				return fmt.Errorf("%w: id of lexical unit token in frame %s", ErrMissingAttr, f.Name)
			}
		}

		for _, fe := range f.Elements {
			if fe.Type == "" {
				return fmt.Errorf("%w: type of frame element in frame %s", ErrMissingAttr, f.Name)
			}

			for _, ref := range fe.Tokens {
				if ref.Id == "" {
					return fmt.Errorf("%w: id of token in frame element %s", ErrMissingAttr, fe.Type)
				}
			}
		}
	}

	return nil
}
