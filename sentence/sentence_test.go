package sentence

import (
	"encoding/xml"
	"errors"
	"strings"
	"testing"
)

func validDoc() Doc {
	return Doc{
		Id:     "1",
		Tokens: []Token{{Id: "1", Surface: "stop", Lemma: "stop", Pos: "VB"}},
		Deps:   []Dep{{From: "0", To: "1", Type: "root"}},
		Frames: []Frame{{
			Name:        "Halt",
			LexicalUnit: []TokenRef{{Id: "1"}},
		}},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Doc)
		wantErr bool
	}{
		{"valid", func(d *Doc) {}, false},
		{"no doc id", func(d *Doc) { d.Id = "" }, true},
		{"no token id", func(d *Doc) { d.Tokens[0].Id = "" }, true},
		{"no dep target", func(d *Doc) { d.Deps[0].To = "" }, true},
		{"no dep head", func(d *Doc) { d.Deps[0].From = "" }, true},
		{"no frame name", func(d *Doc) { d.Frames[0].Name = "" }, true},
		{"no lexical unit id", func(d *Doc) { d.Frames[0].LexicalUnit[0].Id = "" }, true},
		{"no frame element type", func(d *Doc) {
			d.Frames[0].Elements = []FrameElement{{Tokens: []TokenRef{{Id: "1"}}}}
		}, true},
		{"no frame element token id", func(d *Doc) {
			d.Frames[0].Elements = []FrameElement{{Type: "Theme", Tokens: []TokenRef{{}}}}
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDoc()
			tt.modify(&d)

			err := d.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr && !errors.Is(err, ErrMissingAttr) {
				t.Errorf("expected ErrMissingAttr, got %v", err)
			}
		})
	}
}

func TestLexicalUnitIds(t *testing.T) {
	f := Frame{LexicalUnit: []TokenRef{{Id: "2"}, {Id: "3"}}}
	ids := f.LexicalUnitIds()

	if len(ids) != 2 || !ids["2"] || !ids["3"] || ids["1"] {
		t.Errorf("unexpected ids %v", ids)
	}
}

func TestUnmarshalXMLRequiredAttrs(t *testing.T) {
	tests := []struct {
		name    string
		xml     string
		wantErr bool
	}{
		{"token", `<token id="1" surface="take" lemma="take" pos="VB"/>`, false},
		{"token empty lemma", `<token id="1" surface="take" lemma="" pos="VB"/>`, false},
		{"token no lemma", `<token id="1" surface="take" pos="VB"/>`, true},
		{"token no surface", `<token id="1" lemma="take" pos="VB"/>`, true},
		{"token no pos", `<token id="1" surface="take" lemma="take"/>`, true},
		{"dep", `<dep from="0" to="1" type="root"/>`, false},
		{"dep no type", `<dep from="3" to="2"/>`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v any = &Token{}
			if strings.HasPrefix(tt.xml, "<dep") {
				v = &Dep{}
			}

			err := xml.Unmarshal([]byte(tt.xml), v)

			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr && !errors.Is(err, ErrMissingAttr) {
				t.Errorf("expected ErrMissingAttr, got %v", err)
			}
		})
	}
}

func TestUnmarshalXMLToken(t *testing.T) {
	var tok Token
	if err := xml.Unmarshal([]byte(`<token id="2" surface="Mug" lemma="mug" pos="NN"/>`), &tok); err != nil {
		t.Fatal(err)
	}

	want := Token{Id: "2", Surface: "Mug", Lemma: "mug", Pos: "NN"}
	if tok != want {
		t.Errorf("got %+v, want %+v", tok, want)
	}
}
