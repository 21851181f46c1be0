package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/revelaction/huric/conll"
)

func row(id, form, pred, apred string) conll.Row {
	return conll.Row{
		Id: id, Form: form, Lemma: form, PLemma: form, Pos: "NN", PPos: "NN",
		Feat: "12", PFeat: "_", Head: "0", PHead: "0", DepRel: "dep", PDepRel: "dep",
		FillPred: "_", Pred: pred, APred: apred,
	}
}

func testSentence() conll.Sentence {
	return conll.Sentence{
		row("1", "bring", "Bringing", "O"),
		row("2", "the", "_", "B-Theme"),
		row("3", "book", "_", "I-Theme"),
		row("4", "here", "_", "S-Goal"),
	}
}

func TestConll(t *testing.T) {
	var buf bytes.Buffer
	if err := Conll(&buf, []conll.Sentence{testSentence()}); err != nil {
		t.Fatalf("Conll: %v", err)
	}

	out := buf.String()
	if !strings.HasSuffix(out, "\n\n") {
		t.Errorf("expected sentence to end with an empty line, got %q", out)
	}

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d: %q", len(lines), out)
	}

	if lines[4] != "" {
		t.Errorf("expected last line empty, got %q", lines[4])
	}

	for _, l := range lines[:4] {
		if n := len(strings.Split(l, "\t")); n != conll.NumFields {
			t.Errorf("expected %d fields, got %d in %q", conll.NumFields, n, l)
		}
	}
}

func TestSents(t *testing.T) {
	var buf bytes.Buffer
	sents := []conll.Sentence{testSentence(), testSentence()[:2]}
	if err := Sents(&buf, sents); err != nil {
		t.Fatalf("Sents: %v", err)
	}

	want := "bring the book here\nbring the\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestSentenceStringNoColor(t *testing.T) {
	r := NewRenderer()
	r.HasColor = false
	if got := r.SentenceString(testSentence()); got != "bring the book here" {
		t.Errorf("got %q", got)
	}
}

func TestSentenceStringColor(t *testing.T) {
	r := NewRenderer()
	r.HasColor = true
	got := r.SentenceString(testSentence())

	if !strings.Contains(got, Green256+"bring"+Off) {
		t.Errorf("expected lexical unit colored, got %q", got)
	}

	// both tokens of the Theme span share a color
	if !strings.Contains(got, feColors[0]+"the"+Off+" "+feColors[0]+"book"+Off) {
		t.Errorf("expected Theme span in first color, got %q", got)
	}

	if !strings.Contains(got, feColors[1]+"here"+Off) {
		t.Errorf("expected Goal span in second color, got %q", got)
	}
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer()
	r.W = &buf
	r.Format = "table"
	r.Render([]conll.Sentence{testSentence()})

	if n := strings.Count(buf.String(), "\n"); n != 6 {
		t.Errorf("expected 6 lines (header, 4 tokens, blank), got %d: %q", n, buf.String())
	}
}

func TestNextFormat(t *testing.T) {
	r := NewRenderer()
	r.NextFormat()
	if r.Format != "table" {
		t.Errorf("expected table, got %s", r.Format)
	}

	r.NextFormat()
	if r.Format != "sentence" {
		t.Errorf("expected sentence, got %s", r.Format)
	}
}

func TestRole(t *testing.T) {
	tests := map[string]string{
		"O":                          "",
		"S-Theme":                    "Theme",
		"B-Goal":                     "Goal",
		"I-Desired_state_of_affairs": "Desired_state_of_affairs",
		"I-Re-encoding":              "Re-encoding",
	}

	for in, want := range tests {
		if got := Role(in); got != want {
			t.Errorf("Role(%q) = %q, want %q", in, got, want)
		}
	}
}
