package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/revelaction/huric/conll"
)

func TestJSONRendererRenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	r := NewJSONRenderer(&buf)
	if err := r.Render(nil); err != nil {
		t.Fatalf("Render: %v", err)
	}

	var results []conll.Sentence
	if err := json.Unmarshal(buf.Bytes(), &results); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if len(results) != 0 {
		t.Fatalf("expected 0 results, got %d", len(results))
	}
}

func TestJSONRendererRenderOneSentence(t *testing.T) {
	s := conll.Sentence{
		{Id: "1", Form: "take", Lemma: "take", FillPred: "take.v", Pred: "Taking", APred: "O"},
		{Id: "2", Form: "it", Lemma: "it", FillPred: "_", Pred: "_", APred: "S-Theme"},
	}

	var buf bytes.Buffer
	r := NewJSONRenderer(&buf)
	if err := r.Render([]conll.Sentence{s}); err != nil {
		t.Fatalf("Render: %v", err)
	}

	var results []conll.Sentence
	if err := json.Unmarshal(buf.Bytes(), &results); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}

	if len(results[0]) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(results[0]))
	}

	if results[0][0].Pred != "Taking" {
		t.Errorf("expected pred 'Taking', got %q", results[0][0].Pred)
	}

	if results[0][1].APred != "S-Theme" {
		t.Errorf("expected apred 'S-Theme', got %q", results[0][1].APred)
	}
}
