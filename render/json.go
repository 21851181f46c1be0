package render

import (
	"encoding/json"
	"io"

	"github.com/revelaction/huric/conll"
)

// JSONRenderer writes converted sentences as JSON to a writer.
type JSONRenderer struct {
	W io.Writer
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

// Render serializes the sentences as a JSON array of row arrays.
func (r *JSONRenderer) Render(sents []conll.Sentence) error {
	if sents == nil {
		sents = []conll.Sentence{}
	}

	return json.NewEncoder(r.W).Encode(sents)
}
