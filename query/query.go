package query

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/revelaction/huric/conll"
	"github.com/revelaction/huric/render"

	"github.com/c-bata/go-prompt"
)

// anyFrame matches the sentences of all frames
const anyFrame = "*"

// Handler is a REPL over the converted sentences of a dataset. A query is a
// frame name, optionally followed by a frame element name:
//
//	Bringing Goal
//
// shows the Bringing sentences that have a Goal span.
type Handler struct {
	Sentences []conll.Sentence
	Renderer  *render.Renderer

	// frame name -> frame element name -> number of sentences
	index map[string]map[string]int
}

func NewHandler(sents []conll.Sentence, r *render.Renderer) *Handler {
	h := &Handler{
		Sentences: sents,
		Renderer:  r,
		index:     map[string]map[string]int{},
	}

	for _, s := range sents {
		frame := s.Frame()
		if h.index[frame] == nil {
			h.index[frame] = map[string]int{}
		}

		for _, role := range roles(s) {
			h.index[frame][role]++
		}
	}

	return h
}

func (h *Handler) Run() error {

	fmt.Fprintln(h.Renderer.W, "🔑 Ctrl+F: next Format (sentence, table), Ctrl+X: Toggle prefix, 🔧 quit")

	// initialize prompt history
	history := []string{}

	for {

		in := prompt.Input("      🏷  ", h.completer,
			prompt.OptionTitle("huric query"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlF,
				Fn:  func(buf *prompt.Buffer) { h.nextFormat() },
			}),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlX,
				Fn:  func(buf *prompt.Buffer) { h.nextPrefix() },
			}),
		)

		if in == "quit" {
			return nil
		}

		history = append(history, in)
		h.execute(in)
	}
}

func (h *Handler) nextFormat() {
	h.Renderer.NextFormat()
	fmt.Fprintln(h.Renderer.W, "Format set to: "+h.Renderer.Format)
}

func (h *Handler) nextPrefix() {
	h.Renderer.NextPrefix()
	fmt.Fprintf(h.Renderer.W, "Prefix set to %t\n", h.Renderer.HasPrefix)
}

// execute renders the sentences matching the query in, or the parse error.
func (h *Handler) execute(in string) {
	frame, role, err := h.parse(in)
	if err != nil {
		fmt.Fprintf(h.Renderer.W, "❌ %s\n", err)
		return
	}

	h.Renderer.Render(h.Match(frame, role))
}

// Match returns the sentences of frame (all frames for "*") with a span of
// role. An empty role matches every sentence of the frame.
func (h *Handler) Match(frame, role string) []conll.Sentence {
	var results []conll.Sentence
	for _, s := range h.Sentences {
		if frame != anyFrame && s.Frame() != frame {
			continue
		}

		if role != "" && !hasRole(s, role) {
			continue
		}

		results = append(results, s)
	}

	return results
}

func (h *Handler) completer(in prompt.Document) []prompt.Suggest {
	s := []prompt.Suggest{}
	befCursor := in.TextBeforeCursor()

	if "" == befCursor {
		return s
	}

	tokens := strings.Split(befCursor, " ")

	switch len(tokens) {
	case 1:
		return h.completeFrame(tokens[0])
	case 2:
		return h.completeRole(tokens[0], tokens[1])
	}

	return s
}

func (h *Handler) completeFrame(token string) (s []prompt.Suggest) {
	for _, frame := range h.frames() {
		if strings.HasPrefix(frame, token) {
			n := 0
			for _, sent := range h.Sentences {
				if sent.Frame() == frame {
					n++
				}
			}
			s = append(s, prompt.Suggest{Text: frame, Description: "🏷  " + strconv.Itoa(n)})
		}
	}

	return s
}

func (h *Handler) completeRole(frame, token string) (s []prompt.Suggest) {
	roleCounts, ok := h.index[frame]
	if !ok {
		return s
	}

	names := make([]string, 0, len(roleCounts))
	for name := range roleCounts {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if strings.HasPrefix(name, token) {
			s = append(s, prompt.Suggest{Text: name, Description: frame + " " + strconv.Itoa(roleCounts[name])})
		}
	}

	return s
}

func (h *Handler) frames() []string {
	names := make([]string, 0, len(h.index))
	for name := range h.index {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

func (h *Handler) parse(in string) (string, string, error) {

	tokens := strings.Fields(in)

	switch len(tokens) {
	case 0:
		return "", "", errors.New("No frame given")
	case 1, 2:
	default:
		return "", "", errors.New("Too many words, usage: <frame> [frame element]")
	}

	frame := tokens[0]
	if _, ok := h.index[frame]; !ok && frame != anyFrame {
		return "", "", fmt.Errorf("Unknown frame %s", frame)
	}

	role := ""
	if len(tokens) == 2 {
		role = tokens[1]
	}

	return frame, role, nil
}

// roles returns the frame element names of the spans of s, once each.
func roles(s conll.Sentence) []string {
	seen := map[string]bool{}
	var names []string
	for _, r := range s {
		role := render.Role(r.APred)
		if role == "" || seen[role] {
			continue
		}

		seen[role] = true
		names = append(names, role)
	}

	return names
}

func hasRole(s conll.Sentence, role string) bool {
	for _, r := range roles(s) {
		if r == role {
			return true
		}
	}

	return false
}
