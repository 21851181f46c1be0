package conll

import (
	"fmt"
)

// frameNames maps HuRIC frame names back to FrameNet frame names.
var frameNames = map[string]string{
	"Entering":  "Arriving",
	"Following": "Cotheme",
	"Searching": "Scrutiny",
}

// luLemmas corrects lemmas of lexical units so that they match the FrameNet
// lexical unit names.
var luLemmas = map[string]string{
	"halfcarri":   "carry",
	"positioning": "position",
	"reconnoiter": "reconnoitre",
	"half-l":      "lead",

	// HuRIC
	"be":    "constitute",
	"there": "constitute",
	"along": "go",   // go along
	"let":   "go",   // let go
	"up":    "pick", // pick up
}

// frameElements maps HuRIC frame element names to FrameNet ones.
var frameElements = map[string]string{
	"Desired_state": "Desired_state_of_affairs",
	"Reencoding":    "Re-encoding",
}

// FrameName returns the FrameNet name of a HuRIC frame.
func FrameName(name string) string {
	return lookup(frameNames, name)
}

// LuLemma returns the FrameNet lemma of a lexical unit lemma.
func LuLemma(lemma string) string {
	return lookup(luLemmas, lemma)
}

// FrameElementName returns the FrameNet name of a HuRIC frame element.
func FrameElementName(fe string) string {
	return lookup(frameElements, fe)
}

func lookup(m map[string]string, key string) string {
	if v, ok := m[key]; ok {
		return v
	}

	return key
}

// PosCategory maps a HuRIC (Penn Treebank) part of speech tag to the
// FrameNet lexical unit POS suffix.
func PosCategory(pos string) (string, error) {
	switch pos {
	case "JJ":
		return "a", nil
	case "NN", "NNP", "NNS":
		return "n", nil
	case "VB", "VBD", "VBG", "VBN", "VBP", "VBZ", "RP", "EX":
		return "v", nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnmappedPos, pos)
}
