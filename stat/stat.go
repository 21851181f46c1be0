package stat

import (
	"sort"
	"strings"

	"github.com/revelaction/huric/conll"
)

type Handler struct {
	stats Stats
}

type Stats struct {
	NumSentences          int
	NumTokens             int
	NumLexicalUnits       int
	TokensPerSentenceMean int
	TokensPerSentenceDis  map[int]int

	// sentences per frame
	Frames map[string]int

	// spans per frame element
	FrameElements map[string]int
}

// Count is a name with its number of occurrences
type Count struct {
	Name string
	N    int
}

func (h *Handler) Get() Stats {
	return h.stats
}

func NewHandler() *Handler {
	stats := Stats{
		TokensPerSentenceDis: map[int]int{},
		Frames:               map[string]int{},
		FrameElements:        map[string]int{},
	}
	return &Handler{
		stats: stats,
	}
}

// Aggregate adds the sentences to the stats. It can be called more than once.
func (h *Handler) Aggregate(sents []conll.Sentence) {
	h.stats.NumSentences += len(sents)
	for _, s := range sents {
		h.stats.NumTokens += len(s)
		h.stats.TokensPerSentenceDis[len(s)]++
		h.stats.Frames[s.Frame()]++

		for _, r := range s {
			if r.IsPredicate() {
				h.stats.NumLexicalUnits++
			}

			// a span starts with S- or B-
			if strings.HasPrefix(r.APred, "S-") || strings.HasPrefix(r.APred, "B-") {
				h.stats.FrameElements[r.APred[2:]]++
			}
		}
	}

	if h.stats.NumSentences > 0 {
		h.stats.TokensPerSentenceMean = h.stats.NumTokens / h.stats.NumSentences
	}
}

// Sorted returns the counts of m, most frequent first, then by name.
func Sorted(m map[string]int) []Count {
	counts := make([]Count, 0, len(m))
	for name, n := range m {
		counts = append(counts, Count{Name: name, N: n})
	}

	sort.Slice(counts, func(i, j int) bool {
		if counts[i].N != counts[j].N {
			return counts[i].N > counts[j].N
		}

		return counts[i].Name < counts[j].Name
	})

	return counts
}
