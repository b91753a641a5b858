// Package spell provides the dictionary-backed spell correction capability.
package spell

import (
	"strings"

	"github.com/sajari/fuzzy"

	"github.com/skykart/backend/internal/domain"
)

// maxSuggestions bounds how many ranked candidates a lookup returns.
const maxSuggestions = 3

// DictCorrector corrects single words against a fixed vocabulary using a
// sajari/fuzzy model trained at startup. Deterministic and in-process; no
// network calls.
type DictCorrector struct {
	model *fuzzy.Model
	known map[string]bool
}

// Config holds configuration for the dictionary corrector
type Config struct {
	// Depth is the maximum edit distance considered when suggesting
	// corrections.
	Depth int
}

// NewDictCorrector builds a corrector trained on the given vocabulary.
// Vocabulary words are lowercased and deduplicated before training.
func NewDictCorrector(vocabulary []string, config Config) *DictCorrector {
	depth := config.Depth
	if depth <= 0 {
		depth = 2
	}

	model := fuzzy.NewModel()
	model.SetThreshold(1)
	model.SetDepth(depth)

	known := make(map[string]bool, len(vocabulary))
	words := make([]string, 0, len(vocabulary))
	for _, w := range vocabulary {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" || known[w] {
			continue
		}
		known[w] = true
		words = append(words, w)
	}
	model.Train(words)

	return &DictCorrector{
		model: model,
		known: known,
	}
}

var _ domain.SpellCorrector = (*DictCorrector)(nil)

// Correct returns ranked correction candidates for a word. A word already in
// the vocabulary returns itself as the only candidate, which makes repeated
// normalization a no-op. Unknown words with nothing within edit depth return
// an empty slice.
func (c *DictCorrector) Correct(word string) []string {
	if word == "" {
		return nil
	}
	if c.known[word] {
		return []string{word}
	}

	suggestions := c.model.SpellCheckSuggestions(word, maxSuggestions)

	// The model may echo the input back when it has no better idea; an
	// unknown word is not a correction.
	candidates := suggestions[:0]
	for _, s := range suggestions {
		if c.known[s] {
			candidates = append(candidates, s)
		}
	}
	return candidates
}
