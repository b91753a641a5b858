// Package textsim provides the string similarity capability.
package textsim

import "github.com/skykart/backend/internal/domain"

// LevenshteinScorer scores similarity as 1 - editDistance/maxLen over runes.
// Identical strings score 1, strings sharing nothing score 0.
type LevenshteinScorer struct{}

// NewLevenshteinScorer creates a new Levenshtein-ratio scorer
func NewLevenshteinScorer() *LevenshteinScorer {
	return &LevenshteinScorer{}
}

var _ domain.SimilarityScorer = (*LevenshteinScorer)(nil)

// Similarity returns the normalized edit-distance ratio between a and b,
// always in [0,1].
func (s *LevenshteinScorer) Similarity(a, b string) float64 {
	if a == b {
		return 1
	}

	ra := []rune(a)
	rb := []rune(b)
	maxLen := len(ra)
	if len(rb) > maxLen {
		maxLen = len(rb)
	}
	if maxLen == 0 {
		return 1
	}

	score := 1 - float64(levenshteinDistance(ra, rb))/float64(maxLen)
	if score < 0 {
		return 0
	}
	return score
}

// levenshteinDistance calculates the edit distance between two rune slices
func levenshteinDistance(r1, r2 []rune) int {
	if len(r1) == 0 {
		return len(r2)
	}
	if len(r2) == 0 {
		return len(r1)
	}

	m := len(r1)
	n := len(r2)

	// Use two rows instead of the full matrix for space efficiency
	prev := make([]int, n+1)
	curr := make([]int, n+1)

	for j := 0; j <= n; j++ {
		prev[j] = j
	}

	for i := 1; i <= m; i++ {
		curr[0] = i
		for j := 1; j <= n; j++ {
			cost := 0
			if r1[i-1] != r2[j-1] {
				cost = 1
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[n]
}
