package domain

import (
	"context"
	"time"
)

// SpellCorrector returns ranked correction candidates for a single word.
// An empty slice means no candidate is known; the caller keeps the word as-is.
type SpellCorrector interface {
	Correct(word string) []string
}

// SimilarityScorer scores how similar two strings are, in [0,1].
type SimilarityScorer interface {
	Similarity(a, b string) float64
}

// CacheRepository defines the interface for response caching
type CacheRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
