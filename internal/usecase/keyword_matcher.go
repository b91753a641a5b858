package usecase

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/skykart/backend/internal/domain"
)

// defaultFuzzyThreshold is the similarity a phrase must strictly exceed to be
// accepted as a fuzzy match.
const defaultFuzzyThreshold = 0.6

// MatcherConfig holds configuration for the keyword matcher
type MatcherConfig struct {
	FuzzyThreshold     float64
	EnableDebugLogging bool
}

// KeywordMatcher finds the best matching phrase for a normalized message
// under a fixed exact -> fuzzy -> partial cascade. Each tier short-circuits:
// once a tier yields a phrase, later tiers never run.
type KeywordMatcher struct {
	scorer             domain.SimilarityScorer
	fuzzyThreshold     float64
	logger             zerolog.Logger
	enableDebugLogging bool
}

// NewKeywordMatcher creates a new keyword matcher with the given configuration
func NewKeywordMatcher(scorer domain.SimilarityScorer, logger zerolog.Logger, config MatcherConfig) *KeywordMatcher {
	threshold := config.FuzzyThreshold
	if threshold <= 0 {
		threshold = defaultFuzzyThreshold
	}

	return &KeywordMatcher{
		scorer:             scorer,
		fuzzyThreshold:     threshold,
		logger:             logger,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// Match runs the cascade over the table.
//
// Exact: text equals a phrase verbatim. Fuzzy: the maximum-scoring phrase
// wins if its score strictly exceeds the threshold; on equal scores the
// earlier table entry is kept. Partial: tokens are scanned in message order
// against phrases in table order; the first phrase containing a token as a
// substring wins. Otherwise MatchNone.
func (m *KeywordMatcher) Match(text string, table domain.KeywordTable) domain.MatchResult {
	for _, entry := range table {
		if text == entry.Phrase {
			m.debugMatch(text, domain.MatchResult{Kind: domain.MatchExact, Phrase: entry.Phrase})
			return domain.MatchResult{Kind: domain.MatchExact, Phrase: entry.Phrase}
		}
	}

	bestScore := 0.0
	bestPhrase := ""
	for _, entry := range table {
		score := m.scorer.Similarity(text, entry.Phrase)
		if score > bestScore {
			bestScore = score
			bestPhrase = entry.Phrase
		}
	}
	if bestScore > m.fuzzyThreshold {
		result := domain.MatchResult{Kind: domain.MatchFuzzy, Phrase: bestPhrase, Score: bestScore}
		m.debugMatch(text, result)
		return result
	}

	for _, token := range strings.Fields(text) {
		for _, entry := range table {
			if strings.Contains(entry.Phrase, token) {
				result := domain.MatchResult{Kind: domain.MatchPartial, Phrase: entry.Phrase}
				m.debugMatch(text, result)
				return result
			}
		}
	}

	m.debugMatch(text, domain.MatchResult{Kind: domain.MatchNone})
	return domain.MatchResult{Kind: domain.MatchNone}
}

func (m *KeywordMatcher) debugMatch(text string, result domain.MatchResult) {
	if !m.enableDebugLogging {
		return
	}
	m.logger.Debug().
		Str("text", text).
		Str("kind", string(result.Kind)).
		Str("phrase", result.Phrase).
		Float64("score", result.Score).
		Msg("keyword match")
}
