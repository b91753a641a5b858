package usecase

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/skykart/backend/internal/domain"
)

// MessagePreprocessor normalizes raw user input into the canonical form the
// matching tiers operate on: lowercased, spell-corrected, single-spaced.
type MessagePreprocessor struct {
	corrector          domain.SpellCorrector
	logger             zerolog.Logger
	enableDebugLogging bool
}

// NewMessagePreprocessor creates a new message preprocessor
func NewMessagePreprocessor(corrector domain.SpellCorrector, logger zerolog.Logger, enableDebugLogging bool) *MessagePreprocessor {
	return &MessagePreprocessor{
		corrector:          corrector,
		logger:             logger,
		enableDebugLogging: enableDebugLogging,
	}
}

// Normalize lowercases the input, runs every whitespace-delimited token
// through the spell corrector and rejoins with single spaces. A token with no
// correction candidates is kept unchanged. Empty or whitespace-only input
// yields the empty string; downstream tiers treat that as "no match".
func (p *MessagePreprocessor) Normalize(raw string) string {
	tokens := strings.Fields(strings.ToLower(raw))
	if len(tokens) == 0 {
		return ""
	}

	for i, token := range tokens {
		candidates := p.corrector.Correct(token)
		if len(candidates) > 0 {
			tokens[i] = candidates[0]
		}
	}

	normalized := strings.Join(tokens, " ")

	if p.enableDebugLogging {
		p.logger.Debug().Str("raw", raw).Str("normalized", normalized).Msg("preprocessed message")
	}

	return normalized
}
