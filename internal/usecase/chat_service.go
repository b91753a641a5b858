package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/skykart/backend/internal/catalog"
	"github.com/skykart/backend/internal/domain"
)

// fallbackResponse is returned when every tier falls through.
const fallbackResponse = "I'm sorry, I didn't understand that. You can ask me about drone types, prices, delivery or warranty, or say 'compare' with two model names."

// ChatServiceConfig holds configuration for the chat service
type ChatServiceConfig struct {
	CacheTTL           time.Duration
	FuzzyThreshold     float64
	EnableDebugLogging bool
}

// ChatService routes a raw message to exactly one response strategy. It is a
// strict priority chain over static tables: comparison intent, then the
// keyword cascade, then generic triggers, then a fixed fallback. No state
// survives between calls; any number of requests may run concurrently.
type ChatService struct {
	preprocessor       *MessagePreprocessor
	matcher            *KeywordMatcher
	comparison         *ComparisonService
	cache              domain.CacheRepository
	drones             []domain.Drone
	keywords           domain.KeywordTable
	generics           domain.GenericTable
	cacheTTL           time.Duration
	logger             zerolog.Logger
	enableDebugLogging bool
}

// NewChatService creates a new chat service with dependencies
func NewChatService(
	cache domain.CacheRepository,
	corrector domain.SpellCorrector,
	scorer domain.SimilarityScorer,
	drones []domain.Drone,
	keywords domain.KeywordTable,
	generics domain.GenericTable,
	logger zerolog.Logger,
	config ChatServiceConfig,
) *ChatService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = time.Hour
	}

	return &ChatService{
		preprocessor: NewMessagePreprocessor(corrector, logger, config.EnableDebugLogging),
		matcher: NewKeywordMatcher(scorer, logger, MatcherConfig{
			FuzzyThreshold:     config.FuzzyThreshold,
			EnableDebugLogging: config.EnableDebugLogging,
		}),
		comparison:         NewComparisonService(drones, logger),
		cache:              cache,
		drones:             drones,
		keywords:           keywords,
		generics:           generics,
		cacheTTL:           cacheTTL,
		logger:             logger,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// Respond resolves a raw message to response text. Total: every input,
// including empty or whitespace-only, yields a string and never an error.
func (s *ChatService) Respond(ctx context.Context, rawMessage string) string {
	normalized := s.preprocessor.Normalize(rawMessage)

	cacheKey := "chat:" + normalized
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey); err == nil {
			s.debugTier(normalized, "cache")
			return cached
		}
	}

	response := s.route(normalized)

	if s.cache != nil {
		// Caching is transparent: the engine is a pure function of its
		// static tables, so a failed Set only costs recomputation.
		_ = s.cache.Set(ctx, cacheKey, response, s.cacheTTL)
	}

	return response
}

// Compare exposes the comparison renderer directly for the comparison
// endpoint. Total, never errors.
func (s *ChatService) Compare(ctx context.Context, name1, name2 string) string {
	return s.comparison.Compare(name1, name2)
}

// Drones returns the catalog this service answers for.
func (s *ChatService) Drones() []domain.Drone {
	return s.drones
}

// route walks the priority chain over an already-normalized message.
func (s *ChatService) route(normalized string) string {
	if s.hasComparisonIntent(normalized) {
		if hint1, hint2, ok := s.extractComparisonHints(normalized); ok {
			s.debugTier(normalized, "comparison")
			return s.comparison.Compare(hint1, hint2)
		}
	}

	result := s.matcher.Match(normalized, s.keywords)
	if result.Kind != domain.MatchNone {
		if response, ok := s.keywords.Response(result.Phrase); ok {
			s.debugTier(normalized, string(result.Kind))
			return response
		}
	}

	for _, entry := range s.generics {
		if strings.Contains(normalized, entry.Trigger) {
			s.debugTier(normalized, "generic")
			return entry.Response
		}
	}

	s.debugTier(normalized, "fallback")
	return fallbackResponse
}

// hasComparisonIntent reports whether the message contains a comparison
// trigger word. Substring containment, matching the trigger table order.
func (s *ChatService) hasComparisonIntent(normalized string) bool {
	for _, trigger := range catalog.ComparisonTriggers {
		if strings.Contains(normalized, trigger) {
			return true
		}
	}
	return false
}

// extractComparisonHints splits the message into candidate name hints.
// Trigger words and the connector "and" act as separators; the token runs
// between them are the hint segments. The comparison path is taken when there
// are at least two segments and at least one of them mentions a catalog name.
// The first two segments are returned, catalog-matched segments first,
// otherwise in message order.
func (s *ChatService) extractComparisonHints(normalized string) (string, string, bool) {
	var segments []string
	var current []string
	flush := func() {
		if len(current) > 0 {
			segments = append(segments, strings.Join(current, " "))
			current = nil
		}
	}
	for _, token := range strings.Fields(normalized) {
		if isSeparatorToken(token) {
			flush()
			continue
		}
		current = append(current, token)
	}
	flush()

	if len(segments) < 2 {
		return "", "", false
	}

	matched := make([]bool, len(segments))
	anyMatched := false
	for i, segment := range segments {
		for _, token := range strings.Fields(segment) {
			if s.tokenMentionsCatalog(token) {
				matched[i] = true
				anyMatched = true
				break
			}
		}
	}
	if !anyMatched {
		return "", "", false
	}

	hints := make([]string, 0, len(segments))
	for i, segment := range segments {
		if matched[i] {
			hints = append(hints, segment)
		}
	}
	for i, segment := range segments {
		if !matched[i] {
			hints = append(hints, segment)
		}
	}

	return hints[0], hints[1], true
}

// tokenMentionsCatalog reports whether the token appears inside some catalog
// entry's name.
func (s *ChatService) tokenMentionsCatalog(token string) bool {
	for _, d := range s.drones {
		if strings.Contains(strings.ToLower(d.Name), token) {
			return true
		}
	}
	return false
}

func isSeparatorToken(token string) bool {
	if token == "and" {
		return true
	}
	for _, trigger := range catalog.ComparisonTriggers {
		if token == trigger {
			return true
		}
	}
	return false
}

func (s *ChatService) debugTier(normalized, tier string) {
	if !s.enableDebugLogging {
		return
	}
	s.logger.Debug().Str("message", normalized).Str("tier", tier).Msg("response tier selected")
}
