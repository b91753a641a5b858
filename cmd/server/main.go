package main

import (
	"fmt"

	"github.com/joho/godotenv"

	"github.com/skykart/backend/config"
	"github.com/skykart/backend/internal/catalog"
	httpDelivery "github.com/skykart/backend/internal/delivery/http"
	"github.com/skykart/backend/internal/domain"
	"github.com/skykart/backend/internal/infrastructure/cache"
	"github.com/skykart/backend/internal/infrastructure/spell"
	"github.com/skykart/backend/internal/infrastructure/textsim"
	"github.com/skykart/backend/internal/observability"
	"github.com/skykart/backend/internal/usecase"
)

func main() {
	// .env is optional; real deployments set environment variables directly
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		bootLog := observability.NewLogger(observability.LogConfig{ServiceName: "skykart-backend"})
		bootLog.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger := observability.NewLogger(observability.LogConfig{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		ServiceName: "skykart-backend",
	})

	logger.Info().
		Str("environment", cfg.Server.Environment).
		Str("port", cfg.Server.Port).
		Str("cache_type", cfg.Cache.Type).
		Float64("fuzzy_threshold", cfg.Matching.FuzzyThreshold).
		Msg("starting SkyKart backend v1.0.0")

	// Initialize infrastructure dependencies
	var responseCache domain.CacheRepository
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := cache.NewRedisCache(cfg.Cache.RedisURL, "skykart:")
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to redis")
		}
		responseCache = redisCache
	default:
		responseCache = cache.NewMemoryCache()
	}

	corrector := spell.NewDictCorrector(catalog.Vocabulary(), spell.Config{
		Depth: cfg.Matching.SpellDepth,
	})
	scorer := textsim.NewLevenshteinScorer()

	// Initialize usecase layer
	chatService := usecase.NewChatService(
		responseCache,
		corrector,
		scorer,
		catalog.Drones(),
		catalog.Keywords(),
		catalog.Generics(),
		logger,
		usecase.ChatServiceConfig{
			CacheTTL:           cfg.Cache.TTL,
			FuzzyThreshold:     cfg.Matching.FuzzyThreshold,
			EnableDebugLogging: cfg.Matching.EnableDebugLogging,
		},
	)

	logger.Info().
		Int("drones", len(catalog.Drones())).
		Int("keywords", len(catalog.Keywords())).
		Int("vocabulary", len(catalog.Vocabulary())).
		Msg("catalog loaded")

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(chatService, logger)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler, logger)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	logger.Info().Str("addr", addr).Msg("server listening")

	if err := router.Run(addr); err != nil {
		logger.Fatal().Err(err).Msg("failed to start server")
	}
}
