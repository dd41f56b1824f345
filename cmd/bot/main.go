package main

import (
	"context"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/ayra-my/ayra/internal/bot"
	"github.com/ayra-my/ayra/internal/egg"
	"github.com/ayra-my/ayra/internal/fatigue"
	"github.com/ayra-my/ayra/internal/mood"
	"github.com/ayra-my/ayra/internal/pipeline"
	"github.com/ayra-my/ayra/internal/router"
	"github.com/ayra-my/ayra/internal/storage"
	"github.com/ayra-my/ayra/pkg/config"
)

func main() {
	// Initialize logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Load configuration
	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err), zap.String("path", "config.yaml"))
	}

	// Initialize storage
	var store storage.Storage
	if cfg.Database.UseInMemory {
		logger.Info("Using in-memory storage")
		store = storage.NewMemoryStorage()
	} else {
		logger.Info("Using PostgreSQL storage")
		dbConfig := storage.DatabaseConfig{
			Host:        cfg.Database.Host,
			Port:        cfg.Database.Port,
			User:        cfg.Database.User,
			Password:    cfg.Database.Password,
			DBName:      cfg.Database.DBName,
			SSLMode:     cfg.Database.SSLMode,
			UseInMemory: cfg.Database.UseInMemory,
		}
		store, err = storage.NewPostgresStorage(dbConfig, logger)
		if err != nil {
			logger.Fatal("Failed to initialize storage", zap.Error(err))
		}
	}
	defer store.Close()

	vault := storage.NewKeywordVault()

	// Initialize the model router and its backends. Gemini is the default
	// conversational backend and is required; the others are optional.
	r := router.New(logger, time.Duration(cfg.Pipeline.GenerationTimeoutSecs)*time.Second)

	gemini, err := router.NewGeminiBackend(context.Background(), cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		logger.Fatal("Failed to initialize Gemini backend", zap.Error(err))
	}
	r.Register(router.KindChat, gemini)

	if cfg.DeepSeek.APIKey != "" {
		deepseek, err := router.NewDeepSeekBackend(cfg.DeepSeek.APIKey, cfg.DeepSeek.BaseURL,
			cfg.DeepSeek.Model, cfg.DeepSeek.MaxTokens, cfg.DeepSeek.Temperature)
		if err != nil {
			logger.Fatal("Failed to initialize DeepSeek backend", zap.Error(err))
		}
		r.Register(router.KindCoding, deepseek)
	} else {
		logger.Info("DeepSeek backend not configured, coding prompts will degrade")
	}

	if cfg.Claude.APIKey != "" {
		claude, err := router.NewClaudeBackend(cfg.Claude.APIKey, cfg.Claude.BaseURL,
			cfg.Claude.Model, cfg.Claude.MaxTokens, cfg.Claude.Temperature)
		if err != nil {
			logger.Fatal("Failed to initialize Claude backend", zap.Error(err))
		}
		r.Register(router.KindEthics, claude)
	} else {
		logger.Info("Claude backend not configured, ethics prompts will degrade")
	}

	// Initialize the command interpreter and orchestrator
	eggs := egg.NewInterpreter(store, rand.New(rand.NewSource(time.Now().UnixNano())))
	orchestrator := pipeline.NewOrchestrator(store, vault, r, eggs, logger)

	newSession := func() *pipeline.Session {
		return pipeline.NewSession(
			mood.NewTracker(mood.NewLexiconScorer(), cfg.Pipeline.MoodWindow),
			fatigue.NewGate(
				time.Duration(cfg.Pipeline.FatigueThresholdSecs)*time.Second,
				time.Duration(cfg.Pipeline.FatigueCooldownSecs)*time.Second,
			),
		)
	}

	// Initialize bot
	b, err := bot.New(cfg.Telegram.Token, orchestrator, store, vault, newSession, logger)
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	// Start the bot
	if err := b.Start(); err != nil {
		logger.Fatal("Bot error", zap.Error(err))
	}
}
