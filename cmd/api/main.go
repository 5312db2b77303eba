package main

import (
	"context"
	"fmt"
	"time"

	"study-assistant/config"
	_ "study-assistant/docs" // Swagger docs
	"study-assistant/internal/httpserver"
	"study-assistant/internal/model"
	reminderInmem "study-assistant/internal/reminder/repository/inmem"
	"study-assistant/internal/session"
	"study-assistant/pkg/llmprovider"
	"study-assistant/pkg/log"
)

// @title       Personal Study Assistant API
// @description Session-scoped study helper: Q&A, summaries, topic notes, quizzes and reminders over pluggable LLM providers.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()
	logger.Info(ctx, "Starting Personal Study Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. LLM providers. A missing credential keeps the model listed
	// but not ready; startup never fails over an absent key.
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize LLM providers: %v", err)
		return
	}
	registry := llmprovider.NewRegistry(providers, logger)
	for _, st := range registry.Models() {
		if st.Ready {
			logger.Infof(ctx, "Model %s (%s) ready", st.Model, st.Provider)
		} else {
			logger.Warnf(ctx, "Model %s (%s) not ready: credential missing", st.Model, st.Provider)
		}
	}

	// 4. Reminder store + session registry. Evicted sessions drop
	// their reminders so nothing outlives its session.
	reminderRepo := reminderInmem.New(logger)

	ttl, err := time.ParseDuration(cfg.Session.TTL)
	if err != nil {
		logger.Warnf(ctx, "Invalid session TTL %q, using default: %v", cfg.Session.TTL, err)
		ttl = 0
	}
	sessions := session.NewManager(
		logger,
		ttl,
		cfg.Session.MaxSessions,
		model.StudyOptions{
			Model:       cfg.Study.DefaultModel,
			Temperature: cfg.Study.DefaultTemperature,
			StudyMode:   cfg.Study.DefaultStudyMode,
		},
		func(sessionID string) {
			if err := reminderRepo.ClearAll(context.Background(), sessionID); err != nil {
				logger.Errorf(context.Background(), "Failed to clear reminders for evicted session %s: %v", sessionID, err)
			}
		},
	)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Registry:        registry,
		Sessions:        sessions,
		ReminderRepo:    reminderRepo,
		RateLimitPerMin: cfg.RateLimit.RequestsPerMin,
		Timezone:        cfg.Session.Timezone,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
