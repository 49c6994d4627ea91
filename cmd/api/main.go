package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ai-task-scheduler/config"
	_ "ai-task-scheduler/docs" // Swagger docs
	"ai-task-scheduler/internal/httpserver"
	"ai-task-scheduler/internal/task/repository/sqlite"
	"ai-task-scheduler/pkg/gcalendar"
	"ai-task-scheduler/pkg/gemini"
	"ai-task-scheduler/pkg/log"
	"ai-task-scheduler/pkg/timetext"
)

// @title       AI Task Scheduler API
// @description AI-powered task scheduling with Gemini LLM, SQLite storage, and Google Calendar export.
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting AI Task Scheduler...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	db, err := sqlite.Open(ctx, cfg.Storage.Path)
	if err != nil {
		logger.Error(ctx, "Failed to open task storage: ", err)
		return
	}
	defer db.Close()
	logger.Infof(ctx, "Task storage ready at %s", cfg.Storage.Path)

	// 4. Gemini LLM client
	if cfg.Gemini.APIKey == "" {
		logger.Warn(ctx, "GEMINI_API_KEY is missing, analysis requests will fail")
	}
	geminiClient := gemini.NewClient(cfg.Gemini.APIKey)
	if cfg.Gemini.Model != "" {
		geminiClient.SetModel(cfg.Gemini.Model)
	}

	// 5. Time normalizer
	timezone := cfg.Gemini.Timezone
	norm, err := timetext.NewNormalizer(timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", timezone, err)
		timezone = "UTC"
		norm, _ = timetext.NewNormalizer(timezone)
	}

	// 6. Google Calendar client (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			calendarClient = nil
		} else {
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		DB:              db,
		LLM:             geminiClient,
		Calendar:        calendarClient,
		Norm:            norm,
		Timezone:        timezone,
		CalendarID:      cfg.GoogleCalendar.CalendarID,
		AnchorHour:      cfg.Scheduler.AnchorHour,
		RateLimitPerMin: cfg.Analyze.RateLimitPerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
