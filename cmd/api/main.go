package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"timesheet-assistant/config"
	_ "timesheet-assistant/docs" // Swagger docs
	"timesheet-assistant/internal/httpserver"
	insightHTTP "timesheet-assistant/internal/insight/delivery/http"
	insightSF "timesheet-assistant/internal/insight/repository/salesforce"
	insightUC "timesheet-assistant/internal/insight/usecase"
	"timesheet-assistant/internal/middleware"
	"timesheet-assistant/internal/model"
	"timesheet-assistant/internal/session"
	timesheetHTTP "timesheet-assistant/internal/timesheet/delivery/http"
	"timesheet-assistant/internal/timesheet/interpret"
	tsRepo "timesheet-assistant/internal/timesheet/repository"
	gcalRepo "timesheet-assistant/internal/timesheet/repository/gcal"
	tsSF "timesheet-assistant/internal/timesheet/repository/salesforce"
	timesheetUC "timesheet-assistant/internal/timesheet/usecase"
	"timesheet-assistant/pkg/gcalendar"
	"timesheet-assistant/pkg/gemini"
	"timesheet-assistant/pkg/log"
	"timesheet-assistant/pkg/salesforce"
	"timesheet-assistant/pkg/sendgrid"
)

// @title       Timesheet Assistant API
// @description Conversational weekly timesheet drafting with calendar derivation, HR submission, and manager insights.
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

	logger.Info(ctx, "Starting Timesheet Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	env := model.Environment(cfg.Environment.Name)

	// 3. Google Calendar (optional; fallback draft outside production)
	var calendarRepo tsRepo.CalendarRepository
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			calendarRepo = gcalRepo.New(calendarClient, cfg.GoogleCalendar.CalendarID, logger)
			logger.Info(ctx, "Google Calendar initialized")
		}
	} else {
		logger.Warn(ctx, "Google Calendar credentials not configured, using example week outside production")
	}

	// 4. Gemini oracle (optional; deterministic edits still work without it)
	var oracle interpret.Oracle
	var narrator insightUC.TextGenerator
	if cfg.Gemini.APIKey != "" {
		geminiClient := gemini.NewClient(cfg.Gemini.APIKey)
		geminiClient.SetModel(cfg.Gemini.Model)
		oracle = interpret.NewGeminiOracle(logger, geminiClient)
		narrator = geminiClient
	} else {
		logger.Warn(ctx, "GEMINI_API_KEY missing, only deterministic chat edits will be understood")
	}
	interp := interpret.New(logger, oracle)

	// 5. Salesforce HR store (optional; submission endpoints degrade to 503)
	var hrRepo tsRepo.HRRepository
	var insightHandler insightHTTP.Handler

	sessions, err := session.NewStore(cfg.Session.Capacity)
	if err != nil {
		logger.Error(ctx, "Failed to create session store: ", err)
		return
	}

	if cfg.Salesforce.InstanceURL != "" && cfg.Salesforce.AccessToken != "" {
		sfClient := salesforce.NewClient(cfg.Salesforce.InstanceURL, cfg.Salesforce.AccessToken)
		hrRepo = tsSF.New(sfClient, logger)
		teamRepo := insightSF.New(sfClient, logger)

		insightUseCase := insightUC.New(logger, narrator, teamRepo, hrRepo, sessions)
		insightHandler = insightHTTP.New(logger, insightUseCase, cfg.Salesforce.Username)
		logger.Info(ctx, "Salesforce HR store initialized")
	} else {
		logger.Warn(ctx, "Salesforce not configured, submission and manager routes unavailable")
	}

	// 6. SendGrid (optional; email copies disabled without it)
	var mailer timesheetUC.Mailer
	if cfg.SendGrid.APIKey != "" {
		mailer = sendgrid.NewClient(cfg.SendGrid.APIKey, sendgrid.Address{
			Email: cfg.SendGrid.FromEmail,
			Name:  cfg.SendGrid.FromName,
		})
		logger.Info(ctx, "SendGrid initialized")
	} else {
		logger.Warn(ctx, "SENDGRID_API_KEY missing, email copies disabled")
	}

	// 7. Timesheet domain
	timesheetUseCase := timesheetUC.New(logger, interp, calendarRepo, hrRepo, mailer, sessions, env)
	timesheetHandler := timesheetHTTP.New(logger, timesheetUseCase, cfg.Salesforce.Username)

	// 8. HTTP Server
	mw := middleware.New(logger, middleware.RateLimitConfig{
		PerMinute: cfg.RateLimit.ChatPerMinute,
		Burst:     cfg.RateLimit.ChatBurst,
	})

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		TimesheetHandler: timesheetHandler,
		InsightHandler:   insightHandler,
		Middleware:       mw,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
