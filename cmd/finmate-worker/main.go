package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"finmate/internal/config"
	"finmate/internal/export/sheets"
	"finmate/internal/log"
	"finmate/internal/services"
	"finmate/internal/storage"
	"finmate/internal/worker"
)

func main() {
	_ = godotenv.Load()

	logger := log.New(log.Config{Component: log.ComponentWorker})
	log.SetDefault(logger)

	logger.Info("Starting finmate-worker")

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
	if err != nil {
		logger.Error("Failed to initialize SQLite repository", "error", err, "path", cfg.SQLiteDBPath)
		os.Exit(1)
	}
	defer repo.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var sheetsClient *sheets.Client
	if cfg.SheetsExportEnabled() {
		sheetsClient, err = sheets.NewClient(ctx, sheets.Options{
			SpreadsheetID: cfg.GoogleSpreadsheetID,
			SheetName:     cfg.GoogleSheetName,
			ClientJSON:    cfg.GoogleOAuthClientJSON,
			ClientFile:    cfg.GoogleOAuthClientFile,
			TokenJSON:     cfg.GoogleOAuthTokenJSON,
			TokenFile:     cfg.GoogleOAuthTokenFile,
		})
		if err != nil {
			logger.Error("Failed to initialize Sheets client", "error", err)
			os.Exit(1)
		}
		logger.Info("Sheets export enabled", "spreadsheet_id", cfg.GoogleSpreadsheetID)
	} else {
		logger.Info("Sheets export disabled - no GOOGLE_SPREADSHEET_ID provided")
	}

	w := worker.New(worker.Options{
		Budgets:          services.NewBudgetService(repo),
		Rollover:         services.NewRolloverProcessor(repo),
		AMQPURL:          cfg.AMQPURL,
		AMQPExchange:     cfg.AMQPExchange,
		AMQPQueue:        cfg.AMQPQueue,
		RolloverInterval: cfg.RolloverInterval,
		Analytics:        services.NewAnalyticsService(repo),
		Sheets:           sheetsClient,
		ExportUsers:      cfg.ExportUserIDs,
	})

	if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Worker stopped with error", "error", err)
		os.Exit(1)
	}

	logger.Info("Worker shutdown complete")
}
