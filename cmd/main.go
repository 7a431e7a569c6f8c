package main

import (
	"context"
	"log"

	"github.com/shaibs3/pagecatalog/internal/app"
	"github.com/shaibs3/pagecatalog/internal/config"
	"github.com/shaibs3/pagecatalog/internal/logger"
	"go.uber.org/zap"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// bootstrap logger until the configured level is known
	initialLogger, err := logger.NewLogger("production", "info")
	if err != nil {
		log.Fatal("failed to initialize logger:", err)
	}
	defer func() {
		_ = initialLogger.Sync()
	}()

	cfg := config.Load(initialLogger)

	appLogger, err := logger.NewLogger(cfg.Environment, cfg.LogLevel)
	if err != nil {
		initialLogger.Fatal("failed to create application logger", zap.Error(err))
	}
	defer func() {
		_ = appLogger.Sync()
	}()

	appLogger.Info("Build info",
		zap.String("version", version),
		zap.String("commit", commit),
		zap.String("date", date),
	)

	application, err := app.NewApp(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("failed to initialize application", zap.Error(err))
	}

	if err := application.Run(context.Background()); err != nil {
		appLogger.Fatal("application stopped with error", zap.Error(err))
	}
}
