package main

import (
	"context"
	"log/slog"
	"os"

	"marketplace-api/internal/app"
	"marketplace-api/internal/config"
	"marketplace-api/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(logger.New(cfg.LogFormat, logger.ParseLevel(cfg.LogLevel), os.Stdout)))

	application, err := app.New(context.Background(), cfg)
	if err != nil {
		slog.Error("failed to initialize application", "error", err)
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		slog.Error("application run failed", "error", err)
		os.Exit(1)
	}
}
