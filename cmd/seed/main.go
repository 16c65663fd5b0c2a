package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	"portfolio/internal/config"
	"portfolio/internal/database"
	"portfolio/internal/repositories"
	"portfolio/internal/services"
)

// Seeds the projects table with sample content. Safe to run repeatedly:
// it is a no-op when any projects already exist.
func main() {
	logger := newLogger()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	pool, err := database.Connect(cfg.DB, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	if err := database.RunMigrations(pool, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	projectRepo := repositories.NewProjectRepository(pool, logger)
	seedService := services.NewSeedService(projectRepo, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := seedService.Run(ctx); err != nil {
		logger.Fatal("Seed failed", zap.Error(err))
	}
}

func newLogger() *zap.Logger {
	zapConfig := zap.NewProductionConfig()
	zapConfig.EncoderConfig.TimeKey = "timestamp"
	zapConfig.EncoderConfig.MessageKey = "message"

	logger, err := zapConfig.Build()
	if err != nil {
		panic(err)
	}
	return logger
}
