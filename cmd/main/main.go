package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"gitlab.com/timkado/api/daisi-supportdesk/internal/cache"
	"gitlab.com/timkado/api/daisi-supportdesk/internal/config"
	"gitlab.com/timkado/api/daisi-supportdesk/internal/httpapi"
	"gitlab.com/timkado/api/daisi-supportdesk/internal/observer"
	"gitlab.com/timkado/api/daisi-supportdesk/internal/storage"
	"gitlab.com/timkado/api/daisi-supportdesk/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// All timestamps are stored and served in UTC.
	time.Local = time.UTC

	cfg, err := config.LoadConfig("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Log.Info("Starting daisi-supportdesk",
		zap.String("environment", cfg.Environment),
		zap.String("version", httpapi.ServiceVersion))

	observer.InitMetrics(cfg.Metrics.Enabled)

	if cfg.Database.PostgresDSN == "" {
		logger.Log.Fatal("POSTGRES_DSN is required")
	}

	repo, err := storage.NewPostgresRepo(cfg.Database.PostgresDSN, cfg.Database.PostgresAutoMigrate)
	if err != nil {
		logger.Log.Fatal("Failed to connect to postgres", zap.Error(err))
	}

	redisClient := cache.NewClient(cache.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	server := httpapi.NewServer(
		fmt.Sprintf(":%d", cfg.Server.Port),
		httpapi.Dependencies{
			Repo:           repo,
			Database:       repo,
			Redis:          redisClient,
			MetricsEnabled: cfg.Metrics.Enabled,
		},
		logger.Log,
	)
	server.Start()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Log.Info("Shutdown signal received", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		logger.Log.Error("Error stopping API server", zap.Error(err))
	}
	if err := redisClient.Close(); err != nil {
		logger.Log.Error("Error closing redis client", zap.Error(err))
	}
	if err := repo.Close(ctx); err != nil {
		logger.Log.Error("Error closing postgres connection", zap.Error(err))
	}

	logger.Log.Info("Shutdown complete")
}
