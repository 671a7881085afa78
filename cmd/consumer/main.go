package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"appsearch-srv/config"
	configAppSearch "appsearch-srv/config/appsearch"
	"appsearch-srv/internal/consumer"
	"appsearch-srv/pkg/log"
	"appsearch-srv/pkg/metrics"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// Create context with signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting App Search click consumer...")

	// App Search
	appSearchClient, err := configAppSearch.NewClient(cfg.AppSearch)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize App Search client: %v", err)
		return
	}
	logger.Info(ctx, "App Search client initialized")

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New(metrics.Config{
			Namespace:   cfg.Metrics.Namespace,
			ServiceName: "appsearch-consumer",
		})
	}

	// Consumer server
	srv, err := consumer.New(consumer.Config{
		Logger:          logger,
		KafkaConfig:     cfg.Kafka,
		AppSearchClient: appSearchClient,
		Metrics:         m,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to create consumer server: %v", err)
		return
	}

	logger.Info(ctx, "Consumer server starting...")
	if err := srv.Run(ctx); err != nil {
		logger.Errorf(ctx, "Consumer server error: %v", err)
		return
	}

	logger.Info(ctx, "Consumer server stopped gracefully")
}
