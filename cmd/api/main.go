package main

import (
	"context"
	"fmt"

	"appsearch-srv/config"
	configAppSearch "appsearch-srv/config/appsearch"
	configKafka "appsearch-srv/config/kafka"
	configRedis "appsearch-srv/config/redis"
	"appsearch-srv/internal/httpserver"
	pkgKafka "appsearch-srv/pkg/kafka"
	"appsearch-srv/pkg/log"
	"appsearch-srv/pkg/metrics"
	pkgRedis "appsearch-srv/pkg/redis"
)

// @title       App Search Gateway API
// @description Search, suggestions and click tracking over App Search engines.
// @version     1
// @BasePath    /
//
// @securityDefinitions.apikey InternalKey
// @in header
// @name Authorization
// @description Shared internal key required by the cache admin routes.
func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
	ctx := context.Background()

	// 3. App Search client
	appSearchClient, err := configAppSearch.NewClient(cfg.AppSearch)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize App Search client: %v", err)
		return
	}
	logger.Infof(ctx, "App Search client initialized for %s", cfg.AppSearch.Host)

	// 4. Redis response cache (optional)
	var redisClient pkgRedis.IRedis
	if cfg.Cache.Enabled {
		redisClient, err = configRedis.Connect(ctx, cfg.Redis)
		if err != nil {
			logger.Errorf(ctx, "Failed to connect to Redis: %v", err)
			return
		}
		defer configRedis.Disconnect()
		logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)
	}

	// 5. Kafka click producer (optional)
	var kafkaProducer pkgKafka.IProducer
	if cfg.Kafka.Enabled && cfg.Analytics.Enabled {
		kafkaProducer, err = configKafka.ConnectProducer(cfg.Kafka)
		if err != nil {
			logger.Errorf(ctx, "Failed to connect to Kafka producer: %v", err)
			return
		}
		defer configKafka.DisconnectProducer()
		logger.Infof(ctx, "Kafka producer initialized for topic %s", cfg.Kafka.Topic)
	}

	// 6. Metrics (optional)
	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New(metrics.Config{
			Namespace:               cfg.Metrics.Namespace,
			ServiceName:             httpserver.ServiceName,
			EnableDefaultCollectors: true,
		})
	}

	// 7. Initialize HTTP server
	httpServer, err := httpserver.New(httpserver.Config{
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Config:      cfg,

		AppSearchClient: appSearchClient,

		RedisClient:   redisClient,
		KafkaProducer: kafkaProducer,
		Metrics:       m,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}
}
