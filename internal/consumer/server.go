package consumer

import (
	"context"

	"appsearch-srv/config"
	"appsearch-srv/pkg/appsearch"
	"appsearch-srv/pkg/log"
	"appsearch-srv/pkg/metrics"
)

// ConsumerServer is the Kafka consumer orchestrator
type ConsumerServer struct {
	l           log.Logger
	kafkaConfig config.KafkaConfig

	appSearch appsearch.IClient
	metrics   *metrics.Metrics
}

// Config holds all dependencies for the consumer server
type Config struct {
	Logger      log.Logger
	KafkaConfig config.KafkaConfig

	AppSearchClient appsearch.IClient
	// Metrics is optional.
	Metrics *metrics.Metrics
}

// Run starts the consumer server and blocks until context is cancelled.
func (srv *ConsumerServer) Run(ctx context.Context) error {
	consumers, err := srv.setupDomains(ctx)
	if err != nil {
		srv.l.Errorf(ctx, "Failed to setup domains: %v", err)
		return err
	}

	if err := srv.startConsumers(ctx, consumers); err != nil {
		srv.l.Errorf(ctx, "Failed to start consumers: %v", err)
		srv.stopConsumers(ctx, consumers)
		return err
	}

	srv.l.Info(ctx, "Consumer Server is running")

	<-ctx.Done()
	srv.l.Info(ctx, "Shutdown signal received, stopping consumers...")

	srv.stopConsumers(context.Background(), consumers)

	srv.l.Info(ctx, "Consumer Server stopped gracefully")
	return nil
}
