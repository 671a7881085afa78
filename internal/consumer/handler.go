package consumer

import (
	"context"
	"fmt"

	analyticsConsumer "appsearch-srv/internal/analytics/delivery/kafka/consumer"
	analyticsUsecase "appsearch-srv/internal/analytics/usecase"
)

type domainConsumers struct {
	analyticsConsumer *analyticsConsumer.Consumer
}

// setupDomains initializes all domain layers (usecases, consumers)
func (srv *ConsumerServer) setupDomains(ctx context.Context) (*domainConsumers, error) {
	// The consumer only reports clicks, it never queues them again.
	analyticsUC := analyticsUsecase.New(srv.appSearch, nil, srv.metrics, srv.l, analyticsUsecase.Config{Enabled: true})
	analyticsCons, err := analyticsConsumer.New(analyticsConsumer.Config{
		Logger:      srv.l,
		KafkaConfig: srv.kafkaConfig,
		UseCase:     analyticsUC,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create analytics consumer: %w", err)
	}

	srv.l.Infof(ctx, "Analytics domain initialized")

	return &domainConsumers{
		analyticsConsumer: analyticsCons,
	}, nil
}

// startConsumers starts all domain consumers in background goroutines
func (srv *ConsumerServer) startConsumers(ctx context.Context, consumers *domainConsumers) error {
	if err := consumers.analyticsConsumer.ConsumeClicks(ctx); err != nil {
		return fmt.Errorf("failed to start analytics consumer: %w", err)
	}

	srv.l.Infof(ctx, "All consumers started successfully")
	return nil
}

// stopConsumers gracefully stops all domain consumers
func (srv *ConsumerServer) stopConsumers(ctx context.Context, consumers *domainConsumers) {
	if consumers.analyticsConsumer != nil {
		if err := consumers.analyticsConsumer.Close(); err != nil {
			srv.l.Errorf(ctx, "Error closing analytics consumer: %v", err)
		}
	}

	srv.l.Infof(ctx, "All consumers stopped")
}
