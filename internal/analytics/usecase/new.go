package usecase

import (
	"time"

	"appsearch-srv/internal/analytics"
	"appsearch-srv/pkg/appsearch"
	"appsearch-srv/pkg/log"
	"appsearch-srv/pkg/metrics"
)

type Config struct {
	Enabled bool
}

type implUseCase struct {
	client   appsearch.IClient
	producer analytics.Producer
	metrics  *metrics.Metrics
	l        log.Logger
	cfg      Config
	now      func() time.Time
}

// New - producer and m may be nil. Without a producer clicks are sent synchronously.
func New(client appsearch.IClient, producer analytics.Producer, m *metrics.Metrics, l log.Logger, cfg Config) analytics.UseCase {
	return &implUseCase{
		client:   client,
		producer: producer,
		metrics:  m,
		l:        l,
		cfg:      cfg,
		now:      time.Now,
	}
}
