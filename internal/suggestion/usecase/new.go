package usecase

import (
	"appsearch-srv/internal/suggestion"
	"appsearch-srv/pkg/appsearch"
	"appsearch-srv/pkg/log"
	"appsearch-srv/pkg/metrics"
)

type Config struct {
	EnginePrefix string
}

type implUseCase struct {
	client  appsearch.IClient
	metrics *metrics.Metrics
	l       log.Logger
	cfg     Config
}

// New - m may be nil.
func New(client appsearch.IClient, m *metrics.Metrics, l log.Logger, cfg Config) suggestion.UseCase {
	return &implUseCase{
		client:  client,
		metrics: m,
		l:       l,
		cfg:     cfg,
	}
}
