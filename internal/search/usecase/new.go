package usecase

import (
	"time"

	"appsearch-srv/internal/search"
	"appsearch-srv/internal/search/repository"
	"appsearch-srv/pkg/appsearch"
	"appsearch-srv/pkg/log"
	"appsearch-srv/pkg/metrics"
)

// Config - Cấu hình UseCase
type Config struct {
	PageLimit        int           // Deepest page the engine serves (default 100)
	ResultsLimit     int           // Most results the engine pages through (default 10000)
	EnginePrefix     string        // Prepended to the index name as "<prefix>-<index>"
	AnalyticsEnabled bool          // Attach click tracking data to every record
	CacheTTL         time.Duration // Response cache lifetime, 0 disables the cache
	Concurrency      int           // Parallel engine calls in MultiSearch
}

// DefaultConfig - Cấu hình mặc định
func DefaultConfig() Config {
	return Config{
		PageLimit:    search.DefaultPageLimit,
		ResultsLimit: search.DefaultResultsLimit,
		Concurrency:  4,
	}
}

// implUseCase - Implementation của UseCase interface
type implUseCase struct {
	client    appsearch.IClient
	cacheRepo repository.CacheRepository
	metrics   *metrics.Metrics
	l         log.Logger
	cfg       Config
}

// New - Factory function. cacheRepo and m may be nil.
func New(
	client appsearch.IClient,
	cacheRepo repository.CacheRepository,
	m *metrics.Metrics,
	l log.Logger,
	cfg Config,
) search.UseCase {
	if cfg.PageLimit <= 0 {
		cfg.PageLimit = search.DefaultPageLimit
	}
	if cfg.ResultsLimit <= 0 {
		cfg.ResultsLimit = search.DefaultResultsLimit
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 1
	}
	return &implUseCase{
		client:    client,
		cacheRepo: cacheRepo,
		metrics:   m,
		l:         l,
		cfg:       cfg,
	}
}
