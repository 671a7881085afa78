package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// New builds a registry with the engine instruments registered.
func New(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()

	var reg prometheus.Registerer = registry
	if cfg.ServiceName != "" {
		reg = prometheus.WrapRegistererWith(prometheus.Labels{"service": cfg.ServiceName}, registry)
	}

	if cfg.EnableDefaultCollectors {
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	m := &Metrics{
		Registry: registry,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "engine_requests_total",
			Help:      "Engine requests by operation and outcome.",
		}, []string{"operation", "outcome"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: cfg.Namespace,
			Name:      "engine_request_duration_seconds",
			Help:      "Engine round trip latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		cacheReads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "response_cache_reads_total",
			Help:      "Response cache lookups by result.",
		}, []string{"result"}),
	}
	reg.MustRegister(m.requests, m.latency, m.cacheReads)

	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

// Observe records one engine call.
func (m *Metrics) Observe(operation, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(operation, outcome).Inc()
	if elapsed > 0 {
		m.latency.WithLabelValues(operation).Observe(elapsed.Seconds())
	}
}

// CacheRead records a response cache lookup.
func (m *Metrics) CacheRead(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheReads.WithLabelValues(result).Inc()
}
