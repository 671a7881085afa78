package metrics

import "github.com/prometheus/client_golang/prometheus"

// Config configures the registry.
type Config struct {
	Namespace               string
	ServiceName             string
	EnableDefaultCollectors bool
}

// Metrics holds the service registry and the engine call instruments.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	Registry *prometheus.Registry

	requests   *prometheus.CounterVec
	latency    *prometheus.HistogramVec
	cacheReads *prometheus.CounterVec
}
