package producer

import (
	"appsearch-srv/internal/analytics"
	pkgKafka "appsearch-srv/pkg/kafka"
	"appsearch-srv/pkg/log"
)

// Producer interface for analytics domain
type Producer interface {
	analytics.Producer
}

type implProducer struct {
	l        log.Logger
	producer pkgKafka.IProducer
}

// New creates a new analytics producer
func New(l log.Logger, producer pkgKafka.IProducer) Producer {
	return &implProducer{
		l:        l,
		producer: producer,
	}
}
