package kafka

import (
	"fmt"
	"sync"

	"appsearch-srv/config"
	"appsearch-srv/pkg/kafka"
)

var (
	producer   kafka.IProducer
	producerMu sync.RWMutex
)

// ConnectProducer creates the click events producer once and returns it on
// every later call.
func ConnectProducer(cfg config.KafkaConfig) (kafka.IProducer, error) {
	producerMu.Lock()
	defer producerMu.Unlock()

	if producer != nil {
		return producer, nil
	}

	client, err := kafka.NewProducer(kafka.Config{
		Brokers: cfg.Brokers,
		Topic:   cfg.Topic,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Kafka producer: %w", err)
	}

	producer = client
	return producer, nil
}

// ProducerHealthCheck reports whether the producer is connected.
func ProducerHealthCheck() error {
	producerMu.RLock()
	defer producerMu.RUnlock()

	if producer == nil {
		return fmt.Errorf("Kafka producer not initialized")
	}
	return producer.HealthCheck()
}

// DisconnectProducer closes the producer. It is a no-op when not connected.
func DisconnectProducer() error {
	producerMu.Lock()
	defer producerMu.Unlock()

	if producer == nil {
		return nil
	}
	err := producer.Close()
	producer = nil
	return err
}
