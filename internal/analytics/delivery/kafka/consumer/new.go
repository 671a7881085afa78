package consumer

import (
	"fmt"

	"appsearch-srv/config"
	"appsearch-srv/internal/analytics"
	kafkaDelivery "appsearch-srv/internal/analytics/delivery/kafka"
	pkgKafka "appsearch-srv/pkg/kafka"
	"appsearch-srv/pkg/log"
)

// Config holds the configuration for analytics consumer
type Config struct {
	Logger      log.Logger
	KafkaConfig config.KafkaConfig
	UseCase     analytics.UseCase
}

// Consumer manages Kafka consumer groups for analytics domain
type Consumer struct {
	l       log.Logger
	brokers []string
	topic   string
	groupID string
	uc      analytics.UseCase

	clicksGroup pkgKafka.IConsumer
}

// New creates a new analytics consumer
func New(cfg Config) (*Consumer, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if cfg.UseCase == nil {
		return nil, fmt.Errorf("usecase is required")
	}
	if len(cfg.KafkaConfig.Brokers) == 0 {
		return nil, fmt.Errorf("kafka brokers are required")
	}

	topic := cfg.KafkaConfig.Topic
	if topic == "" {
		topic = kafkaDelivery.TopicClicks
	}
	groupID := cfg.KafkaConfig.GroupID
	if groupID == "" {
		groupID = kafkaDelivery.ConsumerGroupClicks
	}

	return &Consumer{
		l:       cfg.Logger,
		brokers: cfg.KafkaConfig.Brokers,
		topic:   topic,
		groupID: groupID,
		uc:      cfg.UseCase,
	}, nil
}

// Close closes all consumer groups
func (c *Consumer) Close() error {
	if c.clicksGroup != nil {
		if err := c.clicksGroup.Close(); err != nil {
			return fmt.Errorf("failed to close clicks group: %w", err)
		}
	}
	return nil
}

func (c *Consumer) createConsumerGroup(groupID string) (pkgKafka.IConsumer, error) {
	group, err := pkgKafka.NewConsumer(pkgKafka.ConsumerConfig{
		Brokers: c.brokers,
		GroupID: groupID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group %s: %w", groupID, err)
	}
	return group, nil
}
