package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	kafkaDelivery "appsearch-srv/internal/analytics/delivery/kafka"
	"appsearch-srv/pkg/log"

	"github.com/IBM/sarama"
)

// handleClickMessage decodes one click and hands it to the usecase.
// Malformed messages are skipped.
func (c *Consumer) handleClickMessage(ctx context.Context, msg *sarama.ConsumerMessage) error {
	var message kafkaDelivery.ClickMessage
	if err := json.Unmarshal(msg.Value, &message); err != nil {
		c.l.Warnf(ctx, "analytics.delivery.kafka.consumer.handleClickMessage: invalid message at partition %d offset %d (skipping): %v",
			msg.Partition, msg.Offset, err)
		return nil
	}

	if message.EngineName == "" || message.DocumentID == "" {
		c.l.Warnf(ctx, "analytics.delivery.kafka.consumer.handleClickMessage: missing engine or document (skipping)")
		return nil
	}

	if message.RequestID != "" {
		ctx = log.SetRequestID(ctx, message.RequestID)
	}

	if err := c.uc.ProcessClick(ctx, message.ToClickEvent()); err != nil {
		return fmt.Errorf("usecase error: %w", err)
	}
	return nil
}
