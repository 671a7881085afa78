package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"appsearch-srv/internal/analytics"
	kafkaDelivery "appsearch-srv/internal/analytics/delivery/kafka"
)

// PublishClick publishes a click event keyed by engine so clicks on one engine stay ordered.
func (p *implProducer) PublishClick(ctx context.Context, event analytics.ClickEvent) error {
	body, err := json.Marshal(kafkaDelivery.ToClickMessage(event))
	if err != nil {
		return fmt.Errorf("failed to marshal click event: %w", err)
	}

	key := []byte(event.Data.EngineName)
	if err := p.producer.Publish(key, body); err != nil {
		return fmt.Errorf("failed to publish click event: %w", err)
	}

	p.l.Debugf(ctx, "analytics.delivery.kafka.producer.PublishClick: published click %s on %s", event.EventID, event.Data.DocumentID)
	return nil
}
