package consumer

import "context"

// ConsumeClicks starts consuming click events. It returns once the group is
// running; consumption stops when ctx is cancelled.
func (c *Consumer) ConsumeClicks(ctx context.Context) error {
	group, err := c.createConsumerGroup(c.groupID)
	if err != nil {
		return err
	}
	c.clicksGroup = group

	handler := &clickHandler{consumer: c}

	go func() {
		if err := group.ConsumeWithContext(ctx, []string{c.topic}, handler); err != nil {
			c.l.Errorf(ctx, "analytics.delivery.kafka.consumer.ConsumeClicks: consumer error: %v", err)
		}
	}()

	go func() {
		for err := range group.Errors() {
			c.l.Errorf(ctx, "analytics.delivery.kafka.consumer.ConsumeClicks: consumer group error: %v", err)
		}
	}()

	c.l.Infof(ctx, "Consuming %s", c.topic)
	return nil
}
