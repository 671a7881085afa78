package consumer

import (
	"context"

	"github.com/IBM/sarama"
)

type clickHandler struct {
	consumer *Consumer
}

func (h *clickHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *clickHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *clickHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		if err := h.consumer.handleClickMessage(session.Context(), msg); err != nil {
			h.consumer.l.Errorf(context.Background(), "analytics.delivery.kafka.consumer.ConsumeClaim: failed to process click: %v", err)
			continue
		}
		session.MarkMessage(msg, "")
	}
	return nil
}
