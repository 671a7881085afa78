package consumer

import (
	"context"
	"errors"
	"testing"

	"appsearch-srv/config"
	"appsearch-srv/internal/analytics"
	kafkaDelivery "appsearch-srv/internal/analytics/delivery/kafka"
	"appsearch-srv/pkg/log"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUseCase struct {
	events []analytics.ClickEvent
	err    error
}

func (f *fakeUseCase) TrackClick(context.Context, analytics.ClickInput) error { return nil }

func (f *fakeUseCase) ProcessClick(_ context.Context, event analytics.ClickEvent) error {
	f.events = append(f.events, event)
	return f.err
}

func newTestConsumer(t *testing.T, uc analytics.UseCase) *Consumer {
	t.Helper()
	c, err := New(Config{
		Logger:      log.NewNop(),
		KafkaConfig: config.KafkaConfig{Brokers: []string{"localhost:9092"}},
		UseCase:     uc,
	})
	require.NoError(t, err)
	return c
}

func TestNewDefaults(t *testing.T) {
	c := newTestConsumer(t, &fakeUseCase{})
	assert.Equal(t, kafkaDelivery.TopicClicks, c.topic)
	assert.Equal(t, kafkaDelivery.ConsumerGroupClicks, c.groupID)

	_, err := New(Config{Logger: log.NewNop(), UseCase: &fakeUseCase{}})
	assert.Error(t, err)
}

func TestHandleClickMessage(t *testing.T) {
	uc := &fakeUseCase{}
	c := newTestConsumer(t, uc)

	msg := &sarama.ConsumerMessage{Value: []byte(`{"event_id":"e1","engine_name":"prod-content","document_id":"d1","query_string":"q"}`)}
	require.NoError(t, c.handleClickMessage(context.Background(), msg))
	require.Len(t, uc.events, 1)
	assert.Equal(t, "prod-content", uc.events[0].Data.EngineName)
	assert.Equal(t, "d1", uc.events[0].Data.DocumentID)
}

func TestHandleClickMessageSkipsInvalid(t *testing.T) {
	uc := &fakeUseCase{}
	c := newTestConsumer(t, uc)

	assert.NoError(t, c.handleClickMessage(context.Background(), &sarama.ConsumerMessage{Value: []byte(`not json`)}))
	assert.NoError(t, c.handleClickMessage(context.Background(), &sarama.ConsumerMessage{Value: []byte(`{"engine_name":"e"}`)}))
	assert.Empty(t, uc.events)
}

func TestHandleClickMessageUseCaseError(t *testing.T) {
	c := newTestConsumer(t, &fakeUseCase{err: errors.New("boom")})
	msg := &sarama.ConsumerMessage{Value: []byte(`{"engine_name":"e","document_id":"d"}`)}
	assert.Error(t, c.handleClickMessage(context.Background(), msg))
}
