package kafka

import (
	"errors"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig(t *testing.T) {
	assert.ErrorIs(t, validateProducerConfig(Config{}), ErrNoBrokers)
	assert.ErrorIs(t, validateProducerConfig(Config{Brokers: []string{"b:9092"}}), ErrTopicRequired)
	assert.NoError(t, validateProducerConfig(Config{Brokers: []string{"b:9092"}, Topic: "t"}))

	assert.ErrorIs(t, validateConsumerConfig(ConsumerConfig{}), ErrNoBrokers)
	assert.ErrorIs(t, validateConsumerConfig(ConsumerConfig{Brokers: []string{"b:9092"}}), ErrGroupRequired)

	_, err := NewProducer(Config{})
	assert.ErrorIs(t, err, ErrNoBrokers)
	_, err = NewConsumer(ConsumerConfig{Brokers: []string{"b:9092"}})
	assert.ErrorIs(t, err, ErrGroupRequired)
}

func TestPublish(t *testing.T) {
	mock := mocks.NewSyncProducer(t, nil)
	mock.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		if string(val) != `{"a":1}` {
			return errors.New("unexpected value " + string(val))
		}
		return nil
	})
	mock.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := &producerImpl{producer: mock, topic: "clicks"}
	require.NoError(t, p.Publish([]byte("k"), []byte(`{"a":1}`)))

	err := p.Publish([]byte("k"), []byte("x"))
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)

	require.NoError(t, p.HealthCheck())
	require.NoError(t, p.Close())
}

func TestUninitialisedProducer(t *testing.T) {
	p := &producerImpl{}
	assert.ErrorIs(t, p.HealthCheck(), ErrNotInitialized)
	assert.ErrorIs(t, p.Publish(nil, nil), ErrNotInitialized)
	assert.NoError(t, p.Close())
}
