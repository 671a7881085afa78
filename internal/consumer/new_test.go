package consumer

import (
	"testing"

	"appsearch-srv/config"
	"appsearch-srv/pkg/log"

	"github.com/stretchr/testify/assert"
)

func TestNewValidatesDependencies(t *testing.T) {
	_, err := New(Config{})
	assert.EqualError(t, err, "logger is required")

	_, err = New(Config{Logger: log.NewNop()})
	assert.EqualError(t, err, "kafka brokers are required")

	_, err = New(Config{Logger: log.NewNop(), KafkaConfig: config.KafkaConfig{Brokers: []string{"localhost:9092"}}})
	assert.EqualError(t, err, "appsearch client is required")
}
