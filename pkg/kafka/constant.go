package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

const (
	// ClientID identifies the service to the brokers.
	ClientID = "appsearch-srv"

	ProducerTimeout  = 10 * time.Second
	ProducerRetryMax = 3

	// ConsumerSessionTimeout is how long a silent group member keeps its partitions.
	ConsumerSessionTimeout = 20 * time.Second
)

var (
	KafkaVersion = sarama.V2_6_0_0
)
