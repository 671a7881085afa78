package consumer

import "fmt"

// New creates a new consumer server with dependency validation
func New(cfg Config) (*ConsumerServer, error) {
	srv := &ConsumerServer{
		l:           cfg.Logger,
		kafkaConfig: cfg.KafkaConfig,
		appSearch:   cfg.AppSearchClient,
		metrics:     cfg.Metrics,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *ConsumerServer) validate() error {
	if srv.l == nil {
		return fmt.Errorf("logger is required")
	}
	if len(srv.kafkaConfig.Brokers) == 0 {
		return fmt.Errorf("kafka brokers are required")
	}
	if srv.appSearch == nil {
		return fmt.Errorf("appsearch client is required")
	}
	return nil
}
