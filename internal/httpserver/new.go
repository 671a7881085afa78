package httpserver

import (
	"errors"

	"appsearch-srv/config"
	pkgAppSearch "appsearch-srv/pkg/appsearch"
	pkgKafka "appsearch-srv/pkg/kafka"
	"appsearch-srv/pkg/log"
	"appsearch-srv/pkg/metrics"
	pkgRedis "appsearch-srv/pkg/redis"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string
	config      *config.Config

	// Search engine
	appSearch pkgAppSearch.IClient

	// Infrastructure clients (optional)
	redisClient   pkgRedis.IRedis
	kafkaProducer pkgKafka.IProducer
	metrics       *metrics.Metrics
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string
	Config      *config.Config

	// Search engine
	AppSearchClient pkgAppSearch.IClient

	// RedisClient enables the response cache when set.
	RedisClient pkgRedis.IRedis
	// KafkaProducer queues click events when set. Clicks are sent directly otherwise.
	KafkaProducer pkgKafka.IProducer
	Metrics       *metrics.Metrics
}

// New creates a new HTTPServer instance with the provided configuration.
func New(cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		gin:         gin.New(),
		l:           cfg.Logger,
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		config:      cfg.Config,

		appSearch: cfg.AppSearchClient,

		redisClient:   cfg.RedisClient,
		kafkaProducer: cfg.KafkaProducer,
		metrics:       cfg.Metrics,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.config == nil {
		return errors.New("config is required")
	}
	if srv.appSearch == nil {
		return errors.New("appSearch client is required")
	}
	return nil
}
