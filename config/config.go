package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// App Search - Search engine
	AppSearch AppSearchConfig
	Search    SearchConfig
	Analytics AnalyticsConfig

	// Redis - Response cache
	Redis RedisConfig
	Cache CacheConfig

	// Kafka - Click events
	Kafka KafkaConfig

	// Monitoring
	Metrics MetricsConfig

	InternalConfig InternalConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// HTTPServerConfig is the configuration for the HTTP server
type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// AppSearchConfig is the configuration for the App Search API
type AppSearchConfig struct {
	Host         string
	Token        string
	EnginePrefix string
	Timeout      time.Duration
	Retries      int
	RetryWait    time.Duration
	PageLimit    int
	ResultsLimit int
}

// SearchConfig tunes the search usecase.
type SearchConfig struct {
	// Concurrency bounds the number of engine calls one multi search runs at once.
	Concurrency int
}

// AnalyticsConfig turns analytics tags and click tracking on.
type AnalyticsConfig struct {
	Enabled bool
}

// RedisConfig is the configuration for Redis
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// CacheConfig is the configuration for the search response cache.
type CacheConfig struct {
	Enabled   bool
	SearchTTL time.Duration
}

// KafkaConfig is the configuration for Kafka
type KafkaConfig struct {
	Enabled bool
	Brokers []string
	Topic   string
	GroupID string
}

// MetricsConfig is the configuration for Prometheus metrics
type MetricsConfig struct {
	Enabled   bool
	Namespace string
}

// InternalConfig is the configuration for internal service authentication
type InternalConfig struct {
	// InternalKey guards the cache admin routes. Leave empty to close them.
	InternalKey string
}

// Load loads configuration using Viper
func Load() (*Config, error) {
	viper.SetConfigName("appsearch-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/appsearch/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	// Config file is optional, env vars are enough
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Host = viper.GetString("http_server.host")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// App Search
	cfg.AppSearch.Host = viper.GetString("appsearch.host")
	cfg.AppSearch.Token = viper.GetString("appsearch.token")
	cfg.AppSearch.EnginePrefix = viper.GetString("appsearch.engine_prefix")
	cfg.AppSearch.Timeout = viper.GetDuration("appsearch.timeout")
	cfg.AppSearch.Retries = viper.GetInt("appsearch.retries")
	cfg.AppSearch.RetryWait = viper.GetDuration("appsearch.retry_wait")
	cfg.AppSearch.PageLimit = viper.GetInt("appsearch.page_limit")
	cfg.AppSearch.ResultsLimit = viper.GetInt("appsearch.results_limit")
	cfg.Search.Concurrency = viper.GetInt("search.concurrency")
	cfg.Analytics.Enabled = viper.GetBool("analytics.enabled")

	// Redis
	cfg.Redis.Host = viper.GetString("redis.host")
	cfg.Redis.Port = viper.GetInt("redis.port")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")
	cfg.Cache.Enabled = viper.GetBool("cache.enabled")
	cfg.Cache.SearchTTL = viper.GetDuration("cache.search_ttl")

	// Kafka
	cfg.Kafka.Enabled = viper.GetBool("kafka.enabled")
	cfg.Kafka.Brokers = viper.GetStringSlice("kafka.brokers")
	cfg.Kafka.Topic = viper.GetString("kafka.topic")
	cfg.Kafka.GroupID = viper.GetString("kafka.group_id")

	// Metrics
	cfg.Metrics.Enabled = viper.GetBool("metrics.enabled")
	cfg.Metrics.Namespace = viper.GetString("metrics.namespace")

	cfg.InternalConfig.InternalKey = viper.GetString("internal.internal_key")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	// 1. Environment & Server
	viper.SetDefault("environment.name", "production")
	viper.SetDefault("http_server.host", "")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")

	// 2. Logger
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// 3. App Search
	viper.SetDefault("appsearch.engine_prefix", "")
	viper.SetDefault("appsearch.timeout", "10s")
	viper.SetDefault("appsearch.retries", 2)
	viper.SetDefault("appsearch.retry_wait", "200ms")
	viper.SetDefault("appsearch.page_limit", 100)
	viper.SetDefault("appsearch.results_limit", 10000)
	viper.SetDefault("search.concurrency", 4)
	viper.SetDefault("analytics.enabled", false)

	// 4. Redis
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("cache.enabled", false)
	viper.SetDefault("cache.search_ttl", "5m")

	// 5. Kafka
	viper.SetDefault("kafka.enabled", false)
	viper.SetDefault("kafka.brokers", []string{"localhost:9092"})
	viper.SetDefault("kafka.topic", "appsearch.analytics.clicks")
	viper.SetDefault("kafka.group_id", "appsearch-analytics-clicks")

	// 6. Metrics
	viper.SetDefault("metrics.enabled", true)
	viper.SetDefault("metrics.namespace", "appsearch")
}

func validate(cfg *Config) error {
	if cfg.AppSearch.Host == "" {
		return fmt.Errorf("appsearch.host is required")
	}
	if cfg.AppSearch.Token == "" {
		return fmt.Errorf("appsearch.token is required")
	}
	if cfg.AppSearch.PageLimit <= 0 {
		return fmt.Errorf("appsearch.page_limit must be greater than 0")
	}
	if cfg.AppSearch.ResultsLimit <= 0 {
		return fmt.Errorf("appsearch.results_limit must be greater than 0")
	}

	if cfg.Cache.Enabled {
		if cfg.Redis.Host == "" {
			return fmt.Errorf("redis.host is required when cache is enabled")
		}
		if cfg.Redis.Port == 0 {
			return fmt.Errorf("redis.port is required when cache is enabled")
		}
		if cfg.Cache.SearchTTL <= 0 {
			return fmt.Errorf("cache.search_ttl must be greater than 0")
		}
	}

	if cfg.Kafka.Enabled && len(cfg.Kafka.Brokers) == 0 {
		return fmt.Errorf("kafka.brokers is required when kafka is enabled")
	}

	return nil
}
