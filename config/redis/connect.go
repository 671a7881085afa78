package redis

import (
	"context"
	"fmt"
	"sync"

	"appsearch-srv/config"
	"appsearch-srv/pkg/redis"
)

var (
	instance redis.IRedis
	mu       sync.RWMutex
)

// Connect opens the response cache connection once and pings it.
func Connect(ctx context.Context, cfg config.RedisConfig) (redis.IRedis, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	client, err := redis.NewRedis(redis.RedisConfig{
		Host:     cfg.Host,
		Port:     cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Redis client: %w", err)
	}

	if err := client.Ping(ctx); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}

	instance = client
	return instance, nil
}

// HealthCheck pings the connection opened by Connect.
func HealthCheck(ctx context.Context) error {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		return fmt.Errorf("Redis client not initialized")
	}
	return instance.Ping(ctx)
}

// Disconnect closes the connection. It is a no-op when not connected.
func Disconnect() error {
	mu.Lock()
	defer mu.Unlock()

	if instance == nil {
		return nil
	}
	err := instance.Close()
	instance = nil
	return err
}
