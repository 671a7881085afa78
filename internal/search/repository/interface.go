package repository

import (
	"context"
	"time"
)

//go:generate mockery --name CacheRepository
type CacheRepository interface {
	GetResponse(ctx context.Context, cacheKey string) ([]byte, error)
	SaveResponse(ctx context.Context, cacheKey string, data []byte, ttl time.Duration) error
	InvalidateEngine(ctx context.Context, engine string) (int, error)
}
