package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"appsearch-srv/internal/search/repository"

	goredis "github.com/redis/go-redis/v9"
)

// =====================================================
// Engine response cache
// =====================================================

func (r *implCacheRepository) GetResponse(ctx context.Context, cacheKey string) ([]byte, error) {
	data, err := r.redis.Get(ctx, cacheKey)
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, repository.ErrCacheMiss
		}
		r.l.Errorf(ctx, "search.repository.redis.GetResponse: Failed to read cache: %v", err)
		return nil, err
	}
	return []byte(data), nil
}

func (r *implCacheRepository) SaveResponse(ctx context.Context, cacheKey string, data []byte, ttl time.Duration) error {
	if err := r.redis.Set(ctx, cacheKey, data, ttl); err != nil {
		r.l.Errorf(ctx, "search.repository.redis.SaveResponse: Failed to save to cache: %v", err)
		return fmt.Errorf("%w: %v", repository.ErrCacheSetFailed, err)
	}
	return nil
}

// =====================================================
// Cache Invalidation
// =====================================================

func (r *implCacheRepository) InvalidateEngine(ctx context.Context, engine string) (int, error) {
	pattern := repository.EnginePattern(engine)
	client := r.redis.GetClient()

	deleted := 0
	var cursor uint64
	for {
		keys, nextCursor, err := client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			r.l.Errorf(ctx, "search.repository.redis.InvalidateEngine: Failed to scan cache: %v", err)
			return deleted, fmt.Errorf("%w: %v", repository.ErrCacheDeleteFailed, err)
		}
		if len(keys) > 0 {
			pipe := client.Pipeline()
			for _, key := range keys {
				pipe.Del(ctx, key)
			}
			if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, goredis.Nil) {
				r.l.Errorf(ctx, "search.repository.redis.InvalidateEngine: Failed to execute pipeline: %v", err)
				return deleted, fmt.Errorf("%w: %v", repository.ErrCacheDeleteFailed, err)
			}
			deleted += len(keys)
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	return deleted, nil
}
