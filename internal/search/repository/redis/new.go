package redis

import (
	"appsearch-srv/internal/search/repository"
	"appsearch-srv/pkg/log"
	pkgRedis "appsearch-srv/pkg/redis"
)

type implCacheRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
}

// New - Factory
func New(redis pkgRedis.IRedis, l log.Logger) repository.CacheRepository {
	return &implCacheRepository{
		redis: redis,
		l:     l,
	}
}
