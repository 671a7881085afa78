package repository

import "errors"

var (
	ErrCacheMiss         = errors.New("repository: cache miss")
	ErrCacheSetFailed    = errors.New("repository: failed to set cache")
	ErrCacheDeleteFailed = errors.New("repository: failed to delete cache")
)
