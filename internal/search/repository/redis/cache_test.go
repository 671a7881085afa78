package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"appsearch-srv/internal/search/repository"
	"appsearch-srv/pkg/log"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRedis struct {
	data map[string]string
	ttl  time.Duration
	err  error
}

func (f *fakeRedis) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	if f.err != nil {
		return f.err
	}
	f.data[key] = string(value.([]byte))
	f.ttl = ttl
	return nil
}

func (f *fakeRedis) Get(_ context.Context, key string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	v, ok := f.data[key]
	if !ok {
		return "", goredis.Nil
	}
	return v, nil
}

func (f *fakeRedis) Close() error { return nil }
func (f *fakeRedis) Ping(context.Context) error { return nil }
func (f *fakeRedis) GetClient() *goredis.Client { return nil }

func TestResponseCache(t *testing.T) {
	ctx := context.Background()
	rd := &fakeRedis{data: map[string]string{}}
	repo := New(rd, log.NewNop())

	_, err := repo.GetResponse(ctx, "k")
	assert.ErrorIs(t, err, repository.ErrCacheMiss)

	require.NoError(t, repo.SaveResponse(ctx, "k", []byte(`{"results":[]}`), time.Minute))
	assert.Equal(t, time.Minute, rd.ttl)

	data, err := repo.GetResponse(ctx, "k")
	require.NoError(t, err)
	assert.JSONEq(t, `{"results":[]}`, string(data))
}

func TestResponseCacheErrors(t *testing.T) {
	ctx := context.Background()
	repo := New(&fakeRedis{data: map[string]string{}, err: errors.New("connection refused")}, log.NewNop())

	_, err := repo.GetResponse(ctx, "k")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrCacheMiss)

	err = repo.SaveResponse(ctx, "k", []byte("{}"), time.Minute)
	assert.ErrorIs(t, err, repository.ErrCacheSetFailed)
}
