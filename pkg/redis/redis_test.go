package redis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRedisValidatesConfig(t *testing.T) {
	_, err := NewRedis(RedisConfig{Port: 6379})
	assert.ErrorIs(t, err, ErrHostRequired)

	_, err = NewRedis(RedisConfig{Host: "localhost", Port: 0})
	assert.ErrorIs(t, err, ErrInvalidPort)

	_, err = NewRedis(RedisConfig{Host: "localhost", Port: 70000})
	assert.ErrorIs(t, err, ErrInvalidPort)
}
