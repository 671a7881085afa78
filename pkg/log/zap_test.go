package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"info":    zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"unknown": zapcore.InfoLevel,
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, parseLevel(in))
		})
	}
}

func TestNopLoggerAcceptsRequestID(t *testing.T) {
	l := NewNop()
	ctx := context.WithValue(context.Background(), RequestIDKey, "req-1")
	assert.NotPanics(t, func() {
		l.Infof(ctx, "search.usecase.Search: %s", "ok")
	})
}
