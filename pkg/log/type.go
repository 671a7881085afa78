package log

import "go.uber.org/zap"

// ZapConfig holds logger configuration.
type ZapConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// ctxKey is the context key type for values copied into every log line.
type ctxKey string

const (
	// RequestIDKey carries the request id set by the HTTP middleware.
	RequestIDKey ctxKey = "request_id"
)
