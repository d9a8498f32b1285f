// Package backend defines the uniform contract that every database backend
// adapter implements, along with the connection configuration handed to
// adapters and the error types surfaced through the public API.
package backend

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Row is a single result row keyed by column name.
type Row = map[string]any

// Backend represents one live backend behind the unified API. Implementations
// wrap a native driver behind execute/ping/close semantics; connection
// acquisition and release happen inside Execute on every exit path.
type Backend interface {
	// Execute runs a statement with positional parameters and returns the
	// materialized row set. Driver errors propagate unwrapped.
	Execute(ctx context.Context, query string, args []any) ([]Row, error)

	// Ping verifies backend connectivity.
	Ping(ctx context.Context) error

	// Close drains and releases all native resources held by the backend.
	Close(ctx context.Context) error
}

// Config carries validated connection details into a backend adapter.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	Database string

	// Timeout applies to connection establishment and, where the native
	// driver supports it, to communication.
	Timeout time.Duration

	// PoolOptions are caller-supplied pool tuning overrides merged over the
	// backend's defaults.
	PoolOptions map[string]any

	Logger *zap.Logger
}

// Log returns the configured logger, never nil.
func (c Config) Log() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

// IntOption reads an integer pool option, falling back to def when the key
// is absent or not numeric.
func IntOption(opts map[string]any, key string, def int) int {
	v, ok := opts[key]
	if !ok {
		return def
	}
	switch n := v.(type) {
	case int:
		return n
	case int32:
		return int(n)
	case int64:
		return int(n)
	case float64:
		return int(n)
	default:
		return def
	}
}

// DurationOption reads a duration pool option, falling back to def when the
// key is absent or not a duration.
func DurationOption(opts map[string]any, key string, def time.Duration) time.Duration {
	v, ok := opts[key]
	if !ok {
		return def
	}
	switch d := v.(type) {
	case time.Duration:
		return d
	case string:
		parsed, err := time.ParseDuration(d)
		if err != nil {
			return def
		}
		return parsed
	default:
		return def
	}
}
