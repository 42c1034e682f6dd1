// Package timeouts provides centralized timeout values for I/O performed
// during startup and request handling.
//
// Timeouts can be configured at startup using Configure(). If not configured,
// the defaults below are used.
//
//   - Fetch: the one-shot settings document read at startup
//   - Attempt: a single HTTP attempt within Fetch
package timeouts

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Default timeout values (used if Configure is not called).
const (
	DefaultFetch   = 10 * time.Second
	DefaultAttempt = 3 * time.Second
)

// mu protects all timeout values from concurrent access.
var mu sync.RWMutex

var (
	fetch   = DefaultFetch
	attempt = DefaultAttempt
)

// Fetch returns the overall timeout for reading the settings document,
// including retries.
func Fetch() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return fetch
}

// Attempt returns the timeout for one HTTP attempt of the settings read.
func Attempt() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return attempt
}

// Config holds timeout configuration values.
// Zero values are ignored (defaults are kept).
type Config struct {
	Fetch   time.Duration
	Attempt time.Duration
}

// Configure sets custom timeout values. Zero values in the config are ignored,
// keeping the current (or default) values. Call this during startup before
// the settings bootstrap runs.
//
// Example:
//
//	timeouts.Configure(timeouts.Config{
//	    Fetch: 30 * time.Second,
//	})
func Configure(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	if cfg.Fetch > 0 {
		fetch = cfg.Fetch
	}
	if cfg.Attempt > 0 {
		attempt = cfg.Attempt
	}
}

// Reset restores all timeouts to their default values.
// Useful for testing.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	fetch = DefaultFetch
	attempt = DefaultAttempt
}

// Current returns the current timeout configuration as a Config struct.
func Current() Config {
	mu.RLock()
	defer mu.RUnlock()
	return Config{
		Fetch:   fetch,
		Attempt: attempt,
	}
}

// WithTimeout creates a context with timeout and returns a cancel function that
// logs a warning if the context was canceled due to deadline exceeded.
//
// Example:
//
//	ctx, cancel := timeouts.WithTimeout(ctx, timeouts.Fetch(), logger, "settings fetch")
//	defer cancel()
func WithTimeout(parent context.Context, timeout time.Duration, log *zap.Logger, operation string) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parent, timeout)
	return ctx, func() {
		if ctx.Err() == context.DeadlineExceeded && log != nil {
			log.Warn("operation timed out",
				zap.String("operation", operation),
				zap.Duration("timeout", timeout),
			)
		}
		cancel()
	}
}
