// Package timeouts holds the deadlines used around Mongo I/O.
//
// The site reads its content once at startup, so only three budgets exist:
//   - Ping: health checks and connection verification
//   - Load: reading every content collection into memory
//   - Write: replacing content collections (seed) and ensuring indexes
package timeouts

import (
	"context"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultPing  = 2 * time.Second
	DefaultLoad  = 15 * time.Second
	DefaultWrite = 60 * time.Second
)

var mu sync.RWMutex

var (
	ping  = DefaultPing
	load  = DefaultLoad
	write = DefaultWrite
)

// Ping returns the timeout for connectivity checks.
func Ping() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return ping
}

// Load returns the timeout for reading the full content snapshot.
func Load() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return load
}

// Write returns the timeout for seeding collections and building indexes.
func Write() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return write
}

// Config holds timeout values. Zero fields keep the current value.
type Config struct {
	Ping  time.Duration
	Load  time.Duration
	Write time.Duration
}

// Configure overrides the non-zero fields of cfg.
func Configure(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	if cfg.Ping > 0 {
		ping = cfg.Ping
	}
	if cfg.Load > 0 {
		load = cfg.Load
	}
	if cfg.Write > 0 {
		write = cfg.Write
	}
}

// Reset restores the defaults. Useful for testing.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	ping = DefaultPing
	load = DefaultLoad
	write = DefaultWrite
}

// ConfigureFromEnv reads LABSITE_TIMEOUT_PING, LABSITE_TIMEOUT_LOAD and
// LABSITE_TIMEOUT_WRITE (Go duration strings). Invalid or non-positive values
// are ignored. Returns how many values were applied.
func ConfigureFromEnv() int {
	vars := []struct {
		key string
		dst *time.Duration
	}{
		{"LABSITE_TIMEOUT_PING", &ping},
		{"LABSITE_TIMEOUT_LOAD", &load},
		{"LABSITE_TIMEOUT_WRITE", &write},
	}

	mu.Lock()
	defer mu.Unlock()
	configured := 0
	for _, v := range vars {
		raw := os.Getenv(v.key)
		if raw == "" {
			continue
		}
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			*v.dst = d
			configured++
		}
	}
	return configured
}

// Current returns the active configuration, for logging.
func Current() Config {
	mu.RLock()
	defer mu.RUnlock()
	return Config{Ping: ping, Load: load, Write: write}
}

// WithTimeout wraps context.WithTimeout and logs a warning from the returned
// cancel func when the deadline was the reason the context ended.
//
//	ctx, cancel := timeouts.WithTimeout(ctx, timeouts.Load(), logger, "load content")
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
