// Package ratelimit implements a fixed-window request counter keyed by
// operation and client IP.
//
// Buckets live in process memory only. Several server instances each keep
// their own counters, so a deployment of N instances admits up to N times
// the configured maximum.
package ratelimit

import (
	"context"
	"sync"
	"time"

	apperrors "fitness-center/pkg/errors"

	"go.uber.org/zap"
)

// Settings is re-read on every Check so it can change at runtime.
type Settings struct {
	Enabled     bool
	Window      time.Duration
	MaxRequests int
}

type SettingsProvider interface {
	RateLimitSettings(ctx context.Context) (Settings, error)
}

// StaticSettings serves fixed values.
type StaticSettings Settings

func (s StaticSettings) RateLimitSettings(context.Context) (Settings, error) {
	return Settings(s), nil
}

type Decision struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetAt    time.Time
	// RetryAfter is set on rejection, measured on the limiter's clock.
	RetryAfter time.Duration
}

type bucket struct {
	count   int
	resetAt time.Time
}

type Limiter struct {
	mu       sync.Mutex
	buckets  map[string]*bucket
	settings SettingsProvider
	fallback Settings
	now      func() time.Time
	logger   *zap.Logger
}

type Option func(*Limiter)

func WithClock(now func() time.Time) Option {
	return func(l *Limiter) { l.now = now }
}

// New builds a limiter. fallback is used when the provider fails or returns
// a window or maximum that is not positive.
func New(settings SettingsProvider, fallback Settings, logger *zap.Logger, opts ...Option) *Limiter {
	l := &Limiter{
		buckets:  make(map[string]*bucket),
		settings: settings,
		fallback: fallback,
		now:      time.Now,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Check counts one request for operation from clientIP. A rejected request
// returns apperrors.ErrRateLimited along with the decision.
func (l *Limiter) Check(ctx context.Context, operation, clientIP string) (Decision, error) {
	cfg := l.currentSettings(ctx)
	if !cfg.Enabled {
		return Decision{Allowed: true, Limit: cfg.MaxRequests, Remaining: cfg.MaxRequests}, nil
	}

	key := operation + ":" + clientIP
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[key]
	if !ok || !now.Before(b.resetAt) {
		b = &bucket{count: 1, resetAt: now.Add(cfg.Window)}
		l.buckets[key] = b
		return Decision{Allowed: true, Limit: cfg.MaxRequests, Remaining: cfg.MaxRequests - 1, ResetAt: b.resetAt}, nil
	}

	b.count++
	if b.count > cfg.MaxRequests {
		return Decision{
			Allowed:    false,
			Limit:      cfg.MaxRequests,
			ResetAt:    b.resetAt,
			RetryAfter: b.resetAt.Sub(now),
		}, apperrors.ErrRateLimited
	}
	return Decision{Allowed: true, Limit: cfg.MaxRequests, Remaining: cfg.MaxRequests - b.count, ResetAt: b.resetAt}, nil
}

func (l *Limiter) currentSettings(ctx context.Context) Settings {
	cfg, err := l.settings.RateLimitSettings(ctx)
	if err != nil {
		l.logger.Warn("ratelimit: settings unavailable, using defaults", zap.Error(err))
		return l.fallback
	}
	if cfg.Window <= 0 || cfg.MaxRequests <= 0 {
		l.logger.Warn("ratelimit: invalid settings, using defaults",
			zap.Duration("window", cfg.Window),
			zap.Int("maxRequests", cfg.MaxRequests),
		)
		cfg.Window = l.fallback.Window
		cfg.MaxRequests = l.fallback.MaxRequests
	}
	return cfg
}
