package middleware

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"

	pkgLog "timesheet-assistant/pkg/log"
)

// DefaultMaxSessions bounds the number of tracked limiter keys.
const DefaultMaxSessions = 4096

// RateLimitConfig bounds chat traffic per session.
type RateLimitConfig struct {
	PerMinute   int // sustained requests per minute
	Burst       int // short-term burst allowance
	MaxSessions int // limiter keys kept before LRU eviction
}

// Middleware bundles the gin middlewares with their dependencies. Limiter
// keys are LRU-bounded so abandoned sessions do not pin entries forever.
type Middleware struct {
	l        pkgLog.Logger
	cfg      RateLimitConfig
	limiters *lru.Cache[string, *rate.Limiter]
}

// New creates the middleware bundle.
func New(l pkgLog.Logger, cfg RateLimitConfig) *Middleware {
	if cfg.PerMinute <= 0 {
		cfg.PerMinute = 30
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 5
	}
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = DefaultMaxSessions
	}

	// lru.New only fails on a non-positive size.
	limiters, _ := lru.New[string, *rate.Limiter](cfg.MaxSessions)

	return &Middleware{
		l:        l,
		cfg:      cfg,
		limiters: limiters,
	}
}
