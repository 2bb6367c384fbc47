package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"timesheet-assistant/pkg/response"
)

const sessionHeader = "X-Session-ID"

// RateLimit throttles requests per session. Sessionless requests fall back
// to the client IP so an anonymous client cannot bypass the limit.
func (m *Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(sessionHeader)
		if key == "" {
			key = c.ClientIP()
		}

		if !m.limiterFor(key).Allow() {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for %s", key)
			response.TooManyRequests(c)
			c.Abort()
			return
		}

		c.Next()
	}
}

func (m *Middleware) limiterFor(key string) *rate.Limiter {
	if limiter, ok := m.limiters.Get(key); ok {
		return limiter
	}

	limiter := rate.NewLimiter(rate.Limit(float64(m.cfg.PerMinute)/60.0), m.cfg.Burst)
	// PeekOrAdd guards against a concurrent first request for the same key.
	if prev, ok, _ := m.limiters.PeekOrAdd(key, limiter); ok {
		return prev
	}
	return limiter
}
