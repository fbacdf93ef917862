package middleware

import (
	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"

	"smart-task-scheduler/pkg/response"
)

// limiterCacheSize bounds the per-client limiter table; evicted clients
// simply start with a fresh allowance.
const limiterCacheSize = 4096

// RateLimit returns a per-client-IP token bucket limiter. Disabled limiters
// pass everything through.
func (m Middleware) RateLimit() gin.HandlerFunc {
	if !m.config.RateLimit.Enabled {
		return func(c *gin.Context) { c.Next() }
	}

	limiters, err := lru.New[string, *rate.Limiter](limiterCacheSize)
	if err != nil {
		// lru.New only fails on non-positive size
		panic(err)
	}

	rps := rate.Limit(m.config.RateLimit.RequestsPerSecond)
	burst := m.config.RateLimit.Burst

	return func(c *gin.Context) {
		key := c.ClientIP()
		limiter, ok := limiters.Get(key)
		if !ok {
			limiter = rate.NewLimiter(rps, burst)
			limiters.Add(key, limiter)
		}

		if !limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for %s", key)
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
