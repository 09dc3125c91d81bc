package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"daynix/pkg/log"
	"daynix/pkg/response"
)

// Middleware bundles the cross-cutting gin middlewares.
type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// Config tunes the per-client rate limiter.
type Config struct {
	RateLimitPerMin int
}

func New(l log.Logger, cfg Config) Middleware {
	perMin := cfg.RateLimitPerMin
	if perMin <= 0 {
		perMin = 120
	}
	return Middleware{
		l:       l,
		limiter: newRateLimiter(perMin),
	}
}

// RateLimit throttles requests per client IP.
func (mw Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !mw.limiter.Allow(c.ClientIP()) {
			mw.l.Warnf(c.Request.Context(), "rate limit exceeded for %s", c.ClientIP())
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// rateLimiter keeps one token bucket per client with auto-expiry, so idle
// clients fall out of memory.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,
			nil,
			time.Minute*5,
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0),
		burst: burst,
	}
}

func (rl *rateLimiter) Allow(key string) bool {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}
