package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"sehrimilan/pkg/response"
)

const (
	defaultRateLimitPerMin     = 6
	defaultChatRateLimitPerMin = 30
)

// rateLimiter keeps one token bucket per user with auto-cleanup
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin, fallback int) *rateLimiter {
	if requestsPerMin <= 0 {
		requestsPerMin = fallback
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,          // Max 1000 distinct users
			nil,           // No eviction callback
			time.Minute*5, // TTL: 5 minutes
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0), // Per second
		burst: max(1, requestsPerMin/10),
	}
}

func (rl *rateLimiter) allow(key string) bool {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}

// RateLimit throttles plan generation per user. It must run after Auth.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return m.throttle("RateLimit", m.limiter)
}

// ChatRateLimit throttles chat replies per user. It must run after Auth.
func (m Middleware) ChatRateLimit() gin.HandlerFunc {
	return m.throttle("ChatRateLimit", m.chatLimiter)
}

func (m Middleware) throttle(name string, rl *rateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if sc, ok := GetScope(c); ok {
			key = sc.UserID
		}
		if !rl.allow(key) {
			m.l.Warnf(c.Request.Context(), "middleware.%s: limit exceeded for %s", name, key)
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}
