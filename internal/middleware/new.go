package middleware

import (
	"sehrimilan/pkg/log"
	"sehrimilan/pkg/scope"
)

// Config holds the switches the middlewares need.
type Config struct {
	DemoEnabled bool
	// RateLimitPerMin throttles plan generation per user.
	RateLimitPerMin int
	// ChatRateLimitPerMin throttles chat replies per user, on its own budget.
	ChatRateLimitPerMin int
}

type Middleware struct {
	l           log.Logger
	jwtManager  scope.Manager
	demoEnabled bool
	limiter     *rateLimiter
	chatLimiter *rateLimiter
}

func New(l log.Logger, jwtManager scope.Manager, cfg Config) Middleware {
	return Middleware{
		l:           l,
		jwtManager:  jwtManager,
		demoEnabled: cfg.DemoEnabled,
		limiter:     newRateLimiter(cfg.RateLimitPerMin, defaultRateLimitPerMin),
		chatLimiter: newRateLimiter(cfg.ChatRateLimitPerMin, defaultChatRateLimitPerMin),
	}
}
