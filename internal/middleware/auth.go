package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"sehrimilan/internal/model"
	"sehrimilan/pkg/response"
)

const (
	scopeKey       = "scope"
	demoModeHeader = "X-Demo-Mode"
	bearerPrefix   = "Bearer "
)

// Auth resolves the session scope from the bearer token, or from the demo header
// when demo mode is enabled, and aborts with 401 otherwise.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if m.demoEnabled && strings.EqualFold(c.GetHeader(demoModeHeader), "true") {
			c.Set(scopeKey, model.DemoScope())
			c.Next()
			return
		}

		token, ok := strings.CutPrefix(c.GetHeader("Authorization"), bearerPrefix)
		if !ok || strings.TrimSpace(token) == "" {
			response.Unauthorized(c)
			return
		}

		payload, err := m.jwtManager.Verify(strings.TrimSpace(token))
		if err != nil {
			m.l.Warnf(ctx, "middleware.Auth: %v", err)
			response.Unauthorized(c)
			return
		}

		c.Set(scopeKey, model.Scope{
			UserID:      payload.UserID,
			Email:       payload.Email,
			DisplayName: payload.DisplayName,
		})
		c.Next()
	}
}

// GetScope returns the scope set by Auth.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok && !sc.IsZero()
}

// SetScope stores sc on the request. Handler tests use it to skip Auth.
func SetScope(c *gin.Context, sc model.Scope) {
	c.Set(scopeKey, sc)
}
