package http

import (
	"github.com/gin-gonic/gin"

	"sehrimilan/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// All routes are protected by the Auth middleware; generation is also rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	plans := rg.Group("/plans")
	{
		plans.POST("/generate", mw.Auth(), mw.RateLimit(), h.Generate)
		plans.GET("", mw.Auth(), h.Get)
		plans.GET("/days/:index", mw.Auth(), h.GetDay)
		plans.DELETE("", mw.Auth(), h.Delete)
	}
}
