package http

import (
	"github.com/gin-gonic/gin"

	"sehrimilan/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/chat", mw.Auth(), mw.ChatRateLimit(), h.Reply)
}
