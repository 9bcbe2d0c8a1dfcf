package http

import (
	"github.com/gin-gonic/gin"

	"sehrimilan/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	list := rg.Group("/shopping-list", mw.Auth())
	{
		list.GET("", h.Get)
		list.GET("/share", h.Share)
		list.POST("/items", h.Add)
		list.PATCH("/items/:id/toggle", h.Toggle)
		list.DELETE("/items/:id", h.Delete)
	}
}
