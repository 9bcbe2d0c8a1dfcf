package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"sehrimilan/pkg/log"
)

const requestIDHeader = "X-Request-ID"

// RequestID propagates or assigns a request id and attaches it to the request context for logging.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(requestIDHeader, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}
