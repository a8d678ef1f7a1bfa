package middleware

import (
	"azure-devops-mcp/pkg/log"

	"github.com/gin-gonic/gin"
)

const RequestIDHeader = "X-Request-ID"

// RequestID propagates or assigns a request ID and stores it in the request context for logging.
func (mw Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		id := c.GetHeader(RequestIDHeader)
		if id != "" {
			ctx = log.WithRequestID(ctx, id)
		} else {
			ctx, id = log.NewRequestID(ctx)
		}

		c.Request = c.Request.WithContext(ctx)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
