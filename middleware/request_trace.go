package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/syedsartaj/travel-adventure/trace"
)

const headerRequestID = "X-Request-Id"

// RequestTrace guarantees every inbound request carries a request id,
// stored in the context and echoed on the response header.
func RequestTrace() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.Request.Header.Get(headerRequestID)
		if requestID == "" {
			requestID = trace.GenerateID()
		}

		ctx := trace.WithRequestID(c.Request.Context(), requestID)
		c.Request = c.Request.WithContext(ctx)

		c.Request.Header.Set(headerRequestID, requestID)
		c.Writer.Header().Set(headerRequestID, requestID)

		c.Next()
	}
}
