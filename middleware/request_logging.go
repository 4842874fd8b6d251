package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/syedsartaj/travel-adventure/logger"
	"github.com/syedsartaj/travel-adventure/trace"
)

// RequestLogging logs one structured line per request with the time spent
// from entry to response.
func RequestLogging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		logBySeverity(status, "api_request", logger.Fields{
			"method":      method,
			"path":        path,
			"status":      status,
			"duration_ms": time.Since(start).Milliseconds(),
			"request_id":  trace.RequestIDFromContext(c.Request.Context()),
		})
	}
}

// logBySeverity maps the response status to a log level: server errors log
// at error, client errors at warn, everything else at info.
func logBySeverity(status int, msg string, fields logger.Fields) {
	switch {
	case status >= 500:
		logger.ErrorWithFields(msg, fields)
	case status >= 400:
		logger.WarnWithFields(msg, fields)
	default:
		logger.InfoWithFields(msg, fields)
	}
}
