package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"reflection-backend/pkg/logger"
)

// Logger emits one structured line per request after the handler chain runs.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		// Capture before c.Next(); handlers may rewrite the URL.
		path := c.Request.URL.Path

		c.Next()

		logger.Info("request completed", map[string]interface{}{
			"request_id": c.GetString("request_id"),
			"method":     c.Request.Method,
			"path":       path,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
			"ip":         c.ClientIP(),
		})
	}
}
