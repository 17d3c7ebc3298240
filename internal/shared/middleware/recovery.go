package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"reflection-backend/internal/shared/response"
	"reflection-backend/pkg/logger"
)

// Recovery turns handler panics into a 500 envelope instead of
// tearing down the connection.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Warn("recovered from handler panic", map[string]interface{}{
					"request_id": c.GetString("request_id"),
					"panic":      fmt.Sprintf("%v", r),
				})

				response.InternalServerError(c, "Internal server error")
				c.Abort()
			}
		}()

		c.Next()
	}
}
