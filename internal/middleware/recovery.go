package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Recovery returns a middleware that recovers from panics and renders
// the error page without leaking internal detail
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Panic recovered",
					zap.Any("error", err),
					zap.String("path", c.Request.URL.Path),
					zap.String("method", c.Request.Method),
					zap.String("query", c.Request.URL.RawQuery),
					zap.Stack("stacktrace"),
				)

				c.HTML(http.StatusInternalServerError, "error.html", gin.H{
					"Title":   "Server error",
					"Message": "Something went wrong. Please try again later.",
				})

				c.Abort()
			}
		}()

		c.Next()
	}
}
