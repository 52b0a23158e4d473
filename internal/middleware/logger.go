package middleware

import (
	"time"

	"jewelbot-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs each request with method, path, status and latency.
func RequestLogger(logger log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Infof(c.Request.Context(), "%s %s -> %d (%s)",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}
