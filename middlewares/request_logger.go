package middlewares

import (
	"strconv"
	"time"

	"backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLogger emits one structured log line per request and feeds the
// Prometheus request metrics.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		status := c.Writer.Status()
		elapsed := time.Since(start)

		utils.ReqCount.WithLabelValues(c.Request.Method, path, strconv.Itoa(status)).Inc()
		utils.ReqDuration.WithLabelValues(c.Request.Method, path).Observe(elapsed.Seconds())

		if utils.Logger != nil {
			utils.Logger.Info("http_request",
				zap.String("method", c.Request.Method),
				zap.String("path", path),
				zap.Int("status", status),
				zap.Duration("duration", elapsed),
				zap.String("ip", c.ClientIP()),
			)
		}
	}
}
