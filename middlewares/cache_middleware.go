package middlewares

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"backend/cache"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type cachedResponse struct {
	Status      int         `json:"status"`
	ContentType string      `json:"content_type"`
	Body        []byte      `json:"body"`
	Headers     http.Header `json:"headers"`
}

type bodyCaptureWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyCaptureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyCaptureWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// CacheMiddleware serves repeated GETs out of Redis, keyed per user so
// private rows never leak across callers. No-op when Redis is not wired.
func CacheMiddleware(duration time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cache.Client == nil || c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		userID := c.GetUint("userID")
		cacheKey := fmt.Sprintf("cache:%d:%s?%s", userID, c.Request.URL.Path, c.Request.URL.RawQuery)

		var cached cachedResponse
		if err := cache.Get(cacheKey, &cached); err == nil {
			for key, values := range cached.Headers {
				for _, value := range values {
					c.Header(key, value)
				}
			}
			c.Header("X-Cache", "HIT")
			c.Data(cached.Status, cached.ContentType, cached.Body)
			c.Abort()
			return
		}

		c.Header("X-Cache", "MISS")
		bcw := &bodyCaptureWriter{body: bytes.NewBuffer(nil), ResponseWriter: c.Writer}
		c.Writer = bcw

		c.Next()

		if c.Writer.Status() == http.StatusOK {
			entry := cachedResponse{
				Status:      c.Writer.Status(),
				ContentType: c.Writer.Header().Get("Content-Type"),
				Body:        bcw.body.Bytes(),
				Headers:     c.Writer.Header(),
			}
			if err := cache.Set(cacheKey, entry, duration); err != nil && utils.Logger != nil {
				utils.Logger.Warn("cache_set_failed",
					zap.Error(err),
					zap.String("key", cacheKey),
				)
			}
		}
	}
}

// InvalidateUserCache drops every cached response for a user, called after
// catalog mutations.
func InvalidateUserCache(userID uint) {
	if cache.Client == nil {
		return
	}
	if err := cache.DeletePattern(fmt.Sprintf("cache:%d:*", userID)); err != nil && utils.Logger != nil {
		utils.Logger.Warn("cache_invalidate_failed",
			zap.Uint("user_id", userID),
			zap.Error(err),
		)
	}
}

// RateLimitMiddleware is a fixed-window per-IP limiter on Redis; it fails
// open when Redis is down.
func RateLimitMiddleware(maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cache.Client == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("rate_limit:%s", c.ClientIP())
		count, err := cache.IncrementCounter(key, window)
		if err != nil {
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", maxRequests))
		remaining := maxRequests - int(count)
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))

		if count > int64(maxRequests) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"ok": false, "error": "Too many requests"})
			return
		}

		c.Next()
	}
}
