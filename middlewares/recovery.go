package middlewares

import (
	"net/http"

	"backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Recovery turns panics into the standard 500 envelope without leaking any
// internal detail to the caller.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				if utils.Logger != nil {
					utils.Logger.Error("panic_recovered",
						zap.Any("panic", r),
						zap.String("path", c.Request.URL.Path),
					)
				}
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "Internal server error"})
			}
		}()
		c.Next()
	}
}
