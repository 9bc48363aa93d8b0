package middlewares

import (
	"net/http"

	"backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AdminRequired gate-keeps the moderation surface: the caller's profile must
// carry the admin role.
func AdminRequired(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetUint("userID")

		var profile models.Profile
		if err := db.Where("user_id = ?", uid).First(&profile).Error; err != nil || profile.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"ok": false, "error": "Admin access required"})
			return
		}

		c.Set("role", profile.Role)
		c.Next()
	}
}
