package utils

import "github.com/gin-gonic/gin"

// Every endpoint answers with the same envelope:
// success {"ok":true,"data":...}, failure {"ok":false,"error":"..."}.

func OK(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"ok": true, "data": data})
}

func Fail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"ok": false, "error": msg})
}

func FailWithDetails(c *gin.Context, status int, msg string, details interface{}) {
	c.JSON(status, gin.H{"ok": false, "error": msg, "details": details})
}
