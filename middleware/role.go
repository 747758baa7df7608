package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireSelf ensures the path parameter param names the authenticated
// caller, so consultants can only edit their own records.
func RequireSelf(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Param(param) != c.GetString(ContextUserID) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "You can only modify your own record"})
			return
		}
		c.Next()
	}
}
