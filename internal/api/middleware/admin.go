package middleware

import (
	"Inkwell/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequireAdmin 检查当前用户是否为管理员
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool("is_admin") {
			response.Fail(c, response.Forbidden, "admin privilege required")
			c.Abort()
			return
		}

		c.Next()
	}
}
