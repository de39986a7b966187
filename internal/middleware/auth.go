// Package middleware 提供 gin 中间件
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ashwinyue/dataset-hub/internal/model"
	"github.com/ashwinyue/dataset-hub/internal/service/auth"
)

const userContextKey = "user"

// RequireAuth 要求有效认证的中间件
// 必须提供有效的 Bearer JWT，校验通过后将用户注入上下文
func RequireAuth(authService *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code": 401,
				"msg":  "missing or malformed authorization header",
			})
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		user, err := authService.ValidateToken(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code": 401,
				"msg":  "invalid or expired token",
			})
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// GetCurrentUser 从上下文获取当前用户
// 核心操作不读取任何隐式全局状态，处理器取出用户后显式传参
func GetCurrentUser(c *gin.Context) (*model.User, bool) {
	value, exists := c.Get(userContextKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*model.User)
	return user, ok
}
