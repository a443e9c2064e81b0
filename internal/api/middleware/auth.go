package middleware

import (
	"strings"

	"bloggers/internal/api/response"
	"bloggers/pkg/utils"

	"github.com/gin-gonic/gin"
)

const ContextKeyUsername = "currentUsername"

// AuthRequired JWT 认证中间件，要求请求必须携带有效 Token
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			response.Unauthorized(c, "缺少认证令牌")
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(token)
		if err != nil {
			response.Unauthorized(c, "无效或过期的认证令牌")
			c.Abort()
			return
		}

		// 将用户名存入上下文，后续 Handler 通过 GetCurrentUsername 获取
		c.Set(ContextKeyUsername, claims.Username)
		c.Next()
	}
}

// GetCurrentUsername 从 Gin Context 中获取当前登录用户名
func GetCurrentUsername(c *gin.Context) (string, bool) {
	val, exists := c.Get(ContextKeyUsername)
	if !exists {
		return "", false
	}
	username, ok := val.(string)
	return username, ok
}

// extractToken 从 Authorization 头中提取 Bearer Token
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}
