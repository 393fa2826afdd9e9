package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"classannouncement/backend/internal/service"
	"classannouncement/backend/pkg/response"
)

// TokenAuth 令牌认证中间件
// 从 Authorization: Bearer <token> 中提取不透明令牌并解析调用者身份
// 缺失、格式错误与令牌无效统一返回 401，不泄露具体原因
func TokenAuth(authSvc service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, 10002, "未认证")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, 10002, "未认证")
			c.Abort()
			return
		}

		user, err := authSvc.Authenticate(c.Request.Context(), parts[1])
		if err != nil {
			if errors.Is(err, service.ErrTokenInvalid) {
				response.Unauthorized(c, 10002, "未认证")
			} else {
				response.InternalError(c)
			}
			c.Abort()
			return
		}

		// 将调用者信息注入上下文
		c.Set("user_id", user.ID)
		c.Set("user_name", user.Name)

		c.Next()
	}
}
