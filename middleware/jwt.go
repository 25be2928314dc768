package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"usprime-go-admin/model/admin_model"
	"usprime-go-admin/pkg/jwt"
	"usprime-go-admin/pkg/response"
)

// Jwt 后台接口认证中间件
func Jwt() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			response.Abort(c, 401, "缺少认证信息", "authorization", response.CodeUnauthorized)
			return
		}
		tokenString = strings.TrimPrefix(tokenString, "Bearer ")

		claims, err := jwt.ParseAdminToken(tokenString)
		if err != nil {
			response.Abort(c, 401, "认证已失效，请重新登录", "authorization", response.CodeUnauthorized)
			return
		}

		c.Set("uid", claims.UID)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// RequireBannerAdmin 广告位管理权限校验，须在Jwt之后使用
func RequireBannerAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get("role")
		if role != admin_model.RoleAdmin {
			response.Abort(c, 403, "无操作权限", "role", response.CodeForbidden)
			return
		}
		c.Next()
	}
}
