package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mahou-anisphia/koala-restaurant-sub000/internal/repository"
	"github.com/mahou-anisphia/koala-restaurant-sub000/pkg/jwt"
	"github.com/mahou-anisphia/koala-restaurant-sub000/pkg/redis"
	"github.com/mahou-anisphia/koala-restaurant-sub000/pkg/response"
)

// 上下文键
const (
	CtxUserKey      = "current_user"
	CtxJTIKey       = "token_jti"
	CtxExpiresAtKey = "token_expires_at"
)

// AuthRequired JWT 认证中间件
//
// Authorization 头直接携带令牌，兼容 "Bearer <token>" 前缀。
// 每次请求都回查用户表：令牌有效但用户已被删除时返回 404，
// 保证删号立即生效而不用等令牌过期。
// rdb 为 nil 时跳过黑名单检查（降级放行）。
func AuthRequired(jwtMgr *jwt.Manager, rdb *redis.Client, userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("Authorization")
		if raw == "" {
			response.Unauthorized(c, 10002, "缺少认证头")
			c.Abort()
			return
		}
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "Bearer "))

		claims, err := jwtMgr.ParseToken(raw)
		if err != nil {
			response.Unauthorized(c, 10002, "Token 无效或已过期")
			c.Abort()
			return
		}

		if rdb != nil {
			blacklisted, err := rdb.IsBlacklisted(c.Request.Context(), claims.ID)
			if err == nil && blacklisted {
				response.Unauthorized(c, 10002, "Token 已失效")
				c.Abort()
				return
			}
		}

		user, err := userRepo.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.NotFound(c, 10002, "用户不存在")
			} else {
				response.InternalError(c)
			}
			c.Abort()
			return
		}

		c.Set(CtxUserKey, user)
		c.Set(CtxJTIKey, claims.ID)
		if claims.ExpiresAt != nil {
			c.Set(CtxExpiresAtKey, claims.ExpiresAt.Time)
		}

		c.Next()
	}
}

// RoleRequired 角色权限中间件
//
// 角色取自数据库里的当前用户行而非令牌声明，
// 管理员调整角色后无需重新登录即可生效。
func RoleRequired(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := GetCurrentUser(c)
		if user == nil {
			response.Unauthorized(c, 10002, "未认证")
			c.Abort()
			return
		}

		for _, r := range allowedRoles {
			if user.Role == r {
				c.Next()
				return
			}
		}

		response.Forbidden(c, 10003, "无权限访问")
		c.Abort()
	}
}
