package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mahou-anisphia/koala-restaurant-sub000/internal/model"
)

// GetCurrentUser 从上下文取认证用户，未认证时返回 nil
func GetCurrentUser(c *gin.Context) *model.User {
	v, ok := c.Get(CtxUserKey)
	if !ok {
		return nil
	}
	user, ok := v.(*model.User)
	if !ok {
		return nil
	}
	return user
}

// GetTokenJTI 从上下文取当前令牌 JTI
func GetTokenJTI(c *gin.Context) string {
	return c.GetString(CtxJTIKey)
}

// GetTokenExpiresAt 从上下文取当前令牌过期时间
func GetTokenExpiresAt(c *gin.Context) time.Time {
	v, ok := c.Get(CtxExpiresAtKey)
	if !ok {
		return time.Time{}
	}
	t, _ := v.(time.Time)
	return t
}
