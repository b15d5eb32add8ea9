package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/mahou-anisphia/koala-restaurant-sub000/internal/api/middleware"
	"github.com/mahou-anisphia/koala-restaurant-sub000/internal/model"
	"github.com/mahou-anisphia/koala-restaurant-sub000/pkg/response"
)

// MustGetUser 从 Gin 上下文中安全提取认证用户。
// 如果认证中间件未正确注入用户，返回 false 并写入 401 响应。
// 调用方应在 ok=false 时直接 return。
func MustGetUser(c *gin.Context) (*model.User, bool) {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		response.Unauthorized(c, 10002, "未认证")
		return nil, false
	}
	return user, true
}

// shared 校验失败快捷方式，所有 Handler 共用
func badRequest(c *gin.Context) {
	response.BadRequest(c, 10001, "参数校验失败")
}
