package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mahou-anisphia/koala-restaurant-sub000/internal/api/middleware"
	"github.com/mahou-anisphia/koala-restaurant-sub000/internal/dto"
	"github.com/mahou-anisphia/koala-restaurant-sub000/internal/service"
	"github.com/mahou-anisphia/koala-restaurant-sub000/pkg/response"
)

// AuthHandler 认证模块 HTTP 处理器
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler 创建 AuthHandler
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Login 用户登录
// POST /api/v1/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, 11001, "用户名或密码错误")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// ChangePassword 修改当前用户密码
// PUT /api/v1/change-password
// 改密成功后当前令牌进黑名单（Redis 可用时），强制重新登录
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	user, ok := MustGetUser(c)
	if !ok {
		return
	}

	jti := middleware.GetTokenJTI(c)
	expiresAt := middleware.GetTokenExpiresAt(c)

	if err := h.authSvc.ChangePassword(c.Request.Context(), user.UserID, &req, jti, expiresAt); err != nil {
		switch {
		case errors.Is(err, service.ErrWrongOldPassword):
			response.BadRequest(c, 11002, "旧密码不正确")
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, 12001, "用户不存在")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, nil)
}

// Me 当前用户信息（含常驻地点）
// GET /api/v1/me
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := MustGetUser(c)
	if !ok {
		return
	}

	result, err := h.authSvc.GetCurrentUser(c.Request.Context(), user.UserID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, 12001, "用户不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}
