package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/mahou-anisphia/koala-restaurant-sub000/internal/dto"
	"github.com/mahou-anisphia/koala-restaurant-sub000/internal/service"
	apperrors "github.com/mahou-anisphia/koala-restaurant-sub000/pkg/errors"
	"github.com/mahou-anisphia/koala-restaurant-sub000/pkg/response"
)

// MenuHandler 菜单模块 HTTP 处理器
type MenuHandler struct {
	menuSvc service.MenuService
}

// NewMenuHandler 创建 MenuHandler
func NewMenuHandler(menuSvc service.MenuService) *MenuHandler {
	return &MenuHandler{menuSvc: menuSvc}
}

// ListMenus 菜单列表
// GET /api/v1/menu
func (h *MenuHandler) ListMenus(c *gin.Context) {
	menus, err := h.menuSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": menus})
}

// GetMenu 菜单详情（含条目明细）
// GET /api/v1/menu/:id
func (h *MenuHandler) GetMenu(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "菜单ID不能为空")
		return
	}

	menu, err := h.menuSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleMenuError(c, err)
		return
	}

	response.OK(c, menu)
}

// CreateMenu 创建菜单
// POST /api/v1/menu
func (h *MenuHandler) CreateMenu(c *gin.Context) {
	var req dto.CreateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	caller, ok := MustGetUser(c)
	if !ok {
		return
	}

	menu, err := h.menuSvc.Create(c.Request.Context(), &req, caller.UserID)
	if err != nil {
		h.handleMenuError(c, err)
		return
	}

	response.Created(c, menu)
}

// UpdateMenu 更新菜单
// PUT /api/v1/menu/:id
func (h *MenuHandler) UpdateMenu(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "菜单ID不能为空")
		return
	}

	var req dto.UpdateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	caller, ok := MustGetUser(c)
	if !ok {
		return
	}

	menu, err := h.menuSvc.Update(c.Request.Context(), id, &req, caller.UserID)
	if err != nil {
		h.handleMenuError(c, err)
		return
	}

	response.OK(c, menu)
}

// DeleteMenu 删除菜单（条目清理与删除同事务）
// DELETE /api/v1/menu/:id
func (h *MenuHandler) DeleteMenu(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "菜单ID不能为空")
		return
	}

	if err := h.menuSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleMenuError(c, err)
		return
	}

	response.OK(c, nil)
}

// AddDish 向菜单添加菜品
// POST /api/v1/menu/:id/dishes
func (h *MenuHandler) AddDish(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "菜单ID不能为空")
		return
	}

	var req dto.AddMenuDishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	if err := h.menuSvc.AddDish(c.Request.Context(), id, &req); err != nil {
		h.handleMenuError(c, err)
		return
	}

	response.Created(c, nil)
}

// UpdateDishStatus 更新菜单内菜品供应状态
// PUT /api/v1/menu/:id/dishes/:dishID
func (h *MenuHandler) UpdateDishStatus(c *gin.Context) {
	id := c.Param("id")
	dishID := c.Param("dishID")
	if id == "" || dishID == "" {
		response.BadRequest(c, 10001, "菜单ID与菜品ID不能为空")
		return
	}

	var req dto.UpdateMenuDishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	if err := h.menuSvc.UpdateDishStatus(c.Request.Context(), id, dishID, &req); err != nil {
		h.handleMenuError(c, err)
		return
	}

	response.OK(c, nil)
}

// RemoveDish 从菜单移除菜品
// DELETE /api/v1/menu/:id/dishes/:dishID
func (h *MenuHandler) RemoveDish(c *gin.Context) {
	id := c.Param("id")
	dishID := c.Param("dishID")
	if id == "" || dishID == "" {
		response.BadRequest(c, 10001, "菜单ID与菜品ID不能为空")
		return
	}

	if err := h.menuSvc.RemoveDish(c.Request.Context(), id, dishID); err != nil {
		h.handleMenuError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleMenuError 统一处理菜单模块业务错误
func (h *MenuHandler) handleMenuError(c *gin.Context, err error) {
	var enumErr *apperrors.InvalidEnumError
	switch {
	case errors.As(err, &enumErr):
		response.ErrorWithDetails(c, 400, 10001, "参数校验失败", enumErr.Error())
	case errors.Is(err, service.ErrMenuNotFound):
		response.NotFound(c, 16001, "菜单不存在")
	case errors.Is(err, service.ErrMenuDishExists):
		response.BadRequest(c, 16002, "菜品已在菜单中")
	case errors.Is(err, service.ErrMenuDishNotFound):
		response.NotFound(c, 16003, "菜单中不存在该菜品")
	case errors.Is(err, service.ErrDishNotFound):
		response.BadRequest(c, 15001, "菜品不存在")
	default:
		response.InternalError(c)
	}
}
