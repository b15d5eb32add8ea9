package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/mahou-anisphia/koala-restaurant-sub000/internal/dto"
	"github.com/mahou-anisphia/koala-restaurant-sub000/internal/service"
	apperrors "github.com/mahou-anisphia/koala-restaurant-sub000/pkg/errors"
	"github.com/mahou-anisphia/koala-restaurant-sub000/pkg/response"
)

// CategoryHandler 分类模块 HTTP 处理器
type CategoryHandler struct {
	categorySvc service.CategoryService
}

// NewCategoryHandler 创建 CategoryHandler
func NewCategoryHandler(categorySvc service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categorySvc: categorySvc}
}

// ListCategories 分类列表
// GET /api/v1/category
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	cats, err := h.categorySvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": cats})
}

// GetCategory 分类详情
// GET /api/v1/category/:id
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "分类ID不能为空")
		return
	}

	cat, err := h.categorySvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleCategoryError(c, err)
		return
	}

	response.OK(c, cat)
}

// CreateCategory 创建分类
// POST /api/v1/category
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	caller, ok := MustGetUser(c)
	if !ok {
		return
	}

	cat, err := h.categorySvc.Create(c.Request.Context(), &req, caller.UserID)
	if err != nil {
		h.handleCategoryError(c, err)
		return
	}

	response.Created(c, cat)
}

// UpdateCategory 更新分类
// PUT /api/v1/category/:id
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "分类ID不能为空")
		return
	}

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	cat, err := h.categorySvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleCategoryError(c, err)
		return
	}

	response.OK(c, cat)
}

// DeleteCategory 删除分类（被菜品引用时拒绝）
// DELETE /api/v1/category/:id
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "分类ID不能为空")
		return
	}

	if err := h.categorySvc.Delete(c.Request.Context(), id); err != nil {
		h.handleCategoryError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleCategoryError 统一处理分类模块业务错误
func (h *CategoryHandler) handleCategoryError(c *gin.Context, err error) {
	var conflictErr *apperrors.DependencyConflictError
	switch {
	case errors.As(err, &conflictErr):
		response.ErrorWithData(c, 400, 14002, conflictErr.Error(), conflictErr.Blocking)
	case errors.Is(err, service.ErrCategoryNotFound):
		response.NotFound(c, 14001, "分类不存在")
	default:
		response.InternalError(c)
	}
}
