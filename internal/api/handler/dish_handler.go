package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/mahou-anisphia/koala-restaurant-sub000/internal/dto"
	"github.com/mahou-anisphia/koala-restaurant-sub000/internal/service"
	"github.com/mahou-anisphia/koala-restaurant-sub000/pkg/response"
)

// 菜品图片上传上限（multipart）
const maxImageSize = 8 << 20 // 8MB

// DishHandler 菜品模块 HTTP 处理器
type DishHandler struct {
	dishSvc service.DishService
}

// NewDishHandler 创建 DishHandler
func NewDishHandler(dishSvc service.DishService) *DishHandler {
	return &DishHandler{dishSvc: dishSvc}
}

// ListDishes 菜品列表
// GET /api/v1/dishes
func (h *DishHandler) ListDishes(c *gin.Context) {
	dishes, err := h.dishSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": dishes})
}

// GetDish 菜品详情
// GET /api/v1/dishes/:id
func (h *DishHandler) GetDish(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "菜品ID不能为空")
		return
	}

	dish, err := h.dishSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleDishError(c, err)
		return
	}

	response.OK(c, dish)
}

// CreateDish 创建菜品
// POST /api/v1/dishes
func (h *DishHandler) CreateDish(c *gin.Context) {
	var req dto.CreateDishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	caller, ok := MustGetUser(c)
	if !ok {
		return
	}

	dish, err := h.dishSvc.Create(c.Request.Context(), &req, caller.UserID)
	if err != nil {
		h.handleDishError(c, err)
		return
	}

	response.Created(c, dish)
}

// UpdateDish 更新菜品
// PUT /api/v1/dishes/:id
func (h *DishHandler) UpdateDish(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "菜品ID不能为空")
		return
	}

	var req dto.UpdateDishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	caller, ok := MustGetUser(c)
	if !ok {
		return
	}

	dish, err := h.dishSvc.Update(c.Request.Context(), id, &req, caller.UserID)
	if err != nil {
		h.handleDishError(c, err)
		return
	}

	response.OK(c, dish)
}

// DeleteDish 删除菜品（行先删，图片后清理）
// DELETE /api/v1/dishes/:id
func (h *DishHandler) DeleteDish(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "菜品ID不能为空")
		return
	}

	if err := h.dishSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleDishError(c, err)
		return
	}

	response.OK(c, nil)
}

// UploadImage 上传菜品图片（multipart form，字段名 image）
// POST /api/v1/dishes/:id/image
func (h *DishHandler) UploadImage(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "菜品ID不能为空")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		response.BadRequest(c, 10001, "缺少 image 文件字段")
		return
	}
	if fileHeader.Size > maxImageSize {
		response.BadRequest(c, 10001, "图片过大")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.InternalError(c)
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	dish, err := h.dishSvc.UploadImage(
		c.Request.Context(), id,
		file, fileHeader.Size, contentType, fileHeader.Filename,
	)
	if err != nil {
		h.handleDishError(c, err)
		return
	}

	response.OK(c, dish)
}

// handleDishError 统一处理菜品模块业务错误
func (h *DishHandler) handleDishError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrDishNotFound):
		response.NotFound(c, 15001, "菜品不存在")
	case errors.Is(err, service.ErrCategoryNotFound):
		response.BadRequest(c, 14001, "分类不存在")
	default:
		response.InternalError(c)
	}
}
