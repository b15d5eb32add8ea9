package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/mahou-anisphia/koala-restaurant-sub000/internal/dto"
	"github.com/mahou-anisphia/koala-restaurant-sub000/internal/service"
	apperrors "github.com/mahou-anisphia/koala-restaurant-sub000/pkg/errors"
	"github.com/mahou-anisphia/koala-restaurant-sub000/pkg/response"
)

// DiningTableHandler 餐桌模块 HTTP 处理器
type DiningTableHandler struct {
	tableSvc service.DiningTableService
}

// NewDiningTableHandler 创建 DiningTableHandler
func NewDiningTableHandler(tableSvc service.DiningTableService) *DiningTableHandler {
	return &DiningTableHandler{tableSvc: tableSvc}
}

// ListTables 餐桌列表
// GET /api/v1/table
func (h *DiningTableHandler) ListTables(c *gin.Context) {
	tables, err := h.tableSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": tables})
}

// GetTable 餐桌详情
// GET /api/v1/table/:id
func (h *DiningTableHandler) GetTable(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "餐桌ID不能为空")
		return
	}

	table, err := h.tableSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleTableError(c, err)
		return
	}

	response.OK(c, table)
}

// CreateTable 创建餐桌
// POST /api/v1/table
func (h *DiningTableHandler) CreateTable(c *gin.Context) {
	var req dto.CreateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	table, err := h.tableSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleTableError(c, err)
		return
	}

	response.Created(c, table)
}

// UpdateTable 更新餐桌
// PUT /api/v1/table/:id
func (h *DiningTableHandler) UpdateTable(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "餐桌ID不能为空")
		return
	}

	var req dto.UpdateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	table, err := h.tableSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleTableError(c, err)
		return
	}

	response.OK(c, table)
}

// DeleteTable 删除餐桌（被预订引用时拒绝）
// DELETE /api/v1/table/:id
func (h *DiningTableHandler) DeleteTable(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "餐桌ID不能为空")
		return
	}

	if err := h.tableSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleTableError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleTableError 统一处理餐桌模块业务错误
func (h *DiningTableHandler) handleTableError(c *gin.Context, err error) {
	var conflictErr *apperrors.DependencyConflictError
	switch {
	case errors.As(err, &conflictErr):
		response.ErrorWithData(c, 400, 17002, conflictErr.Error(), conflictErr.Blocking)
	case errors.Is(err, service.ErrTableNotFound):
		response.NotFound(c, 17001, "餐桌不存在")
	default:
		response.InternalError(c)
	}
}
