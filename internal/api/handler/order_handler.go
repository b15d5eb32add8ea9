package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/mahou-anisphia/koala-restaurant-sub000/internal/dto"
	"github.com/mahou-anisphia/koala-restaurant-sub000/internal/service"
	apperrors "github.com/mahou-anisphia/koala-restaurant-sub000/pkg/errors"
	"github.com/mahou-anisphia/koala-restaurant-sub000/pkg/response"
)

// OrderHandler 订单模块 HTTP 处理器
type OrderHandler struct {
	orderSvc service.OrderService
}

// NewOrderHandler 创建 OrderHandler
func NewOrderHandler(orderSvc service.OrderService) *OrderHandler {
	return &OrderHandler{orderSvc: orderSvc}
}

// CreateOrder 创建订单（可携带首批条目）
// POST /api/v1/orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	caller, ok := MustGetUser(c)
	if !ok {
		return
	}

	order, err := h.orderSvc.Create(c.Request.Context(), &req, caller.UserID)
	if err != nil {
		h.handleOrderError(c, err)
		return
	}

	response.Created(c, order)
}

// ListOrders 订单列表
// GET /api/v1/orders
func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.orderSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": orders})
}

// GetOrder 订单详情
// GET /api/v1/orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "订单ID不能为空")
		return
	}

	order, err := h.orderSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleOrderError(c, err)
		return
	}

	response.OK(c, order)
}

// ListOrderItems 订单条目明细（厨房视角，order_item_details 视图）
// GET /api/v1/orders/:id/items
func (h *OrderHandler) ListOrderItems(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "订单ID不能为空")
		return
	}

	items, err := h.orderSvc.ListItemDetails(c.Request.Context(), id)
	if err != nil {
		h.handleOrderError(c, err)
		return
	}

	response.OK(c, gin.H{"list": items})
}

// UpdateOrderStatus 更新订单状态
// PUT /api/v1/orders/:id/status
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "订单ID不能为空")
		return
	}

	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	if err := h.orderSvc.UpdateStatus(c.Request.Context(), id, &req); err != nil {
		h.handleOrderError(c, err)
		return
	}

	response.OK(c, nil)
}

// AddOrderItem 向订单追加条目
// POST /api/v1/orders/:id/items
func (h *OrderHandler) AddOrderItem(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "订单ID不能为空")
		return
	}

	var req dto.CreateOrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	item, err := h.orderSvc.AddItem(c.Request.Context(), id, &req)
	if err != nil {
		h.handleOrderError(c, err)
		return
	}

	response.Created(c, item)
}

// UpdateOrderItemStatus 更新条目状态
// PUT /api/v1/orders/items/:itemID/status
func (h *OrderHandler) UpdateOrderItemStatus(c *gin.Context) {
	itemID := c.Param("itemID")
	if itemID == "" {
		response.BadRequest(c, 10001, "条目ID不能为空")
		return
	}

	var req dto.UpdateOrderItemStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	if err := h.orderSvc.UpdateItemStatus(c.Request.Context(), itemID, &req); err != nil {
		h.handleOrderError(c, err)
		return
	}

	response.OK(c, nil)
}

// DeleteOrderItem 删除订单条目
// DELETE /api/v1/orders/items/:itemID
func (h *OrderHandler) DeleteOrderItem(c *gin.Context) {
	itemID := c.Param("itemID")
	if itemID == "" {
		response.BadRequest(c, 10001, "条目ID不能为空")
		return
	}

	if err := h.orderSvc.DeleteItem(c.Request.Context(), itemID); err != nil {
		h.handleOrderError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleOrderError 统一处理订单模块业务错误
func (h *OrderHandler) handleOrderError(c *gin.Context, err error) {
	var enumErr *apperrors.InvalidEnumError
	switch {
	case errors.As(err, &enumErr):
		response.ErrorWithDetails(c, 400, 10001, "参数校验失败", enumErr.Error())
	case errors.Is(err, service.ErrOrderNotFound):
		response.NotFound(c, 19001, "订单不存在")
	case errors.Is(err, service.ErrOrderItemNotFound):
		response.NotFound(c, 19002, "订单条目不存在")
	case errors.Is(err, service.ErrDishNotFound):
		response.BadRequest(c, 15001, "菜品不存在")
	case errors.Is(err, service.ErrTableNotFound):
		response.BadRequest(c, 17001, "餐桌不存在")
	default:
		response.InternalError(c)
	}
}
