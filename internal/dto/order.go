package dto

// ── 订单模块 DTO ──

// CreateOrderRequest 创建订单请求（可携带首批条目）
type CreateOrderRequest struct {
	TableID    *string                  `json:"table_id"    binding:"omitempty,uuid"`
	LocationID *string                  `json:"location_id" binding:"omitempty,uuid"`
	Status     string                   `json:"status"      binding:"omitempty"`
	Items      []CreateOrderItemRequest `json:"items"       binding:"omitempty,dive"`
}

// CreateOrderItemRequest 添加订单条目请求
type CreateOrderItemRequest struct {
	DishID          string `json:"dish_id"          binding:"required,uuid"`
	Quantity        int    `json:"quantity"         binding:"required,gt=0"`
	Status          string `json:"status"           binding:"omitempty"`
	SpecialRequests string `json:"special_requests" binding:"omitempty,max=500"`
}

// UpdateOrderStatusRequest 更新订单状态请求
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateOrderItemStatusRequest 更新条目状态请求
type UpdateOrderItemStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// OrderItemResponse 订单条目响应
type OrderItemResponse struct {
	ID              string `json:"id"`
	DishID          string `json:"dish_id"`
	Quantity        int    `json:"quantity"`
	Status          string `json:"status"`
	SpecialRequests string `json:"special_requests,omitempty"`
}

// OrderResponse 订单信息响应
type OrderResponse struct {
	ID         string              `json:"id"`
	UserID     string              `json:"user_id"`
	TableID    *string             `json:"table_id,omitempty"`
	LocationID *string             `json:"location_id,omitempty"`
	Status     string              `json:"status"`
	Items      []OrderItemResponse `json:"items"`
	CreatedAt  string              `json:"created_at"`
	UpdatedAt  string              `json:"updated_at"`
}

// OrderItemDetailResponse 订单条目 + 菜品 + 餐桌（order_item_details 视图）
type OrderItemDetailResponse struct {
	ID              string  `json:"id"`
	OrderID         string  `json:"order_id"`
	DishID          string  `json:"dish_id"`
	DishName        string  `json:"dish_name"`
	Price           float64 `json:"price"`
	Quantity        int     `json:"quantity"`
	Status          string  `json:"status"`
	SpecialRequests string  `json:"special_requests,omitempty"`
	OrderStatus     string  `json:"order_status"`
	TableID         *string `json:"table_id,omitempty"`
	TableLabel      *string `json:"table_label,omitempty"`
}
