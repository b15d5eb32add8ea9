package dto

// ── 餐桌模块 DTO ──

// CreateTableRequest 创建餐桌请求
type CreateTableRequest struct {
	Capacity   int     `json:"capacity"    binding:"required,gt=0"`
	Label      string  `json:"label"       binding:"omitempty,max=100"`
	LocationID *string `json:"location_id" binding:"omitempty,uuid"`
}

// UpdateTableRequest 更新餐桌请求
type UpdateTableRequest struct {
	Capacity   *int    `json:"capacity"    binding:"omitempty,gt=0"`
	Label      *string `json:"label"       binding:"omitempty,max=100"`
	LocationID *string `json:"location_id" binding:"omitempty,uuid"`
}

// TableResponse 餐桌信息响应
type TableResponse struct {
	ID         string  `json:"id"`
	Capacity   int     `json:"capacity"`
	Label      string  `json:"label,omitempty"`
	LocationID *string `json:"location_id,omitempty"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
}

// ReservationSummary 引用保护响应中携带的预订摘要
type ReservationSummary struct {
	ID              string `json:"id"`
	ReservationTime string `json:"reservation_time"`
	Status          string `json:"status"`
}
