package dto

// ── 预订模块 DTO ──

// CreateReservationRequest 创建预订请求
type CreateReservationRequest struct {
	TableID         string  `json:"table_id"         binding:"required,uuid"`
	LocationID      *string `json:"location_id"      binding:"omitempty,uuid"`
	ReservationTime string  `json:"reservation_time" binding:"required"` // RFC3339
	SpecialRequests string  `json:"special_requests" binding:"omitempty,max=500"`
	Status          string  `json:"status"           binding:"omitempty"`
}

// UpdateReservationRequest 更新预订请求
type UpdateReservationRequest struct {
	TableID         *string `json:"table_id"         binding:"omitempty,uuid"`
	ReservationTime *string `json:"reservation_time" binding:"omitempty"`
	SpecialRequests *string `json:"special_requests" binding:"omitempty,max=500"`
	Status          *string `json:"status"           binding:"omitempty"`
}

// ReservationResponse 预订信息响应
type ReservationResponse struct {
	ID              string  `json:"id"`
	UserID          string  `json:"user_id"`
	TableID         string  `json:"table_id"`
	LocationID      *string `json:"location_id,omitempty"`
	ReservationTime string  `json:"reservation_time"`
	SpecialRequests string  `json:"special_requests,omitempty"`
	Status          string  `json:"status"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}
