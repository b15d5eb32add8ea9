package dto

// ── 收据模块 DTO ──

// CreateReceiptRequest 创建收据请求
type CreateReceiptRequest struct {
	OrderID       string  `json:"order_id"       binding:"required,uuid"`
	Amount        float64 `json:"amount"         binding:"required,gt=0"`
	PaymentMethod string  `json:"payment_method" binding:"required,max=50"`
	LocationID    *string `json:"location_id"    binding:"omitempty,uuid"`
}

// ReceiptResponse 收据信息响应
type ReceiptResponse struct {
	ID            string  `json:"id"`
	OrderID       string  `json:"order_id"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method"`
	PaymentTime   string  `json:"payment_time"`
	LocationID    *string `json:"location_id,omitempty"`
	CreatedAt     string  `json:"created_at"`
}
