package dto

// ── 地点模块 DTO ──

// CreateLocationRequest 创建地点请求
type CreateLocationRequest struct {
	Address string `json:"address"  binding:"required,min=2,max=200"`
	City    string `json:"city"     binding:"omitempty,max=100"`
	State   string `json:"state"    binding:"omitempty,max=100"`
	ZipCode string `json:"zip_code" binding:"omitempty,max=20"`
	Country string `json:"country"  binding:"omitempty,max=100"`
}

// UpdateLocationRequest 更新地点请求
type UpdateLocationRequest struct {
	Address *string `json:"address"  binding:"omitempty,min=2,max=200"`
	City    *string `json:"city"     binding:"omitempty,max=100"`
	State   *string `json:"state"    binding:"omitempty,max=100"`
	ZipCode *string `json:"zip_code" binding:"omitempty,max=20"`
	Country *string `json:"country"  binding:"omitempty,max=100"`
}

// LocationResponse 地点信息响应
type LocationResponse struct {
	ID        string `json:"id"`
	Address   string `json:"address"`
	City      string `json:"city,omitempty"`
	State     string `json:"state,omitempty"`
	ZipCode   string `json:"zip_code,omitempty"`
	Country   string `json:"country,omitempty"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
