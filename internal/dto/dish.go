package dto

// ── 菜品模块 DTO ──

// CreateDishRequest 创建菜品请求
type CreateDishRequest struct {
	Name            string  `json:"name"             binding:"required,min=1,max=100"`
	Description     string  `json:"description"      binding:"omitempty,max=500"`
	Price           float64 `json:"price"            binding:"required,gt=0"`
	PreparationTime int     `json:"preparation_time" binding:"omitempty,gte=0"`
	CategoryID      *string `json:"category_id"      binding:"omitempty,uuid"`
}

// UpdateDishRequest 更新菜品请求
type UpdateDishRequest struct {
	Name            *string  `json:"name"             binding:"omitempty,min=1,max=100"`
	Description     *string  `json:"description"      binding:"omitempty,max=500"`
	Price           *float64 `json:"price"            binding:"omitempty,gt=0"`
	PreparationTime *int     `json:"preparation_time" binding:"omitempty,gte=0"`
	CategoryID      *string  `json:"category_id"      binding:"omitempty,uuid"`
}

// DishResponse 菜品信息响应
type DishResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description,omitempty"`
	Price           float64 `json:"price"`
	PreparationTime int     `json:"preparation_time"`
	ImageURL        string  `json:"image_url,omitempty"`
	CategoryID      *string `json:"category_id,omitempty"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

// DishSummary 引用保护响应中携带的菜品摘要
type DishSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
