package dto

// ── 菜单模块 DTO ──

// CreateMenuRequest 创建菜单请求
type CreateMenuRequest struct {
	Name        string  `json:"name"        binding:"required,min=1,max=100"`
	Description string  `json:"description" binding:"omitempty,max=500"`
	LocationID  *string `json:"location_id" binding:"omitempty,uuid"`
}

// UpdateMenuRequest 更新菜单请求
type UpdateMenuRequest struct {
	Name        *string `json:"name"        binding:"omitempty,min=1,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	LocationID  *string `json:"location_id" binding:"omitempty,uuid"`
}

// AddMenuDishRequest 向菜单添加菜品请求
type AddMenuDishRequest struct {
	DishID string `json:"dish_id" binding:"required,uuid"`
	Status string `json:"status"  binding:"omitempty"`
}

// UpdateMenuDishRequest 更新菜单条目状态请求
type UpdateMenuDishRequest struct {
	Status string `json:"status" binding:"required"`
}

// MenuResponse 菜单信息响应
type MenuResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	LocationID  *string `json:"location_id,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// MenuDishResponse 菜单条目明细响应（menu_dish_details 视图）
type MenuDishResponse struct {
	DishID          string  `json:"dish_id"`
	DishName        string  `json:"dish_name"`
	DishDescription string  `json:"dish_description,omitempty"`
	Price           float64 `json:"price"`
	PreparationTime int     `json:"preparation_time"`
	ImageURL        string  `json:"image_url,omitempty"`
	Status          string  `json:"status"`
}

// MenuDetailResponse 菜单 + 条目明细响应
type MenuDetailResponse struct {
	MenuResponse
	Dishes []MenuDishResponse `json:"dishes"`
}
