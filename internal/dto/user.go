package dto

// ── 用户模块 DTO（/owner 管理接口）──

// CreateUserRequest 创建用户请求（仅 Owner）
type CreateUserRequest struct {
	Name       string  `json:"name"        binding:"required,min=2,max=100"`
	Role       string  `json:"role"        binding:"required"`
	Contact    string  `json:"contact"     binding:"omitempty,max=255"`
	Login      string  `json:"login"       binding:"required,min=2,max=100"`
	Password   string  `json:"password"    binding:"required,min=6,max=72"`
	LocationID *string `json:"location_id" binding:"omitempty,uuid"`
}

// UpdateUserRequest 更新用户请求
// 显式列出可变字段，均为可选；与当前行合并后落库
type UpdateUserRequest struct {
	Name       *string `json:"name"        binding:"omitempty,min=2,max=100"`
	Contact    *string `json:"contact"     binding:"omitempty,max=255"`
	LocationID *string `json:"location_id" binding:"omitempty,uuid"`
}

// AssignRoleRequest 调整用户角色请求
type AssignRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// UserResponse 用户信息响应（脱敏）
type UserResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Role       string  `json:"role"`
	Contact    string  `json:"contact,omitempty"`
	Login      string  `json:"login"`
	LocationID *string `json:"location_id,omitempty"`
}

// UserDetailResponse 用户 + 常驻地点（user_details 视图）
type UserDetailResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Role            string  `json:"role"`
	Contact         string  `json:"contact,omitempty"`
	Login           string  `json:"login"`
	LocationID      *string `json:"location_id,omitempty"`
	LocationAddress *string `json:"location_address,omitempty"`
	LocationCity    *string `json:"location_city,omitempty"`
}
