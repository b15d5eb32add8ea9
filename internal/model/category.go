package model

// Category 菜品分类表 — 对应 categories
// 存在关联菜品时禁止删除（服务层引用保护）
type Category struct {
	CategoryID  string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"category_id"`
	Name        string  `gorm:"type:varchar(100);not null"                     json:"name"`
	Description string  `gorm:"type:varchar(500)"                              json:"description,omitempty"`
	CreatedBy   *string `gorm:"type:uuid"                                      json:"created_by,omitempty"`
	BaseModel
}

// TableName 指定表名
func (Category) TableName() string { return "categories" }
