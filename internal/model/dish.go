package model

// Dish 菜品表 — 对应 dishes
// ImageURL 为对象存储返回的对外访问 URL，Key 形如 <uuid>_<原始文件名>
type Dish struct {
	DishID          string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"dish_id"`
	Name            string  `gorm:"type:varchar(100);not null"                     json:"name"`
	Description     string  `gorm:"type:varchar(500)"                              json:"description,omitempty"`
	Price           float64 `gorm:"type:numeric(10,2);not null"                    json:"price"`
	PreparationTime int     `gorm:"not null;default:0"                             json:"preparation_time"` // 分钟
	ImageURL        string  `gorm:"type:varchar(500)"                              json:"image_url,omitempty"`
	CategoryID      *string `gorm:"type:uuid;index"                                json:"category_id,omitempty"`
	CreatedBy       *string `gorm:"type:uuid"                                      json:"created_by,omitempty"`
	UpdatedBy       *string `gorm:"type:uuid"                                      json:"updated_by,omitempty"`
	BaseModel
}

// TableName 指定表名
func (Dish) TableName() string { return "dishes" }
