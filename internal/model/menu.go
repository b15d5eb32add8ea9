package model

// Menu 菜单表 — 对应 menus
type Menu struct {
	MenuID      string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"menu_id"`
	Name        string  `gorm:"type:varchar(100);not null"                     json:"name"`
	Description string  `gorm:"type:varchar(500)"                              json:"description,omitempty"`
	LocationID  *string `gorm:"type:uuid"                                      json:"location_id,omitempty"`
	CreatedBy   *string `gorm:"type:uuid"                                      json:"created_by,omitempty"`
	UpdatedBy   *string `gorm:"type:uuid"                                      json:"updated_by,omitempty"`
	BaseModel
}

// TableName 指定表名
func (Menu) TableName() string { return "menus" }

// MenuDish 菜单-菜品关联表 — 对应 menu_dishes
// 复合主键保证同一菜品在同一菜单中最多出现一次
type MenuDish struct {
	MenuID string `gorm:"type:uuid;primaryKey" json:"menu_id"`
	DishID string `gorm:"type:uuid;primaryKey" json:"dish_id"`
	Status string `gorm:"type:varchar(20);not null;default:'Available'" json:"status"`
	BaseModel
}

// TableName 指定表名
func (MenuDish) TableName() string { return "menu_dishes" }

// MenuDishDetail 菜单条目 + 菜品明细 — 对应视图 menu_dish_details
type MenuDishDetail struct {
	MenuID          string  `json:"menu_id"`
	DishID          string  `json:"dish_id"`
	Status          string  `json:"status"`
	DishName        string  `json:"dish_name"`
	DishDescription string  `json:"dish_description,omitempty"`
	Price           float64 `json:"price"`
	PreparationTime int     `json:"preparation_time"`
	ImageURL        string  `json:"image_url,omitempty"`
	MenuName        string  `json:"menu_name"`
	LocationID      *string `json:"location_id,omitempty"`
}

// TableName 指定视图名
func (MenuDishDetail) TableName() string { return "menu_dish_details" }
