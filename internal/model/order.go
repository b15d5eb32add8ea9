package model

// MealOrder 订单表 — 对应 meal_orders
type MealOrder struct {
	OrderID    string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"order_id"`
	UserID     string  `gorm:"type:uuid;not null"                             json:"user_id"`
	TableID    *string `gorm:"type:uuid"                                      json:"table_id,omitempty"`
	LocationID *string `gorm:"type:uuid"                                      json:"location_id,omitempty"`
	Status     string  `gorm:"type:varchar(20);not null;default:'Pending'"    json:"status"`
	BaseModel

	// 关联：订单独占其条目
	Items []OrderItem `gorm:"foreignKey:OrderID;references:OrderID" json:"items,omitempty"`
}

// TableName 指定表名
func (MealOrder) TableName() string { return "meal_orders" }

// OrderItem 订单条目表 — 对应 order_items
type OrderItem struct {
	OrderItemID     string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"order_item_id"`
	OrderID         string `gorm:"type:uuid;not null;index"                       json:"order_id"`
	DishID          string `gorm:"type:uuid;not null"                             json:"dish_id"`
	Quantity        int    `gorm:"not null;default:1"                             json:"quantity"`
	Status          string `gorm:"type:varchar(20);not null;default:'ordered'"    json:"status"`
	SpecialRequests string `gorm:"type:varchar(500)"                              json:"special_requests,omitempty"`
	BaseModel
}

// TableName 指定表名
func (OrderItem) TableName() string { return "order_items" }

// OrderItemDetail 订单条目 + 菜品 + 餐桌 — 对应视图 order_item_details
type OrderItemDetail struct {
	OrderItemID     string  `json:"order_item_id"`
	OrderID         string  `json:"order_id"`
	DishID          string  `json:"dish_id"`
	Quantity        int     `json:"quantity"`
	Status          string  `json:"status"`
	SpecialRequests string  `json:"special_requests,omitempty"`
	DishName        string  `json:"dish_name"`
	Price           float64 `json:"price"`
	OrderStatus     string  `json:"order_status"`
	TableID         *string `json:"table_id,omitempty"`
	TableLabel      *string `json:"table_label,omitempty"`
}

// TableName 指定视图名
func (OrderItemDetail) TableName() string { return "order_item_details" }
