package model

// DiningTable 餐桌表 — 对应 dining_tables
// 存在关联预订时禁止删除（服务层引用保护）
type DiningTable struct {
	TableID    string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"table_id"`
	Capacity   int     `gorm:"not null"                                       json:"capacity"`
	Label      string  `gorm:"type:varchar(100)"                              json:"label,omitempty"`
	LocationID *string `gorm:"type:uuid"                                      json:"location_id,omitempty"`
	BaseModel
}

// TableName 指定表名
func (DiningTable) TableName() string { return "dining_tables" }
