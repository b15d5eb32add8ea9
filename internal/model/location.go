package model

// Location 餐厅地点表 — 对应 locations
// 删除地点不做级联：依赖方保留悬挂引用，清理属于人工管理操作
type Location struct {
	LocationID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"location_id"`
	Address    string `gorm:"type:varchar(200);not null"                     json:"address"`
	City       string `gorm:"type:varchar(100)"                              json:"city,omitempty"`
	State      string `gorm:"type:varchar(100)"                              json:"state,omitempty"`
	ZipCode    string `gorm:"type:varchar(20)"                               json:"zip_code,omitempty"`
	Country    string `gorm:"type:varchar(100)"                              json:"country,omitempty"`
	BaseModel
}

// TableName 指定表名
func (Location) TableName() string { return "locations" }
