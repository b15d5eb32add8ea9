package model

// User 用户表 — 对应 users
type User struct {
	UserID       string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Name         string  `gorm:"type:varchar(100);not null"                     json:"name"`
	Role         string  `gorm:"type:varchar(20);not null"                      json:"role"`
	Contact      string  `gorm:"type:varchar(255)"                              json:"contact,omitempty"`
	Login        string  `gorm:"type:varchar(100);not null;uniqueIndex"         json:"login"`
	PasswordHash string  `gorm:"type:varchar(255);not null"                     json:"-"`
	LocationID   *string `gorm:"type:uuid"                                      json:"location_id,omitempty"`
	BaseModel

	// 关联
	Location *Location `gorm:"foreignKey:LocationID;references:LocationID" json:"location,omitempty"`
}

// TableName 指定表名
func (User) TableName() string { return "users" }

// UserDetail 用户 + 常驻地点 — 对应视图 user_details
type UserDetail struct {
	UserID          string  `json:"user_id"`
	Name            string  `json:"name"`
	Role            string  `json:"role"`
	Contact         string  `json:"contact,omitempty"`
	Login           string  `json:"login"`
	LocationID      *string `json:"location_id,omitempty"`
	LocationAddress *string `json:"location_address,omitempty"`
	LocationCity    *string `json:"location_city,omitempty"`
}

// TableName 指定视图名
func (UserDetail) TableName() string { return "user_details" }
