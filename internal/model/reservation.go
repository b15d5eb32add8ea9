package model

import "time"

// Reservation 预订表 — 对应 reservations
type Reservation struct {
	ReservationID   string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"reservation_id"`
	UserID          string    `gorm:"type:uuid;not null"                             json:"user_id"`
	TableID         string    `gorm:"type:uuid;not null;index"                       json:"table_id"`
	LocationID      *string   `gorm:"type:uuid"                                      json:"location_id,omitempty"`
	ReservationTime time.Time `gorm:"not null"                                       json:"reservation_time"`
	SpecialRequests string    `gorm:"type:varchar(500)"                              json:"special_requests,omitempty"`
	Status          string    `gorm:"type:varchar(20);not null;default:'Pending'"    json:"status"`
	BaseModel
}

// TableName 指定表名
func (Reservation) TableName() string { return "reservations" }
