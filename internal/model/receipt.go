package model

import "time"

// Receipt 收据表 — 对应 receipts
type Receipt struct {
	ReceiptID     string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"receipt_id"`
	OrderID       string    `gorm:"type:uuid;not null"                             json:"order_id"`
	Amount        float64   `gorm:"type:numeric(10,2);not null"                    json:"amount"`
	PaymentMethod string    `gorm:"type:varchar(50);not null"                      json:"payment_method"`
	PaymentTime   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"payment_time"`
	LocationID    *string   `gorm:"type:uuid"                                      json:"location_id,omitempty"`
	BaseModel
}

// TableName 指定表名
func (Receipt) TableName() string { return "receipts" }
