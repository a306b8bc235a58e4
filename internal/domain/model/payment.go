package model

import "time"

// 決済レコード。確定済みOrderと1対1。
type Payment struct {
	ID            int64         `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID       int64         `gorm:"not null;uniqueIndex" json:"order_id"`
	SN            string        `gorm:"column:sn;type:varchar(64);not null;index" json:"sn"`
	TotalAmount   int64         `gorm:"not null" json:"total_amount"`
	PaymentMethod string        `gorm:"type:varchar(50)" json:"payment_method"`
	PaymentStatus PaymentStatus `gorm:"type:varchar(20);not null" json:"payment_status"`
	PaidAt        *time.Time    `json:"paid_at"`
	CreatedAt     time.Time     `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time     `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
