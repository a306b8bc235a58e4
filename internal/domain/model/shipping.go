package model

import "time"

// 注文の物流レコード。決済作成時に取引シリアル番号が押される。
type Shipping struct {
	ID             int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID        int64          `gorm:"not null;uniqueIndex" json:"order_id"`
	Name           string         `gorm:"type:varchar(255)" json:"name"`
	Address        string         `gorm:"type:varchar(255)" json:"address"`
	Phone          string         `gorm:"type:varchar(30)" json:"phone"`
	Fee            int64          `gorm:"not null;default:0" json:"fee"`
	ShippingStatus ShippingStatus `gorm:"type:varchar(20);not null" json:"shipping_status"`
	SN             string         `gorm:"column:sn;type:varchar(64);index" json:"sn"`
	CreatedAt      time.Time      `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
