package model

import "time"

type Coupon struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CouponCode   string    `gorm:"column:coupon_code;type:varchar(50);not null;uniqueIndex" json:"coupon_code"`
	Percent      int64     `gorm:"not null" json:"percent"`
	LimitedUsage int64     `gorm:"column:limited_usage;not null" json:"limited_usage"`
	ExpireDate   time.Time `gorm:"column:expire_date;not null" json:"expire_date"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// クーポンの利用記録（クーポンと注文の中間テーブル）。
type CouponItem struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CouponID  int64     `gorm:"not null;index" json:"coupon_id"`
	OrderID   int64     `gorm:"not null;index" json:"order_id"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
