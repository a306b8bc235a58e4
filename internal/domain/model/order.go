package model

import "time"

type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusCompleted  OrderStatus = "COMPLETED"
	OrderStatusCanceled   OrderStatus = "CANCELED"
)

type ShippingStatus string

const (
	ShippingStatusUnshipped ShippingStatus = "UNSHIPPED"
	ShippingStatusShipped   ShippingStatus = "SHIPPED"
)

type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "UNPAID"
	PaymentStatusPaid   PaymentStatus = "PAID"
)

// 注文の集約ルート。
// 配送先はユーザーの後変更に影響されないよう作成時点のスナップショットを持つ。
// TotalAmountは明細の成立ごとに加算される（事前計算しない）。
type Order struct {
	ID             int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID         int64          `gorm:"not null;index" json:"user_id"`
	OrderStatus    OrderStatus    `gorm:"type:varchar(20);not null;index" json:"order_status"`
	ShippingStatus ShippingStatus `gorm:"type:varchar(20);not null" json:"shipping_status"`
	PaymentStatus  PaymentStatus  `gorm:"type:varchar(20);not null;index" json:"payment_status"`
	TotalAmount    int64          `gorm:"not null;default:0" json:"total_amount"`

	//配送先スナップショット（Userからコピー）
	Name    string `gorm:"type:varchar(255);not null" json:"name"`
	Address string `gorm:"type:varchar(255)" json:"address"`
	Email   string `gorm:"type:varchar(255)" json:"email"`
	Phone   string `gorm:"type:varchar(30)" json:"phone"`

	//取引シリアル番号（決済作成時に採番）
	SN string `gorm:"column:sn;type:varchar(64);index" json:"sn"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
