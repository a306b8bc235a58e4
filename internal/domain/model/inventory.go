package model

import "time"

// (ProductID, ColorID)ごとの手持ち在庫。
// Quantityは負にならない。減算はOrder Assemblerの条件付きUPDATEのみ。
type Inventory struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID int64     `gorm:"not null;uniqueIndex:idx_inventories_product_color" json:"product_id"`
	ColorID   int64     `gorm:"not null;uniqueIndex:idx_inventories_product_color" json:"color_id"`
	Quantity  int64     `gorm:"not null;default:0" json:"quantity"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
