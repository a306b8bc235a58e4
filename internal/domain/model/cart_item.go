package model

import "time"

// カートの明細。(CartID, ProductID, ColorID)はカート内で一意。
// Priceは追加時点の単価スナップショット。
type CartItem struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CartID    int64     `gorm:"not null;uniqueIndex:idx_cart_items_cart_product_color" json:"cart_id"`
	ProductID int64     `gorm:"not null;uniqueIndex:idx_cart_items_cart_product_color" json:"product_id"`
	ColorID   int64     `gorm:"not null;uniqueIndex:idx_cart_items_cart_product_color" json:"color_id"`
	Quantity  int64     `gorm:"not null" json:"quantity"`
	Price     int64     `gorm:"not null" json:"price"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
