package repository

import (
	"context"

	"app/internal/domain/model"
)

type CartItemRepository interface {
	ListByCartID(ctx context.Context, cartID int64) ([]model.CartItem, error)
	FindByID(ctx context.Context, cartItemID int64) (model.CartItem, error)

	// 同一(商品, 色)は数量加算。無ければ作成して数量1にする。
	UpsertAddOne(ctx context.Context, cartID int64, productID int64, colorID int64, price int64) error

	UpdateQuantity(ctx context.Context, cartItemID int64, qty int64) error
	DeleteByID(ctx context.Context, cartItemID int64) error

	// 引当成立時にAssemblerが消費する
	DeleteByCartProductColor(ctx context.Context, cartID int64, productID int64, colorID int64) error
}
