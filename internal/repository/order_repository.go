package repository

import (
	"context"

	"app/internal/domain/model"
)

type OrderRepository interface {
	Create(ctx context.Context, order model.Order) (int64, error)
	FindByID(ctx context.Context, orderID int64) (model.Order, error)

	// 明細が1件も成立しなかった注文のロールバック
	Delete(ctx context.Context, orderID int64) error

	// 成立した明細のprice*quantityを積み上げる
	AddToTotal(ctx context.Context, orderID int64, delta int64) error

	UpdateSN(ctx context.Context, orderID int64, sn string) error

	// 未払いの注文だけを返す
	ListUnpaidByUserID(ctx context.Context, userID int64) ([]model.Order, error)
}
