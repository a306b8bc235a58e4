package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
)

// 在庫が要求数量より多くない（strictな > を満たさない）
var ErrInsufficientStock = errors.New("insufficient stock")

// (product, color)の在庫行が存在しない
var ErrInventoryMissing = errors.New("inventory record missing")

type InventoryRepository interface {
	// 在庫がqtyより厳密に多いときだけ減算し、減算後の残量を返す。
	// check-then-actは1つのアトミックな条件付きUPDATEで行う。
	// 足りなければErrInsufficientStock、行が無ければErrInventoryMissing。
	DecrementIfAvailable(ctx context.Context, productID int64, colorID int64, qty int64) (int64, error)

	FindByProductAndColor(ctx context.Context, productID int64, colorID int64) (model.Inventory, error)
	ListByProductID(ctx context.Context, productID int64) ([]model.Inventory, error)
}
