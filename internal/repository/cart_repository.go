package repository

import (
	"context"

	"app/internal/domain/model"
)

type CartRepository interface {
	Create(ctx context.Context) (model.Cart, error)
	FindByID(ctx context.Context, cartID int64) (model.Cart, error)
}
