package repository

import (
	"context"

	"app/internal/domain/model"
)

type ShippingRepository interface {
	Create(ctx context.Context, shipping model.Shipping) (model.Shipping, error)
	FindByOrderID(ctx context.Context, orderID int64) (model.Shipping, error)
	UpdateSN(ctx context.Context, shippingID int64, sn string) error
}
