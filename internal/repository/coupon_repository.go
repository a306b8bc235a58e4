package repository

import (
	"context"

	"app/internal/domain/model"
)

type CouponRepository interface {
	Create(ctx context.Context, coupon model.Coupon) (model.Coupon, error)
	FindByID(ctx context.Context, couponID int64) (model.Coupon, error)
	FindByCode(ctx context.Context, code string) (model.Coupon, bool, error)
	List(ctx context.Context) ([]model.Coupon, error)
	Update(ctx context.Context, coupon model.Coupon) error

	// クーポン本体と利用記録をまとめて消す
	Delete(ctx context.Context, couponID int64) error
}
