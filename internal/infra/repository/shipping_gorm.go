package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type ShippingGormRepository struct {
	db *gorm.DB
}

func NewShippingGormRepository(db *gorm.DB) *ShippingGormRepository {
	return &ShippingGormRepository{db: db}
}

func (r *ShippingGormRepository) Create(ctx context.Context, shipping model.Shipping) (model.Shipping, error) {
	if err := r.db.WithContext(ctx).Create(&shipping).Error; err != nil {
		return model.Shipping{}, err
	}
	return shipping, nil
}

func (r *ShippingGormRepository) FindByOrderID(ctx context.Context, orderID int64) (model.Shipping, error) {
	var s model.Shipping
	err := r.db.WithContext(ctx).Where("order_id = ?", orderID).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Shipping{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Shipping{}, err
	}
	return s, nil
}

func (r *ShippingGormRepository) UpdateSN(ctx context.Context, shippingID int64, sn string) error {
	res := r.db.WithContext(ctx).Model(&model.Shipping{}).
		Where("id = ?", shippingID).
		Update("sn", sn)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
