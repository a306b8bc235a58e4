package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type InventoryGormRepository struct {
	db *gorm.DB
}

func NewInventoryGormRepository(db *gorm.DB) *InventoryGormRepository {
	return &InventoryGormRepository{db: db}
}

// 在庫が要求より厳密に多いときだけ減らす。
// 同じ(product, color)への同時チェックアウトがどちらも通ることはない。
func (r *InventoryGormRepository) DecrementIfAvailable(ctx context.Context, productID int64, colorID int64, qty int64) (int64, error) {
	var remaining []int64

	err := r.db.WithContext(ctx).Raw(
		`UPDATE inventories
		    SET quantity = quantity - ?, updated_at = NOW()
		  WHERE product_id = ? AND color_id = ? AND quantity > ?
		RETURNING quantity`,
		qty, productID, colorID, qty,
	).Scan(&remaining).Error
	if err != nil {
		return 0, err
	}

	if len(remaining) > 0 {
		return remaining[0], nil
	}

	//減らせなかった理由を区別する（行なし or 在庫不足）
	var inv model.Inventory
	findErr := r.db.WithContext(ctx).
		Where("product_id = ? AND color_id = ?", productID, colorID).
		First(&inv).Error
	if errors.Is(findErr, gorm.ErrRecordNotFound) {
		return 0, repo.ErrInventoryMissing
	}
	if findErr != nil {
		return 0, findErr
	}
	return 0, repo.ErrInsufficientStock
}

func (r *InventoryGormRepository) FindByProductAndColor(ctx context.Context, productID int64, colorID int64) (model.Inventory, error) {
	var inv model.Inventory
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND color_id = ?", productID, colorID).
		First(&inv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Inventory{}, repo.ErrInventoryMissing
	}
	if err != nil {
		return model.Inventory{}, err
	}
	return inv, nil
}

func (r *InventoryGormRepository) ListByProductID(ctx context.Context, productID int64) ([]model.Inventory, error) {
	var items []model.Inventory
	if err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("color_id asc").
		Find(&items).Error; err != nil {
		return []model.Inventory{}, err
	}
	return items, nil
}
