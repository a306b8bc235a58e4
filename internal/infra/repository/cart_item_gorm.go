package repository

import (
	"context"
	"errors"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type CartItemGormRepository struct {
	db *gorm.DB
}

// DI
func NewCartItemGormRepository(db *gorm.DB) *CartItemGormRepository {
	return &CartItemGormRepository{db: db}
}

func (r *CartItemGormRepository) ListByCartID(ctx context.Context, cartID int64) ([]model.CartItem, error) {
	var items []model.CartItem
	if err := r.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Order("id asc").
		Find(&items).Error; err != nil {
		return []model.CartItem{}, err
	}
	return items, nil
}

func (r *CartItemGormRepository) FindByID(ctx context.Context, cartItemID int64) (model.CartItem, error) {
	var item model.CartItem
	err := r.db.WithContext(ctx).Where("id = ?", cartItemID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.CartItem{}, repo.ErrNotFound
	}
	if err != nil {
		return model.CartItem{}, err
	}
	return item, nil
}

// 同一(商品, 色)は数量+1。無ければ数量1で作る。
func (r *CartItemGormRepository) UpsertAddOne(ctx context.Context, cartID int64, productID int64, colorID int64, price int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item model.CartItem
		findErr := tx.
			Where("cart_id = ? AND product_id = ? AND color_id = ?", cartID, productID, colorID).
			First(&item).Error

		if errors.Is(findErr, gorm.ErrRecordNotFound) {
			now := time.Now()
			newItem := model.CartItem{
				CartID:    cartID,
				ProductID: productID,
				ColorID:   colorID,
				Quantity:  1,
				Price:     price,
				CreatedAt: now,
				UpdatedAt: now,
			}
			return tx.Create(&newItem).Error
		}
		if findErr != nil {
			return findErr
		}

		//価格は最新の追加時点に更新する
		return tx.Model(&model.CartItem{}).
			Where("id = ?", item.ID).
			Updates(map[string]interface{}{
				"quantity": gorm.Expr("quantity + ?", 1),
				"price":    price,
			}).Error
	})
}

func (r *CartItemGormRepository) UpdateQuantity(ctx context.Context, cartItemID int64, qty int64) error {
	res := r.db.WithContext(ctx).Model(&model.CartItem{}).
		Where("id = ?", cartItemID).
		Update("quantity", qty)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *CartItemGormRepository) DeleteByID(ctx context.Context, cartItemID int64) error {
	res := r.db.WithContext(ctx).Where("id = ?", cartItemID).Delete(&model.CartItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *CartItemGormRepository) DeleteByCartProductColor(ctx context.Context, cartID int64, productID int64, colorID int64) error {
	return r.db.WithContext(ctx).
		Where("cart_id = ? AND product_id = ? AND color_id = ?", cartID, productID, colorID).
		Delete(&model.CartItem{}).Error
}
