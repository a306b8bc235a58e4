package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

type ProductListQuery struct {
	Page       int
	Limit      int
	CategoryID *int64
}

type ProductRepository interface {
	ListPaged(ctx context.Context, q ProductListQuery) ([]model.Product, int64, error)
	ListActive(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, productID int64) (model.Product, error)

	ListCategories(ctx context.Context) ([]model.Category, error)
	ListColorsByProductID(ctx context.Context, productID int64) ([]model.Color, error)
	ListImagesByProductID(ctx context.Context, productID int64) ([]model.Image, error)
	ListImages(ctx context.Context) ([]model.Image, error)
}
