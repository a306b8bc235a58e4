package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"app/internal/domain/model"
	"app/internal/infra/cache"
	repo "app/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// 商品一覧は1ページ10件固定
const productPageLimit = 10

type ProductUsecase struct {
	productRepo   repo.ProductRepository
	inventoryRepo repo.InventoryRepository
	cache         cache.Cache
	cacheTTL      time.Duration
}

// DI
func NewProductUsecase(
	productRepo repo.ProductRepository,
	inventoryRepo repo.InventoryRepository,
	c cache.Cache,
) *ProductUsecase {
	return &ProductUsecase{
		productRepo:   productRepo,
		inventoryRepo: inventoryRepo,
		cache:         c,
		cacheTTL:      15 * time.Minute,
	}
}

type HomeProductOutput struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Image       string `json:"image"`
}

type ListProductsInput struct {
	Page       int
	CategoryID *int64
}

type ListProductsOutput struct {
	Products   []model.Product  `json:"products"`
	Categories []model.Category `json:"categories"`
	Page       int              `json:"page"`
	TotalPage  []int            `json:"total_page"`
	Prev       int              `json:"prev"`
	Next       int              `json:"next"`
}

type ProductDetailOutput struct {
	Product     model.Product     `json:"product"`
	Colors      []model.Color     `json:"colors"`
	Images      []model.Image     `json:"images"`
	Inventories []model.Inventory `json:"inventories"`
}

// GetHomeProducts はトップページ用の商品一覧（代表画像つき）。
// 読み取り頻度が高いのでキャッシュを前置する。
func (u *ProductUsecase) GetHomeProducts(ctx context.Context) ([]HomeProductOutput, error) {
	const key = "products:home"

	if data, err := u.cache.Get(ctx, key); err == nil {
		var cached []HomeProductOutput
		if json.Unmarshal(data, &cached) == nil {
			return cached, nil
		}
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		slog.Warn("product cache read failed", "key", key, "err", err)
	}

	products, err := u.productRepo.ListActive(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	images, err := u.productRepo.ListImages(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//商品ごとに最初の画像を代表にする
	imageByProduct := make(map[int64]string, len(images))
	for _, img := range images {
		if _, ok := imageByProduct[img.ProductID]; !ok {
			imageByProduct[img.ProductID] = img.URL
		}
	}

	outs := make([]HomeProductOutput, 0, len(products))
	for _, p := range products {
		outs = append(outs, HomeProductOutput{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			Image:       imageByProduct[p.ID],
		})
	}

	if data, err := json.Marshal(outs); err == nil {
		if err := u.cache.Set(ctx, key, data, u.cacheTTL); err != nil {
			slog.Warn("product cache write failed", "key", key, "err", err)
		}
	}

	return outs, nil
}

func (u *ProductUsecase) ListProducts(ctx context.Context, in ListProductsInput) (ListProductsOutput, error) {
	page := in.Page
	if page < 1 {
		page = 1
	}

	products, total, err := u.productRepo.ListPaged(ctx, repo.ProductListQuery{
		Page:       page,
		Limit:      productPageLimit,
		CategoryID: in.CategoryID,
	})
	if err != nil {
		return ListProductsOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	categories, err := u.productRepo.ListCategories(ctx)
	if err != nil {
		return ListProductsOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	pages := int((total + productPageLimit - 1) / productPageLimit)
	totalPage := make([]int, 0, pages)
	for i := 1; i <= pages; i++ {
		totalPage = append(totalPage, i)
	}

	prev := page - 1
	if prev < 1 {
		prev = 1
	}
	next := page + 1
	if next > pages {
		next = pages
	}

	return ListProductsOutput{
		Products:   products,
		Categories: categories,
		Page:       page,
		TotalPage:  totalPage,
		Prev:       prev,
		Next:       next,
	}, nil
}

func (u *ProductUsecase) GetProduct(ctx context.Context, productID int64) (ProductDetailOutput, error) {
	if productID <= 0 {
		return ProductDetailOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	key := fmt.Sprintf("products:detail:%d", productID)
	if data, err := u.cache.Get(ctx, key); err == nil {
		var cached ProductDetailOutput
		if json.Unmarshal(data, &cached) == nil {
			return cached, nil
		}
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		slog.Warn("product cache read failed", "key", key, "err", err)
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return ProductDetailOutput{}, NewHTTPError(http.StatusBadRequest, "product not found")
	}
	if err != nil {
		return ProductDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	colors, err := u.productRepo.ListColorsByProductID(ctx, productID)
	if err != nil {
		return ProductDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	images, err := u.productRepo.ListImagesByProductID(ctx, productID)
	if err != nil {
		return ProductDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	inventories, err := u.inventoryRepo.ListByProductID(ctx, productID)
	if err != nil {
		return ProductDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	out := ProductDetailOutput{
		Product:     p,
		Colors:      colors,
		Images:      images,
		Inventories: inventories,
	}

	if data, err := json.Marshal(out); err == nil {
		if err := u.cache.Set(ctx, key, data, u.cacheTTL); err != nil {
			slog.Warn("product cache write failed", "key", key, "err", err)
		}
	}

	return out, nil
}
