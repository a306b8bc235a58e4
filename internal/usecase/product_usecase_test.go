package usecase_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"app/internal/domain/model"
	"app/internal/infra/cache"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type memCache struct {
	data map[string][]byte
}

func newMemCache() *memCache {
	return &memCache{data: map[string][]byte{}}
}

func (c *memCache) Get(ctx context.Context, key string) ([]byte, error) {
	v, ok := c.data[key]
	if !ok {
		return nil, cache.ErrCacheMiss
	}
	return v, nil
}

func (c *memCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.data[key] = value
	return nil
}

func (c *memCache) Delete(ctx context.Context, key string) error {
	delete(c.data, key)
	return nil
}

func TestProductUsecase_GetHomeProducts_UsesFirstImage(t *testing.T) {
	products := new(ProductRepoMock)
	products.On("ListActive", mock.Anything).Return([]model.Product{
		{ID: 1, Name: "Tee", Price: 100},
		{ID: 2, Name: "Cap", Price: 250},
	}, nil)
	products.On("ListImages", mock.Anything).Return([]model.Image{
		{ID: 10, ProductID: 1, URL: "https://img.example.com/tee-front.jpg"},
		{ID: 11, ProductID: 1, URL: "https://img.example.com/tee-back.jpg"},
	}, nil)

	uc := usecase.NewProductUsecase(products, newMemStore(), newMemCache())

	out, err := uc.GetHomeProducts(context.Background())
	require.NoError(t, err)

	require.Len(t, out, 2)
	assert.Equal(t, "https://img.example.com/tee-front.jpg", out[0].Image)
	assert.Empty(t, out[1].Image)
}

// 2回目はキャッシュから返す。DBには1回しか行かない
func TestProductUsecase_GetHomeProducts_CachesResult(t *testing.T) {
	products := new(ProductRepoMock)
	products.On("ListActive", mock.Anything).Return([]model.Product{{ID: 1, Name: "Tee", Price: 100}}, nil).Once()
	products.On("ListImages", mock.Anything).Return([]model.Image{}, nil).Once()

	uc := usecase.NewProductUsecase(products, newMemStore(), newMemCache())

	first, err := uc.GetHomeProducts(context.Background())
	require.NoError(t, err)

	second, err := uc.GetHomeProducts(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	products.AssertExpectations(t)
}

func TestProductUsecase_ListProducts_Pagination(t *testing.T) {
	products := new(ProductRepoMock)
	products.On("ListPaged", mock.Anything, mock.MatchedBy(func(q repo.ProductListQuery) bool {
		return q.Page == 2 && q.Limit == 10 && q.CategoryID == nil
	})).Return([]model.Product{{ID: 11}}, int64(25), nil)
	products.On("ListCategories", mock.Anything).Return([]model.Category{{ID: 1, Name: "tops"}}, nil)

	uc := usecase.NewProductUsecase(products, newMemStore(), newMemCache())

	out, err := uc.ListProducts(context.Background(), usecase.ListProductsInput{Page: 2})
	require.NoError(t, err)

	assert.Equal(t, 2, out.Page)
	assert.Equal(t, []int{1, 2, 3}, out.TotalPage)
	assert.Equal(t, 1, out.Prev)
	assert.Equal(t, 3, out.Next)
}

func TestProductUsecase_ListProducts_ClampsPage(t *testing.T) {
	products := new(ProductRepoMock)
	products.On("ListPaged", mock.Anything, mock.MatchedBy(func(q repo.ProductListQuery) bool {
		return q.Page == 1
	})).Return([]model.Product{}, int64(5), nil)
	products.On("ListCategories", mock.Anything).Return([]model.Category{}, nil)

	uc := usecase.NewProductUsecase(products, newMemStore(), newMemCache())

	out, err := uc.ListProducts(context.Background(), usecase.ListProductsInput{Page: -3})
	require.NoError(t, err)

	assert.Equal(t, 1, out.Page)
	assert.Equal(t, 1, out.Prev)
	assert.Equal(t, 1, out.Next)
}

func TestProductUsecase_GetProduct_NotFound(t *testing.T) {
	products := new(ProductRepoMock)
	products.On("FindByID", mock.Anything, int64(404)).Return(model.Product{}, repo.ErrNotFound)

	uc := usecase.NewProductUsecase(products, newMemStore(), newMemCache())

	_, err := uc.GetProduct(context.Background(), 404)

	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
	assert.Equal(t, "product not found", he.Message)
}

func TestProductUsecase_GetProduct_Detail(t *testing.T) {
	m := newMemStore()
	m.inventory[invKey{1, 1}] = 5

	products := new(ProductRepoMock)
	products.On("FindByID", mock.Anything, int64(1)).Return(model.Product{ID: 1, Name: "Tee", IsActive: true}, nil)
	products.On("ListColorsByProductID", mock.Anything, int64(1)).Return([]model.Color{{ID: 1, Name: "black"}}, nil)
	products.On("ListImagesByProductID", mock.Anything, int64(1)).Return([]model.Image{{ID: 10, ProductID: 1}}, nil)

	uc := usecase.NewProductUsecase(products, m, newMemCache())

	out, err := uc.GetProduct(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "Tee", out.Product.Name)
	require.Len(t, out.Inventories, 1)
	assert.Equal(t, int64(5), out.Inventories[0].Quantity)
}
