package usecase_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type CouponRepoMock struct{ mock.Mock }

func (m *CouponRepoMock) Create(ctx context.Context, coupon model.Coupon) (model.Coupon, error) {
	args := m.Called(ctx, coupon)
	return args.Get(0).(model.Coupon), args.Error(1)
}

func (m *CouponRepoMock) FindByID(ctx context.Context, couponID int64) (model.Coupon, error) {
	args := m.Called(ctx, couponID)
	return args.Get(0).(model.Coupon), args.Error(1)
}

func (m *CouponRepoMock) FindByCode(ctx context.Context, code string) (model.Coupon, bool, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(model.Coupon), args.Bool(1), args.Error(2)
}

func (m *CouponRepoMock) List(ctx context.Context) ([]model.Coupon, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Coupon), args.Error(1)
}

func (m *CouponRepoMock) Update(ctx context.Context, coupon model.Coupon) error {
	args := m.Called(ctx, coupon)
	return args.Error(0)
}

func (m *CouponRepoMock) Delete(ctx context.Context, couponID int64) error {
	args := m.Called(ctx, couponID)
	return args.Error(0)
}

func validCouponInput() usecase.CouponInput {
	return usecase.CouponInput{
		CouponCode:   "SUMMER10",
		Percent:      10,
		LimitedUsage: 100,
		ExpireDate:   time.Now().AddDate(0, 1, 0),
	}
}

func TestCouponUsecase_AddCoupon_MissingFields(t *testing.T) {
	uc := usecase.NewCouponUsecase(new(CouponRepoMock))

	_, err := uc.AddCoupon(context.Background(), usecase.CouponInput{CouponCode: "SUMMER10"})

	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
	assert.Equal(t, "All fields are required", he.Message)
}

func TestCouponUsecase_AddCoupon_DuplicateCode(t *testing.T) {
	repoMock := new(CouponRepoMock)
	repoMock.On("FindByCode", mock.Anything, "SUMMER10").Return(model.Coupon{ID: 1, CouponCode: "SUMMER10"}, true, nil)

	uc := usecase.NewCouponUsecase(repoMock)

	_, err := uc.AddCoupon(context.Background(), validCouponInput())

	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
	assert.Equal(t, "Coupon code already existed", he.Message)
	repoMock.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// コード未指定なら作成せず、生成したコードだけ提案する
func TestCouponUsecase_AddCoupon_GeneratesCodeSuggestion(t *testing.T) {
	repoMock := new(CouponRepoMock)
	uc := usecase.NewCouponUsecase(repoMock)

	in := validCouponInput()
	in.CouponCode = ""

	out, err := uc.AddCoupon(context.Background(), in)

	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
	assert.Len(t, out.GeneratedCode, 9)
	repoMock.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCouponUsecase_AddCoupon_InvalidPercent(t *testing.T) {
	repoMock := new(CouponRepoMock)
	repoMock.On("FindByCode", mock.Anything, "SUMMER10").Return(model.Coupon{}, false, nil)

	uc := usecase.NewCouponUsecase(repoMock)

	in := validCouponInput()
	in.Percent = 0

	_, err := uc.AddCoupon(context.Background(), in)

	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, "Percentage of discount must greater than 1", he.Message)
}

func TestCouponUsecase_AddCoupon_ExpiredDate(t *testing.T) {
	repoMock := new(CouponRepoMock)
	repoMock.On("FindByCode", mock.Anything, "SUMMER10").Return(model.Coupon{}, false, nil)

	uc := usecase.NewCouponUsecase(repoMock)

	in := validCouponInput()
	in.ExpireDate = time.Now().Add(-time.Hour)

	_, err := uc.AddCoupon(context.Background(), in)

	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, "Expire date must more than the time from now", he.Message)
}

func TestCouponUsecase_AddCoupon_Success(t *testing.T) {
	repoMock := new(CouponRepoMock)
	repoMock.On("FindByCode", mock.Anything, "SUMMER10").Return(model.Coupon{}, false, nil)
	repoMock.On("Create", mock.Anything, mock.MatchedBy(func(c model.Coupon) bool {
		return c.CouponCode == "SUMMER10" && c.Percent == 10 && c.LimitedUsage == 100
	})).Return(model.Coupon{ID: 1, CouponCode: "SUMMER10", Percent: 10, LimitedUsage: 100}, nil)

	uc := usecase.NewCouponUsecase(repoMock)

	out, err := uc.AddCoupon(context.Background(), validCouponInput())
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.Coupon.ID)
	assert.Empty(t, out.GeneratedCode)
	repoMock.AssertExpectations(t)
}

func TestCouponUsecase_GetCoupon_NotFound(t *testing.T) {
	repoMock := new(CouponRepoMock)
	repoMock.On("FindByID", mock.Anything, int64(404)).Return(model.Coupon{}, repo.ErrNotFound)

	uc := usecase.NewCouponUsecase(repoMock)

	_, err := uc.GetCoupon(context.Background(), 404)

	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
	assert.Equal(t, "Can not fetch coupon info", he.Message)
}

func TestCouponUsecase_EditCoupon_NotFound(t *testing.T) {
	repoMock := new(CouponRepoMock)
	repoMock.On("FindByID", mock.Anything, int64(404)).Return(model.Coupon{}, repo.ErrNotFound)

	uc := usecase.NewCouponUsecase(repoMock)

	err := uc.EditCoupon(context.Background(), 404, validCouponInput())

	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, "Coupon is not exist", he.Message)
}

func TestCouponUsecase_EditCoupon_Success(t *testing.T) {
	existing := model.Coupon{ID: 1, CouponCode: "OLD", Percent: 5, LimitedUsage: 10, ExpireDate: time.Now()}

	repoMock := new(CouponRepoMock)
	repoMock.On("FindByID", mock.Anything, int64(1)).Return(existing, nil)
	repoMock.On("Update", mock.Anything, mock.MatchedBy(func(c model.Coupon) bool {
		return c.ID == 1 && c.CouponCode == "SUMMER10" && c.Percent == 10 && c.LimitedUsage == 100
	})).Return(nil)

	uc := usecase.NewCouponUsecase(repoMock)

	err := uc.EditCoupon(context.Background(), 1, validCouponInput())
	require.NoError(t, err)
	repoMock.AssertExpectations(t)
}

func TestCouponUsecase_DeleteCoupon_Success(t *testing.T) {
	repoMock := new(CouponRepoMock)
	repoMock.On("FindByID", mock.Anything, int64(1)).Return(model.Coupon{ID: 1}, nil)
	repoMock.On("Delete", mock.Anything, int64(1)).Return(nil)

	uc := usecase.NewCouponUsecase(repoMock)

	require.NoError(t, uc.DeleteCoupon(context.Background(), 1))
	repoMock.AssertExpectations(t)
}
