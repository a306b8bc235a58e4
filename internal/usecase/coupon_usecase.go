package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/google/uuid"
)

type CouponUsecase struct {
	couponRepo repo.CouponRepository
}

func NewCouponUsecase(couponRepo repo.CouponRepository) *CouponUsecase {
	return &CouponUsecase{couponRepo: couponRepo}
}

type CouponInput struct {
	CouponCode   string
	Percent      int64
	LimitedUsage int64
	ExpireDate   time.Time
}

// コードが未指定だったときに提案として返す
type AddCouponOutput struct {
	GeneratedCode string `json:"generate_code,omitempty"`
	Coupon        model.Coupon
}

// AddCoupon はクーポンを作成する。
// コード未指定の場合は作成せず、生成したコードを提案として返す（400）。
func (u *CouponUsecase) AddCoupon(ctx context.Context, in CouponInput) (AddCouponOutput, error) {
	if in.LimitedUsage == 0 || in.ExpireDate.IsZero() {
		return AddCouponOutput{}, NewHTTPError(http.StatusBadRequest, "All fields are required")
	}

	code := strings.TrimSpace(in.CouponCode)
	if code != "" {
		_, found, err := u.couponRepo.FindByCode(ctx, code)
		if err != nil {
			return AddCouponOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if found {
			return AddCouponOutput{}, NewHTTPError(http.StatusBadRequest, "Coupon code already existed")
		}
	}

	if code == "" {
		return AddCouponOutput{GeneratedCode: generateCouponCode()},
			NewHTTPError(http.StatusBadRequest, "generate a coupon code")
	}

	if err := validateCoupon(in); err != nil {
		return AddCouponOutput{}, err
	}

	now := time.Now()
	coupon, err := u.couponRepo.Create(ctx, model.Coupon{
		CouponCode:   code,
		Percent:      in.Percent,
		LimitedUsage: in.LimitedUsage,
		ExpireDate:   in.ExpireDate,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return AddCouponOutput{}, NewHTTPError(http.StatusBadRequest, "Create coupon failed")
	}

	return AddCouponOutput{Coupon: coupon}, nil
}

func (u *CouponUsecase) GetCoupons(ctx context.Context) ([]model.Coupon, error) {
	coupons, err := u.couponRepo.List(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "Fail to get coupons")
	}
	return coupons, nil
}

func (u *CouponUsecase) GetCoupon(ctx context.Context, couponID int64) (model.Coupon, error) {
	coupon, err := u.couponRepo.FindByID(ctx, couponID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.Coupon{}, NewHTTPError(http.StatusBadRequest, "Can not fetch coupon info")
		}
		return model.Coupon{}, NewHTTPError(http.StatusInternalServerError, "Fail to get coupon")
	}
	return coupon, nil
}

func (u *CouponUsecase) EditCoupon(ctx context.Context, couponID int64, in CouponInput) error {
	coupon, err := u.couponRepo.FindByID(ctx, couponID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusBadRequest, "Coupon is not exist")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	code := strings.TrimSpace(in.CouponCode)
	if code == "" || in.LimitedUsage == 0 || in.ExpireDate.IsZero() {
		return NewHTTPError(http.StatusBadRequest, "All fields are required")
	}

	if err := validateCoupon(in); err != nil {
		return err
	}

	coupon.CouponCode = code
	coupon.Percent = in.Percent
	coupon.LimitedUsage = in.LimitedUsage
	coupon.ExpireDate = in.ExpireDate

	if err := u.couponRepo.Update(ctx, coupon); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "Not able to update coupon")
	}
	return nil
}

func (u *CouponUsecase) DeleteCoupon(ctx context.Context, couponID int64) error {
	if _, err := u.couponRepo.FindByID(ctx, couponID); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "Not able to delete coupon")
	}

	if err := u.couponRepo.Delete(ctx, couponID); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "Not able to delete coupon")
	}
	return nil
}

// 割引率・回数・期限の範囲チェック
func validateCoupon(in CouponInput) error {
	if in.Percent < 1 {
		return NewHTTPError(http.StatusBadRequest, "Percentage of discount must greater than 1")
	}
	if in.LimitedUsage < 1 {
		return NewHTTPError(http.StatusBadRequest, "Number of coupon usage at least to be 1")
	}
	if !in.ExpireDate.After(time.Now()) {
		return NewHTTPError(http.StatusBadRequest, "Expire date must more than the time from now")
	}
	return nil
}

func generateCouponCode() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(id[:9])
}
