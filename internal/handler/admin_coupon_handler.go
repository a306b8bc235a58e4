package handler

import (
	"net/http"
	"strconv"
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /admin/coupons のHTTP。ADMINロールだけが触れる。
type AdminCouponHandler struct {
	uc *usecase.CouponUsecase
}

func NewAdminCouponHandler(uc *usecase.CouponUsecase) *AdminCouponHandler {
	return &AdminCouponHandler{uc: uc}
}

// bodyのフィールド名は既存クライアントに合わせる
type CouponRequest struct {
	CouponCode   string `json:"couponCode"`
	Percent      int64  `json:"percent"`
	LimitedUsage int64  `json:"limitedUsage"`
	ExpireDate   string `json:"expireDate"`
}

type CouponCreateResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message"`
	GenerateCode string `json:"generateCode,omitempty"`
}

type CouponListResponse struct {
	Status  string         `json:"status"`
	Message string         `json:"message"`
	Coupons []model.Coupon `json:"coupons"`
}

type CouponDetailResponse struct {
	Status string       `json:"status"`
	Coupon model.Coupon `json:"coupon"`
}

func (h *AdminCouponHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/admin/coupons")
	g.Use(middleware.AuthJWT(cfg))
	g.Use(middleware.AdminRoleGuard())

	g.POST("", h.create)
	g.GET("", h.list)
	g.GET("/:id", h.detail)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.remove)
}

func (h *AdminCouponHandler) create(c echo.Context) error {
	var req CouponRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, StatusResponse{Status: "error", Message: "invalid body"})
	}

	in, err := toCouponInput(req)
	if err != nil {
		return c.JSON(http.StatusBadRequest, StatusResponse{Status: "error", Message: "invalid expireDate"})
	}

	out, uerr := h.uc.AddCoupon(c.Request().Context(), in)
	if uerr != nil {
		//コード未指定のときは生成したコードを提案として返す
		if out.GeneratedCode != "" {
			if he, ok := usecase.AsHTTPError(uerr); ok {
				return c.JSON(he.Status, CouponCreateResponse{
					Status:       "error",
					Message:      he.Message,
					GenerateCode: out.GeneratedCode,
				})
			}
		}
		return writeError(c, uerr)
	}

	return c.JSON(http.StatusOK, StatusResponse{Status: "success", Message: "Created coupon successfully"})
}

func (h *AdminCouponHandler) list(c echo.Context) error {
	coupons, err := h.uc.GetCoupons(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, CouponListResponse{
		Status:  "success",
		Message: "Got all coupons",
		Coupons: coupons,
	})
}

func (h *AdminCouponHandler) detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, StatusResponse{Status: "error", Message: "invalid id"})
	}

	coupon, uerr := h.uc.GetCoupon(c.Request().Context(), id)
	if uerr != nil {
		return writeError(c, uerr)
	}

	return c.JSON(http.StatusOK, CouponDetailResponse{Status: "success", Coupon: coupon})
}

func (h *AdminCouponHandler) update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, StatusResponse{Status: "error", Message: "invalid id"})
	}

	var req CouponRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, StatusResponse{Status: "error", Message: "invalid body"})
	}

	in, err := toCouponInput(req)
	if err != nil {
		return c.JSON(http.StatusBadRequest, StatusResponse{Status: "error", Message: "invalid expireDate"})
	}

	if uerr := h.uc.EditCoupon(c.Request().Context(), id, in); uerr != nil {
		return writeError(c, uerr)
	}

	return c.JSON(http.StatusOK, StatusResponse{Status: "success", Message: "Updated coupon data successfully"})
}

func (h *AdminCouponHandler) remove(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, StatusResponse{Status: "error", Message: "invalid id"})
	}

	if uerr := h.uc.DeleteCoupon(c.Request().Context(), id); uerr != nil {
		return writeError(c, uerr)
	}

	return c.JSON(http.StatusOK, StatusResponse{Status: "success", Message: "Delete coupon successfully"})
}

func toCouponInput(req CouponRequest) (usecase.CouponInput, error) {
	in := usecase.CouponInput{
		CouponCode:   req.CouponCode,
		Percent:      req.Percent,
		LimitedUsage: req.LimitedUsage,
	}

	if req.ExpireDate == "" {
		return in, nil
	}

	//RFC3339か日付だけのどちらかを受ける
	if t, err := time.Parse(time.RFC3339, req.ExpireDate); err == nil {
		in.ExpireDate = t
		return in, nil
	}
	t, err := time.Parse("2006-01-02", req.ExpireDate)
	if err != nil {
		return usecase.CouponInput{}, err
	}
	in.ExpireDate = t
	return in, nil
}
