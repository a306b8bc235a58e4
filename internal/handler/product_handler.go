package handler

import (
	"net/http"
	"strconv"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// APIの共通レスポンス形
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, StatusResponse{Status: "error", Message: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, StatusResponse{Status: "error", Message: "internal error"})
}

// /products の公開API
type ProductHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// 公開商品のルートを登録
func (h *ProductHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/products", h.list)
	e.GET("/products/home", h.home)
	e.GET("/products/:id", h.detail)
}

type HomeProductsResponse struct {
	Status   string                      `json:"status"`
	Products []usecase.HomeProductOutput `json:"products"`
}

type ProductListResponse struct {
	Status string `json:"status"`
	usecase.ListProductsOutput
}

type ProductDetailResponse struct {
	Status string `json:"status"`
	usecase.ProductDetailOutput
}

func (h *ProductHandler) home(c echo.Context) error {
	out, err := h.uc.GetHomeProducts(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, HomeProductsResponse{Status: "success", Products: out})
}

func (h *ProductHandler) list(c echo.Context) error {
	// page（default 1）
	page := 1
	if v := c.QueryParam("page"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, StatusResponse{Status: "error", Message: "invalid page"})
		}
		page = p
	}

	//カテゴリ絞り込み
	var categoryID *int64
	if v := c.QueryParam("categoryId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, StatusResponse{Status: "error", Message: "invalid categoryId"})
		}
		categoryID = &id
	}

	out, err := h.uc.ListProducts(c.Request().Context(), usecase.ListProductsInput{
		Page:       page,
		CategoryID: categoryID,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, ProductListResponse{Status: "success", ListProductsOutput: out})
}

func (h *ProductHandler) detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, StatusResponse{Status: "error", Message: "invalid id"})
	}

	out, err := h.uc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, ProductDetailResponse{Status: "success", ProductDetailOutput: out})
}
