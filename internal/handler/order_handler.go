package handler

import (
	"errors"
	"net/http"
	"strconv"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// bodyのフィールド名は既存クライアントに合わせる
type OrderCreateRequest struct {
	CartID int64 `json:"CartId"`
	UserID int64 `json:"UserId"`
}

type OrderCreateResponse struct {
	Status  string                     `json:"status"`
	Message string                     `json:"message"`
	Order   *usecase.CreateOrderOutput `json:"order,omitempty"`
}

type OrderListResponse struct {
	Status  string                `json:"status"`
	Message string                `json:"message,omitempty"`
	Orders  []usecase.OrderOutput `json:"orders,omitempty"`
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/orders")
	g.Use(middleware.AuthJWT(cfg))

	g.POST("", h.create)
	g.GET("/:id", h.list)
}

func (h *OrderHandler) create(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, StatusResponse{Status: "error", Message: "unauthorized"})
	}

	var req OrderCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, StatusResponse{Status: "error", Message: "invalid body"})
	}

	out, err := h.uc.CreateOrder(c.Request().Context(), userID, usecase.CreateOrderInput{
		CartID: req.CartID,
		UserID: req.UserID,
	})

	//全明細不成立は例外ではなく結果。200で返す
	if errors.Is(err, usecase.ErrOrderRejected) {
		return c.JSON(http.StatusOK, StatusResponse{Status: "error", Message: "Create order fail"})
	}
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, OrderCreateResponse{
		Status:  "success",
		Message: "Create order success",
		Order:   &out,
	})
}

// :idはユーザーID。本人の未払い注文を返す
func (h *OrderHandler) list(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, StatusResponse{Status: "error", Message: "unauthorized"})
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, StatusResponse{Status: "error", Message: "invalid id"})
	}

	out, err := h.uc.GetOrders(c.Request().Context(), userID, id)
	if err != nil {
		return writeError(c, err)
	}

	if len(out) == 0 {
		return c.JSON(http.StatusOK, OrderListResponse{
			Status:  "success",
			Message: "Nothing in your order list",
		})
	}

	return c.JSON(http.StatusOK, OrderListResponse{Status: "success", Orders: out})
}

//middleware.AuthJWT が c.Set("user_id", int64) した値を取り出す
func getUserIDFromContext(c echo.Context) (int64, bool) {
	v := c.Get(middleware.CtxUserIDKey)
	if v == nil {
		return 0, false
	}

	id, ok := v.(int64)
	if !ok {
		return 0, false
	}

	return id, true
}
