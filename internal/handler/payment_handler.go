package handler

import (
	"net/http"
	"strconv"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/middleware"
	"app/internal/trade"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type PaymentHandler struct {
	uc *usecase.PaymentUsecase
}

func NewPaymentHandler(uc *usecase.PaymentUsecase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

type PaymentCreateResponse struct {
	Status      string        `json:"status"`
	Message     string        `json:"message"`
	TradeInfo   trade.Info    `json:"tradeInfo"`
	PaymentInfo model.Payment `json:"paymentInfo"`
}

func (h *PaymentHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/payments")
	g.Use(middleware.AuthJWT(cfg))

	g.POST("/:UserId/:OrderId", h.create)
}

func (h *PaymentHandler) create(c echo.Context) error {
	requesterID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, StatusResponse{Status: "error", Message: "unauthorized"})
	}

	userID, err := strconv.ParseInt(c.Param("UserId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, StatusResponse{Status: "error", Message: "invalid user id"})
	}
	orderID, err := strconv.ParseInt(c.Param("OrderId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, StatusResponse{Status: "error", Message: "invalid order id"})
	}

	out, err := h.uc.CreatePayment(c.Request().Context(), requesterID, userID, orderID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, PaymentCreateResponse{
		Status:      "success",
		Message:     "Create payment success",
		TradeInfo:   out.TradeInfo,
		PaymentInfo: out.Payment,
	})
}
