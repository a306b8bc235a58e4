package handler

import (
	"net/http"
	"strconv"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /cartのHTTP。カートIDはセッションではなくURL/bodyで明示的に受け取る。
type CartHandler struct {
	uc *usecase.CartUsecase
}

// DI
func NewCartHandler(uc *usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

type AddCartRequest struct {
	CartID    int64 `json:"cart_id"`
	ProductID int64 `json:"product_id"`
	ColorID   int64 `json:"color_id"`
	Price     int64 `json:"price"`
}

type CartResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	usecase.CartOutput
}

func (h *CartHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/cart")

	g.GET("/:id", h.getCart)
	g.POST("", h.addToCart)
	g.POST("/:id/items/:itemId/add", h.addOne)
	g.POST("/:id/items/:itemId/sub", h.subOne)
	g.DELETE("/:id/items/:itemId", h.deleteItem)
}

func (h *CartHandler) getCart(c echo.Context) error {
	cartID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, StatusResponse{Status: "error", Message: "invalid id"})
	}

	out, err := h.uc.GetCart(c.Request().Context(), cartID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, CartResponse{
		Status:     "success",
		Message:    "Fetch cart data successfully",
		CartOutput: out,
	})
}

func (h *CartHandler) addToCart(c echo.Context) error {
	var req AddCartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, StatusResponse{Status: "error", Message: "invalid body"})
	}

	out, err := h.uc.AddToCart(c.Request().Context(), usecase.AddToCartInput{
		CartID:    req.CartID,
		ProductID: req.ProductID,
		ColorID:   req.ColorID,
		Price:     req.Price,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, CartResponse{
		Status:     "success",
		Message:    "Added to cart",
		CartOutput: out,
	})
}

func (h *CartHandler) addOne(c echo.Context) error {
	cartID, itemID, err := cartItemParams(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, StatusResponse{Status: "error", Message: "invalid id"})
	}

	out, uerr := h.uc.AddOne(c.Request().Context(), cartID, itemID)
	if uerr != nil {
		return writeError(c, uerr)
	}

	return c.JSON(http.StatusOK, CartResponse{
		Status:     "success",
		Message:    "Update cart successfully",
		CartOutput: out,
	})
}

func (h *CartHandler) subOne(c echo.Context) error {
	cartID, itemID, err := cartItemParams(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, StatusResponse{Status: "error", Message: "invalid id"})
	}

	out, uerr := h.uc.SubOne(c.Request().Context(), cartID, itemID)
	if uerr != nil {
		return writeError(c, uerr)
	}

	return c.JSON(http.StatusOK, CartResponse{
		Status:     "success",
		Message:    "Update cart successfully",
		CartOutput: out,
	})
}

func (h *CartHandler) deleteItem(c echo.Context) error {
	cartID, itemID, err := cartItemParams(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, StatusResponse{Status: "error", Message: "invalid id"})
	}

	if err := h.uc.DeleteItem(c.Request().Context(), cartID, itemID); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, StatusResponse{Status: "success", Message: "Removed item from cart"})
}

func cartItemParams(c echo.Context) (int64, int64, error) {
	cartID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, 0, err
	}
	itemID, err := strconv.ParseInt(c.Param("itemId"), 10, 64)
	if err != nil {
		return 0, 0, err
	}
	return cartID, itemID, nil
}
