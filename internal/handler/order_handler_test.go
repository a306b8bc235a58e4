package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"app/internal/domain/model"
	"app/internal/middleware"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// handler経由の応答形を確認するための固定データのフェイク。
// cart 1にはitem 1件（product 1, color 1, qty 3, price 100）が入っていて、
// 在庫はstockフィールドで制御する。
type orderFake struct {
	stock int64

	createdOrder *model.Order
	deleted      bool
	unpaid       []model.Order
}

func (f *orderFake) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(f)
}

func (f *orderFake) Orders() repo.OrderRepository         { return f }
func (f *orderFake) OrderItems() repo.OrderItemRepository { return orderItemAdapter{f} }
func (f *orderFake) CartItems() repo.CartItemRepository   { return cartItemAdapter{f} }
func (f *orderFake) Inventory() repo.InventoryRepository  { return f }

func (f *orderFake) Create(ctx context.Context, order model.Order) (int64, error) {
	order.ID = 1
	f.createdOrder = &order
	return 1, nil
}

func (f *orderFake) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	if f.createdOrder == nil {
		return model.Order{}, repo.ErrNotFound
	}
	return *f.createdOrder, nil
}

func (f *orderFake) Delete(ctx context.Context, orderID int64) error {
	f.deleted = true
	return nil
}

func (f *orderFake) AddToTotal(ctx context.Context, orderID int64, delta int64) error {
	f.createdOrder.TotalAmount += delta
	return nil
}

func (f *orderFake) UpdateSN(ctx context.Context, orderID int64, sn string) error { return nil }

func (f *orderFake) ListUnpaidByUserID(ctx context.Context, userID int64) ([]model.Order, error) {
	return f.unpaid, nil
}

func (f *orderFake) CreateItem(ctx context.Context, item model.OrderItem) error { return nil }

func (f *orderFake) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	return nil, nil
}

func (f *orderFake) ListByCartID(ctx context.Context, cartID int64) ([]model.CartItem, error) {
	return []model.CartItem{{ID: 1, CartID: cartID, ProductID: 1, ColorID: 1, Quantity: 3, Price: 100}}, nil
}

func (f *orderFake) FindCartItemByID(ctx context.Context, cartItemID int64) (model.CartItem, error) {
	return model.CartItem{}, repo.ErrNotFound
}

func (f *orderFake) UpsertAddOne(ctx context.Context, cartID, productID, colorID, price int64) error {
	return nil
}

func (f *orderFake) UpdateQuantity(ctx context.Context, cartItemID int64, qty int64) error {
	return nil
}

func (f *orderFake) DeleteByID(ctx context.Context, cartItemID int64) error { return nil }

func (f *orderFake) DeleteByCartProductColor(ctx context.Context, cartID, productID, colorID int64) error {
	return nil
}

func (f *orderFake) DecrementIfAvailable(ctx context.Context, productID, colorID, qty int64) (int64, error) {
	if f.stock <= qty {
		return 0, repo.ErrInsufficientStock
	}
	f.stock -= qty
	return f.stock, nil
}

func (f *orderFake) FindByProductAndColor(ctx context.Context, productID, colorID int64) (model.Inventory, error) {
	return model.Inventory{ProductID: productID, ColorID: colorID, Quantity: f.stock}, nil
}

func (f *orderFake) ListByProductID(ctx context.Context, productID int64) ([]model.Inventory, error) {
	return nil, nil
}

type fakeCartRepo struct{}

func (fakeCartRepo) Create(ctx context.Context) (model.Cart, error) {
	return model.Cart{ID: 1}, nil
}

func (fakeCartRepo) FindByID(ctx context.Context, cartID int64) (model.Cart, error) {
	return model.Cart{ID: cartID}, nil
}

type fakeUserRepo struct{}

func (fakeUserRepo) FindByID(ctx context.Context, userID int64) (model.User, error) {
	return model.User{ID: userID, Name: "hanako", Email: "hanako@example.com", Address: "Tokyo"}, nil
}

type cartItemAdapter struct{ *orderFake }

func (a cartItemAdapter) FindByID(ctx context.Context, cartItemID int64) (model.CartItem, error) {
	return a.FindCartItemByID(ctx, cartItemID)
}

type orderItemAdapter struct{ *orderFake }

func (a orderItemAdapter) Create(ctx context.Context, item model.OrderItem) error {
	return a.CreateItem(ctx, item)
}

type fakeShippingRepo struct{}

func (fakeShippingRepo) Create(ctx context.Context, shipping model.Shipping) (model.Shipping, error) {
	shipping.ID = 1
	return shipping, nil
}

func (fakeShippingRepo) FindByOrderID(ctx context.Context, orderID int64) (model.Shipping, error) {
	return model.Shipping{ID: 1, OrderID: orderID}, nil
}

func (fakeShippingRepo) UpdateSN(ctx context.Context, shippingID int64, sn string) error {
	return nil
}

func newOrderHandler(f *orderFake) *OrderHandler {
	uc := usecase.NewOrderUsecase(f, fakeCartRepo{}, cartItemAdapter{f}, f, orderItemAdapter{f}, fakeShippingRepo{}, fakeUserRepo{})
	return NewOrderHandler(uc)
}

func doRequest(method, target, body string, userID int64, fn func(c echo.Context) error) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID > 0 {
		c.Set(middleware.CtxUserIDKey, userID)
	}
	_ = fn(c)
	return rec
}

func TestOrderHandler_Create_Success(t *testing.T) {
	f := &orderFake{stock: 5}
	h := newOrderHandler(f)

	body := `{"CartId":1,"UserId":9}`
	rec := doRequest(http.MethodPost, "/orders", body, 9, func(c echo.Context) error {
		return h.create(c)
	})

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp OrderCreateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "Create order success", resp.Message)
	require.NotNil(t, resp.Order)
	assert.Equal(t, int64(300), resp.Order.TotalAmount)
}

// 全明細不成立でも200。statusがerrorになる
func TestOrderHandler_Create_Rejected(t *testing.T) {
	f := &orderFake{stock: 2}
	h := newOrderHandler(f)

	body := `{"CartId":1,"UserId":9}`
	rec := doRequest(http.MethodPost, "/orders", body, 9, func(c echo.Context) error {
		return h.create(c)
	})

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "Create order fail", resp.Message)
	assert.True(t, f.deleted)
}

// 本人以外のUserIdは401
func TestOrderHandler_Create_WrongUser(t *testing.T) {
	f := &orderFake{stock: 5}
	h := newOrderHandler(f)

	body := `{"CartId":1,"UserId":8}`
	rec := doRequest(http.MethodPost, "/orders", body, 9, func(c echo.Context) error {
		return h.create(c)
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "Can not find any user data", resp.Message)
}

func TestOrderHandler_Create_NoAuthContext(t *testing.T) {
	f := &orderFake{stock: 5}
	h := newOrderHandler(f)

	rec := doRequest(http.MethodPost, "/orders", `{"CartId":1,"UserId":9}`, 0, func(c echo.Context) error {
		return h.create(c)
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOrderHandler_List_Empty(t *testing.T) {
	f := &orderFake{}
	h := newOrderHandler(f)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/orders/9", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("9")
	c.Set(middleware.CtxUserIDKey, int64(9))

	require.NoError(t, h.list(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp OrderListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "Nothing in your order list", resp.Message)
	assert.Empty(t, resp.Orders)
}

func TestOrderHandler_List_ReturnsUnpaid(t *testing.T) {
	f := &orderFake{unpaid: []model.Order{
		{ID: 1, UserID: 9, PaymentStatus: model.PaymentStatusUnpaid, TotalAmount: 300},
	}}
	h := newOrderHandler(f)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/orders/9", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("9")
	c.Set(middleware.CtxUserIDKey, int64(9))

	require.NoError(t, h.list(c))

	var resp OrderListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	require.Len(t, resp.Orders, 1)
	assert.Equal(t, int64(300), resp.Orders[0].TotalAmount)
}
