package usecase

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// 1明細も成立しなかった（注文は削除済み）。例外ではなく設計上の結果。
var ErrOrderRejected = errors.New("order rejected")

// 在庫チェックが詰まったとき明細単位で打ち切るまでの時間
const defaultLineTimeout = 5 * time.Second

type OrderUsecase struct {
	tx          repo.TransactionManager
	carts       repo.CartRepository
	cartItems   repo.CartItemRepository
	orders      repo.OrderRepository
	orderItems  repo.OrderItemRepository
	shippings   repo.ShippingRepository
	users       repo.UserRepository
	lineTimeout time.Duration
}

func NewOrderUsecase(
	tx repo.TransactionManager,
	carts repo.CartRepository,
	cartItems repo.CartItemRepository,
	orders repo.OrderRepository,
	orderItems repo.OrderItemRepository,
	shippings repo.ShippingRepository,
	users repo.UserRepository,
) *OrderUsecase {
	return &OrderUsecase{
		tx:          tx,
		carts:       carts,
		cartItems:   cartItems,
		orders:      orders,
		orderItems:  orderItems,
		shippings:   shippings,
		users:       users,
		lineTimeout: defaultLineTimeout,
	}
}

// SetLineTimeout は明細単位の引当の打ち切り時間を差し替える
func (u *OrderUsecase) SetLineTimeout(d time.Duration) {
	u.lineTimeout = d
}

type CreateOrderInput struct {
	CartID int64
	UserID int64
}

type OrderLineOutput struct {
	ProductID int64 `json:"product_id"`
	ColorID   int64 `json:"color_id"`
	Price     int64 `json:"price"`
	Quantity  int64 `json:"quantity"`
	Fulfilled bool  `json:"fulfilled"`
}

type CreateOrderOutput struct {
	OrderID     int64             `json:"order_id"`
	TotalAmount int64             `json:"total_amount"`
	Lines       []OrderLineOutput `json:"lines"`
}

type OrderItemOutput struct {
	ProductID int64 `json:"product_id"`
	ColorID   int64 `json:"color_id"`
	Price     int64 `json:"price"`
	Quantity  int64 `json:"quantity"`
}

type OrderOutput struct {
	ID             int64             `json:"id"`
	UserID         int64             `json:"user_id"`
	OrderStatus    string            `json:"order_status"`
	ShippingStatus string            `json:"shipping_status"`
	PaymentStatus  string            `json:"payment_status"`
	TotalAmount    int64             `json:"total_amount"`
	CreatedAt      time.Time         `json:"created_at"`
	Items          []OrderItemOutput `json:"items"`
}

// CreateOrder はカートのスナップショットから注文を組み立てる。
// 明細ごとに独立して引当を試み、1件でも成立すれば部分成立の注文になる。
// 1件も成立しなければ注文行を消してErrOrderRejectedを返す。
func (u *OrderUsecase) CreateOrder(ctx context.Context, requesterID int64, in CreateOrderInput) (CreateOrderOutput, error) {
	//本人以外は注文できない
	if requesterID != in.UserID {
		return CreateOrderOutput{}, NewHTTPError(http.StatusUnauthorized, "Can not find any user data")
	}
	if in.CartID <= 0 || in.UserID <= 0 {
		return CreateOrderOutput{}, NewHTTPError(http.StatusBadRequest, "required field didn't exist")
	}

	//カートスナップショット（ロックしない。引当時に在庫側で最終判定する）
	if _, err := u.carts.FindByID(ctx, in.CartID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return CreateOrderOutput{}, NewHTTPError(http.StatusBadRequest, "cart not found")
		}
		return CreateOrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	snapshot, err := u.cartItems.ListByCartID(ctx, in.CartID)
	if err != nil {
		return CreateOrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//配送先はユーザーの現在値をコピーして固定する
	user, err := u.users.FindByID(ctx, in.UserID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return CreateOrderOutput{}, NewHTTPError(http.StatusBadRequest, "user not found")
		}
		return CreateOrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	now := time.Now()
	orderID, err := u.orders.Create(ctx, model.Order{
		UserID:         user.ID,
		OrderStatus:    model.OrderStatusProcessing,
		ShippingStatus: model.ShippingStatusUnshipped,
		PaymentStatus:  model.PaymentStatusUnpaid,
		TotalAmount:    0,
		Name:           user.Name,
		Address:        user.Address,
		Email:          user.Email,
		Phone:          user.Tel,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		return CreateOrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//明細ごとに独立して引当。確定は全試行が終わってから
	results := make([]bool, len(snapshot))
	var wg sync.WaitGroup
	for i, ci := range snapshot {
		wg.Add(1)
		go func(i int, ci model.CartItem) {
			defer wg.Done()
			results[i] = u.fulfillLine(ctx, orderID, ci)
		}(i, ci)
	}
	wg.Wait()

	var total int64
	fulfilled := 0
	lines := make([]OrderLineOutput, 0, len(snapshot))
	for i, ci := range snapshot {
		if results[i] {
			fulfilled++
			total += ci.Price * ci.Quantity
		}
		lines = append(lines, OrderLineOutput{
			ProductID: ci.ProductID,
			ColorID:   ci.ColorID,
			Price:     ci.Price,
			Quantity:  ci.Quantity,
			Fulfilled: results[i],
		})
	}

	//空カート、または全滅なら注文行を消す
	if fulfilled == 0 {
		if err := u.orders.Delete(ctx, orderID); err != nil {
			return CreateOrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return CreateOrderOutput{}, ErrOrderRejected
	}

	//成立した注文には物流レコードを起こす（決済作成時にSNが押される）
	if _, err := u.shippings.Create(ctx, model.Shipping{
		OrderID:        orderID,
		Name:           user.Name,
		Address:        user.Address,
		Phone:          user.Tel,
		ShippingStatus: model.ShippingStatusUnshipped,
		CreatedAt:      now,
		UpdatedAt:      now,
	}); err != nil {
		return CreateOrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return CreateOrderOutput{
		OrderID:     orderID,
		TotalAmount: total,
		Lines:       lines,
	}, nil
}

// fulfillLine は1明細分の引当を1トランザクションで行う。
// 在庫減算・明細作成・カート明細削除・合計加算が全部成立するか、何も残らないか。
func (u *OrderUsecase) fulfillLine(ctx context.Context, orderID int64, ci model.CartItem) bool {
	ctx, cancel := context.WithTimeout(ctx, u.lineTimeout)
	defer cancel()

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if _, err := r.Inventory().DecrementIfAvailable(ctx, ci.ProductID, ci.ColorID, ci.Quantity); err != nil {
			return err
		}

		if err := r.OrderItems().Create(ctx, model.OrderItem{
			OrderID:   orderID,
			ProductID: ci.ProductID,
			ColorID:   ci.ColorID,
			Price:     ci.Price,
			Quantity:  ci.Quantity,
			CreatedAt: time.Now(),
		}); err != nil {
			return err
		}

		//成立した明細はカートから消費する
		if err := r.CartItems().DeleteByCartProductColor(ctx, ci.CartID, ci.ProductID, ci.ColorID); err != nil {
			return err
		}

		return r.Orders().AddToTotal(ctx, orderID, ci.Price*ci.Quantity)
	})

	//在庫不足・在庫行なし・タイムアウトはどれも「この明細は不成立」扱い
	return err == nil
}

// GetOrders は本人の未払い注文を明細つきで返す。0件はエラーではない。
func (u *OrderUsecase) GetOrders(ctx context.Context, requesterID int64, userID int64) ([]OrderOutput, error) {
	if requesterID != userID {
		return nil, NewHTTPError(http.StatusUnauthorized, "Can not find any user data")
	}

	orders, err := u.orders.ListUnpaidByUserID(ctx, userID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	outs := make([]OrderOutput, 0, len(orders))
	for _, o := range orders {
		items, err := u.orderItems.ListByOrderID(ctx, o.ID)
		if err != nil {
			return nil, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		outs = append(outs, toOrderOutput(o, items))
	}
	return outs, nil
}

func toOrderOutput(o model.Order, items []model.OrderItem) OrderOutput {
	outItems := make([]OrderItemOutput, 0, len(items))
	for _, it := range items {
		outItems = append(outItems, OrderItemOutput{
			ProductID: it.ProductID,
			ColorID:   it.ColorID,
			Price:     it.Price,
			Quantity:  it.Quantity,
		})
	}

	return OrderOutput{
		ID:             o.ID,
		UserID:         o.UserID,
		OrderStatus:    string(o.OrderStatus),
		ShippingStatus: string(o.ShippingStatus),
		PaymentStatus:  string(o.PaymentStatus),
		TotalAmount:    o.TotalAmount,
		CreatedAt:      o.CreatedAt,
		Items:          outItems,
	}
}
