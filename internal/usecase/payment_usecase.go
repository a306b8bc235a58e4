package usecase

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/trade"
)

// 外部決済ゲートウェイ。取引シリアルの採番と取引情報の組み立てを担う。
type TradeGateway interface {
	GetTradeInfo(amount int64, orderID int64, email string) (trade.Info, error)
}

// 決済開始の通知を送る。本文の組み立ては呼び出し側の責務。
type Notifier interface {
	Notify(to string, subject string, body string) error
}

type PaymentUsecase struct {
	orders    repo.OrderRepository
	shippings repo.ShippingRepository
	payments  repo.PaymentRepository
	gateway   TradeGateway
	notifier  Notifier
}

func NewPaymentUsecase(
	orders repo.OrderRepository,
	shippings repo.ShippingRepository,
	payments repo.PaymentRepository,
	gateway TradeGateway,
	notifier Notifier,
) *PaymentUsecase {
	return &PaymentUsecase{
		orders:    orders,
		shippings: shippings,
		payments:  payments,
		gateway:   gateway,
		notifier:  notifier,
	}
}

type CreatePaymentOutput struct {
	TradeInfo trade.Info    `json:"trade_info"`
	Payment   model.Payment `json:"payment"`
}

// CreatePayment は確定済み注文の決済フローを開始する。
// 注文と物流に同じ取引シリアルを押し、未払いのPaymentを作って通知を送る。
// 下流の失敗はどれも一律500で返す（部分状態の保証はしない）。
func (u *PaymentUsecase) CreatePayment(ctx context.Context, requesterID int64, userID int64, orderID int64) (CreatePaymentOutput, error) {
	if requesterID != userID {
		return CreatePaymentOutput{}, NewHTTPError(http.StatusUnauthorized, "Can not find any user data")
	}

	order, err := u.orders.FindByID(ctx, orderID)
	if err != nil {
		return CreatePaymentOutput{}, NewHTTPError(http.StatusInternalServerError, "Something went wrong")
	}

	//他人の注文には決済を作らせない
	if order.UserID != requesterID {
		return CreatePaymentOutput{}, NewHTTPError(http.StatusUnauthorized, "Can not find any user data")
	}

	shipping, err := u.shippings.FindByOrderID(ctx, orderID)
	if err != nil {
		return CreatePaymentOutput{}, NewHTTPError(http.StatusInternalServerError, "Something went wrong")
	}

	info, err := u.gateway.GetTradeInfo(order.TotalAmount, order.ID, order.Email)
	if err != nil {
		return CreatePaymentOutput{}, NewHTTPError(http.StatusInternalServerError, "Something went wrong")
	}

	if err := u.orders.UpdateSN(ctx, order.ID, info.MerchantOrderNo); err != nil {
		return CreatePaymentOutput{}, NewHTTPError(http.StatusInternalServerError, "Something went wrong")
	}
	if err := u.shippings.UpdateSN(ctx, shipping.ID, info.MerchantOrderNo); err != nil {
		return CreatePaymentOutput{}, NewHTTPError(http.StatusInternalServerError, "Something went wrong")
	}

	now := time.Now()
	payment, err := u.payments.Create(ctx, model.Payment{
		OrderID:       order.ID,
		SN:            info.MerchantOrderNo,
		TotalAmount:   order.TotalAmount,
		PaymentStatus: model.PaymentStatusUnpaid,
		PaidAt:        &now,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		return CreatePaymentOutput{}, NewHTTPError(http.StatusInternalServerError, "Something went wrong")
	}

	subject := fmt.Sprintf("Order #%d payment created", order.ID)
	body := fmt.Sprintf(
		"Hi %s,\n\nA payment flow has been created for your order #%d (total %d). Please complete the payment.\n",
		order.Name, order.ID, order.TotalAmount,
	)
	if err := u.notifier.Notify(order.Email, subject, body); err != nil {
		return CreatePaymentOutput{}, NewHTTPError(http.StatusInternalServerError, "Something went wrong")
	}

	return CreatePaymentOutput{TradeInfo: info, Payment: payment}, nil
}
