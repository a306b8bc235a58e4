package trade

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// 決済ゲートウェイへ渡す取引情報。
type Info struct {
	MerchantID      string `json:"merchant_id"`
	MerchantOrderNo string `json:"merchant_order_no"`
	TotalAmount     int64  `json:"total_amount"`
	OrderID         int64  `json:"order_id"`
	Email           string `json:"email"`
	CreatedAt       int64  `json:"created_at"`
}

type Gateway struct {
	merchantID string
}

func NewGateway(merchantID string) *Gateway {
	return &Gateway{merchantID: merchantID}
}

// 取引シリアル番号を採番して取引情報を組み立てる。
// シリアルは注文・物流・決済の3レコードに同じ値が押される。
func (g *Gateway) GetTradeInfo(amount int64, orderID int64, email string) (Info, error) {
	if amount <= 0 {
		return Info{}, fmt.Errorf("invalid amount: %d", amount)
	}

	now := time.Now()
	sn := merchantOrderNo(now)

	return Info{
		MerchantID:      g.merchantID,
		MerchantOrderNo: sn,
		TotalAmount:     amount,
		OrderID:         orderID,
		Email:           email,
		CreatedAt:       now.Unix(),
	}, nil
}

// 時刻+乱数で衝突しないシリアルを作る
func merchantOrderNo(now time.Time) string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("MS%d%s", now.Unix(), strings.ToUpper(id[:8]))
}
