package trade_test

import (
	"strings"
	"testing"

	"app/internal/trade"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGateway_GetTradeInfo(t *testing.T) {
	g := trade.NewGateway("MS12345")

	info, err := g.GetTradeInfo(300, 1, "hanako@example.com")
	require.NoError(t, err)

	assert.Equal(t, "MS12345", info.MerchantID)
	assert.Equal(t, int64(300), info.TotalAmount)
	assert.Equal(t, int64(1), info.OrderID)
	assert.Equal(t, "hanako@example.com", info.Email)
	assert.NotZero(t, info.CreatedAt)

	//シリアルはMSプレフィックス+時刻+乱数
	assert.True(t, strings.HasPrefix(info.MerchantOrderNo, "MS"))
	assert.Equal(t, strings.ToUpper(info.MerchantOrderNo), info.MerchantOrderNo)
}

func TestGateway_GetTradeInfo_InvalidAmount(t *testing.T) {
	g := trade.NewGateway("MS12345")

	_, err := g.GetTradeInfo(0, 1, "hanako@example.com")
	assert.Error(t, err)

	_, err = g.GetTradeInfo(-100, 1, "hanako@example.com")
	assert.Error(t, err)
}

// 連続採番でシリアルが衝突しない
func TestGateway_MerchantOrderNoUnique(t *testing.T) {
	g := trade.NewGateway("MS12345")

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		info, err := g.GetTradeInfo(100, int64(i+1), "hanako@example.com")
		require.NoError(t, err)
		assert.False(t, seen[info.MerchantOrderNo])
		seen[info.MerchantOrderNo] = true
	}
}
