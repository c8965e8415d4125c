package swaps

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tideswap/tideswap/database/models"
)

func TestSplitPairID(t *testing.T) {
	base, quote, err := SplitPairID("LTC/BTC")
	require.NoError(t, err)
	require.Equal(t, "LTC", base)
	require.Equal(t, "BTC", quote)

	for _, invalid := range []string{"", "BTC", "BTC/", "/BTC", "A/B/C"} {
		_, _, err := SplitPairID(invalid)
		require.Error(t, err, invalid)
	}
}

func TestParseOrderSide(t *testing.T) {
	for input, want := range map[string]models.OrderSide{
		"buy":  models.OrderSideBuy,
		"BUY":  models.OrderSideBuy,
		"Sell": models.OrderSideSell,
		"sell": models.OrderSideSell,
	} {
		side, err := ParseOrderSide(input)
		require.NoError(t, err)
		require.Equal(t, want, side)
	}

	_, err := ParseOrderSide("hodl")
	requireErrorCode(t, err, CodeOrderSideNotFound)
}

func TestCurrencyResolution(t *testing.T) {
	tests := []struct {
		name      string
		side      models.OrderSide
		isReverse bool

		chain     string
		lightning string
	}{
		{name: "forward buy", side: models.OrderSideBuy, chain: "BTC", lightning: "LTC"},
		{name: "forward sell", side: models.OrderSideSell, chain: "LTC", lightning: "BTC"},
		{name: "reverse buy", side: models.OrderSideBuy, isReverse: true, chain: "LTC", lightning: "BTC"},
		{name: "reverse sell", side: models.OrderSideSell, isReverse: true, chain: "BTC", lightning: "LTC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.chain, GetChainCurrency("LTC", "BTC", tt.side, tt.isReverse))
			require.Equal(t, tt.lightning, GetLightningCurrency("LTC", "BTC", tt.side, tt.isReverse))
		})
	}

	sending, receiving := GetSendingReceivingCurrency("LTC", "BTC", models.OrderSideBuy)
	require.Equal(t, "LTC", sending)
	require.Equal(t, "BTC", receiving)

	sending, receiving = GetSendingReceivingCurrency("LTC", "BTC", models.OrderSideSell)
	require.Equal(t, "BTC", sending)
	require.Equal(t, "LTC", receiving)
}

func TestGetRate(t *testing.T) {
	require.Equal(t, 0.004, GetRate(0.004, models.OrderSideBuy, false))
	require.Equal(t, 250.0, GetRate(0.004, models.OrderSideSell, false))
	require.Equal(t, 250.0, GetRate(0.004, models.OrderSideBuy, true))
	require.Equal(t, 0.004, GetRate(0.004, models.OrderSideSell, true))
}

func TestPairRegistry_AddIsInsertOnly(t *testing.T) {
	registry := NewPairRegistry()

	first := &Pair{Base: "BTC", Quote: "BTC", Rate: 1}
	registry.Add(first)

	// A second pair with the same id must not replace the first.
	registry.Add(&Pair{Base: "BTC", Quote: "BTC", Rate: 2})

	pair, ok := registry.Get("BTC/BTC")
	require.True(t, ok)
	require.Same(t, first, pair)
	require.Len(t, registry.All(), 1)
}
