package swaps

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tideswap/tideswap/database/models"
)

func TestTimeoutDeltaProvider(t *testing.T) {
	provider := NewTimeoutDeltaProvider(nil)

	require.NoError(t, provider.Init([]*Pair{
		{Base: "LTC", Quote: "BTC", TimeoutDeltaMinutes: 60},
	}))

	// 60 minutes are 24 LTC blocks and 6 BTC blocks.
	forward, err := provider.GetTimeout("LTC/BTC", models.OrderSideBuy, false)
	require.NoError(t, err)
	require.Equal(t, uint32(6), forward)

	reverse, err := provider.GetTimeout("LTC/BTC", models.OrderSideBuy, true)
	require.NoError(t, err)
	require.Equal(t, uint32(24), reverse)

	_, err = provider.GetTimeout("DOGE/BTC", models.OrderSideBuy, false)
	requireErrorCode(t, err, CodePairNotFound)
}

func TestTimeoutDeltaProvider_RejectsFractionalBlocks(t *testing.T) {
	provider := NewTimeoutDeltaProvider(nil)

	// 25 minutes are 2.5 BTC blocks.
	err := provider.SetTimeout("BTC/BTC", 25)
	require.Error(t, err)
}

func TestTimeoutDeltaProvider_ConvertBlocks(t *testing.T) {
	provider := NewTimeoutDeltaProvider(nil)

	sameChain, err := provider.ConvertBlocks("BTC", "BTC", 6)
	require.NoError(t, err)
	require.Equal(t, uint32(6), sameChain)

	crossChain, err := provider.ConvertBlocks("LTC", "BTC", 24)
	require.NoError(t, err)
	require.Equal(t, uint32(6), crossChain)

	// Rounded up when the block times do not divide evenly.
	rounded, err := provider.ConvertBlocks("LTC", "BTC", 25)
	require.NoError(t, err)
	require.Equal(t, uint32(7), rounded)
}

func TestTimeoutDeltaProvider_TokenChains(t *testing.T) {
	provider := NewTimeoutDeltaProvider(map[string]string{"USDT": "ETH"})

	// One hour of USDT timeout counts in ETH blocks.
	blocks, err := provider.minutesToBlocks("USDT", 60)
	require.NoError(t, err)
	require.Equal(t, uint32(300), blocks)
}

func TestCalculateTimeoutDate(t *testing.T) {
	now := time.Date(2023, 10, 1, 0, 0, 0, 0, time.UTC)

	eta, err := CalculateTimeoutDate("BTC", 10, now)
	require.NoError(t, err)
	require.Equal(t, now.Unix()+10*10*60, eta)

	eta, err = CalculateTimeoutDate("LTC", 4, now)
	require.NoError(t, err)
	require.Equal(t, now.Unix()+600, eta)

	_, err = CalculateTimeoutDate("DOGE", 1, now)
	require.Error(t, err)
}
