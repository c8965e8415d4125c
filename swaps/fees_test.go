package swaps

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tideswap/tideswap/chain"
	"github.com/tideswap/tideswap/ethereum"
	"github.com/tideswap/tideswap/lightning"
	"go.uber.org/mock/gomock"
)

func TestFeeProvider_GetBaseFee(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	ctx := context.Background()

	chainClient := chain.NewMockClient(ctrl)
	provider := ethereum.NewMockProvider(ctrl)

	fees := NewFeeProvider()

	btc := &Currency{
		Symbol:  "BTC",
		Kind:    CurrencyBitcoinLike,
		Network: lightning.Regtest,
		Chain:   chainClient,
	}

	chainClient.EXPECT().EstimateFee(ctx, int32(2)).Return(2.0, nil).Times(3)

	tests := []struct {
		feeType BaseFeeType
		want    uint64
	}{
		{BaseFeeNormalClaim, 340},
		{BaseFeeReverseLockup, 306},
		{BaseFeeReverseClaim, 276},
	}
	for _, tt := range tests {
		got, err := fees.GetBaseFee(ctx, btc, tt.feeType)
		require.NoError(t, err)
		require.Equal(t, tt.want, got)
	}

	eth := &Currency{
		Symbol:   "ETH",
		Kind:     CurrencyEther,
		Provider: provider,
	}

	// 20 gwei * 24924 gas = 498480 gwei = 49848 in 10^-8 coin units.
	gasPrice, ok := new(big.Int).SetString("20000000000", 10)
	require.True(t, ok)
	provider.EXPECT().SuggestGasPrice(ctx).Return(gasPrice, nil)

	got, err := fees.GetBaseFee(ctx, eth, BaseFeeNormalClaim)
	require.NoError(t, err)
	require.Equal(t, uint64(49_848), got)
}

func TestFeeProvider_GetFees(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	ctx := context.Background()

	chainClient := chain.NewMockClient(ctrl)

	fees := NewFeeProvider()
	fees.Init([]*Pair{btcBtcPair(0.02)})

	require.Equal(t, 0.02, fees.GetPercentageFee("BTC/BTC"))
	require.Zero(t, fees.GetPercentageFee("DOGE/BTC"))

	btc := &Currency{
		Symbol:  "BTC",
		Kind:    CurrencyBitcoinLike,
		Network: lightning.Regtest,
		Chain:   chainClient,
	}

	chainClient.EXPECT().EstimateFee(ctx, int32(2)).Return(2.0, nil)

	baseFee, percentageFee, err := fees.GetFees(ctx, "BTC/BTC", 1, btc, 100_000, BaseFeeNormalClaim)
	require.NoError(t, err)
	require.Equal(t, uint64(340), baseFee)
	require.Equal(t, uint64(2_000), percentageFee)
}
