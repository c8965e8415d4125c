package swaps

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/tideswap/tideswap/database/models"
)

func TestCalculateInvoiceAmount(t *testing.T) {
	// rate 1: floor((100002 - 1) / 1.00001)
	amount := CalculateInvoiceAmount(models.OrderSideBuy, 1, 100_002, 1, 0.00001)
	require.Equal(t, uint64(100_000), amount)

	// On-chain amounts below the base fee cannot cover any invoice.
	require.Zero(t, CalculateInvoiceAmount(models.OrderSideBuy, 1, 100, 320, 0.01))
}

// The invoice amount back-computed from a quoted on-chain amount must come
// out at most one unit short of the invoice that produced the quote.
func TestCalculateInvoiceAmount_RoundTrip(t *testing.T) {
	cases := []struct {
		invoiceAmount uint64
		rate          float64
		baseFee       uint64
		feePercent    float64
	}{
		{100_000, 1, 1, 0.00001},
		{100_000, 1, 320, 0.02},
		{123_457, 1, 147, 0.005},
		{1_000_000, 1, 6800, 0.05},
		{54_321, 1, 99, 0.013},
	}

	for _, tc := range cases {
		// The quote the service hands out: floor(amount*rate) + baseFee +
		// ceil(feePercent * amount * rate), as setSwapInvoice computes it.
		percentageFee := decimal.NewFromUint64(tc.invoiceAmount).
			Mul(decimal.NewFromFloat(tc.rate)).
			Mul(decimal.NewFromFloat(tc.feePercent)).
			Ceil()
		onchainAmount := mulFloor(tc.invoiceAmount, tc.rate) +
			tc.baseFee +
			uint64(percentageFee.IntPart())

		back := CalculateInvoiceAmount(models.OrderSideBuy, tc.rate, onchainAmount, tc.baseFee, tc.feePercent)

		require.LessOrEqual(t, back, tc.invoiceAmount)
		require.LessOrEqual(t, tc.invoiceAmount-back, uint64(1))
	}
}

func TestMulFloor(t *testing.T) {
	require.Equal(t, uint64(250), mulFloor(100_000, 0.0025))
	require.Equal(t, uint64(24_999_999), mulFloor(99_999_999, 0.25)) // 24999999.75
	require.Equal(t, uint64(25_000_000), mulFloor(100_000, 250))
}
