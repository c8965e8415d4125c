package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSwapStatus_Scan(t *testing.T) {
	var status SwapStatus
	require.NoError(t, status.Scan("invoice.set"))
	require.Equal(t, StatusInvoiceSet, status)

	require.Error(t, status.Scan(42))
}

func TestSwapStatus_IsFinal(t *testing.T) {
	final := []SwapStatus{StatusInvoiceSettled, StatusSwapRefunded, StatusSwapExpired}
	for _, status := range final {
		require.True(t, status.IsFinal(), status)
	}

	inFlight := []SwapStatus{
		StatusSwapCreated,
		StatusInvoiceSet,
		StatusTransactionMempool,
		StatusTransactionConfirmed,
		StatusInvoicePending,
		StatusInvoiceFailedToPay,
		StatusInvoicePaid,
	}
	for _, status := range inFlight {
		require.False(t, status.IsFinal(), status)
	}
}

func TestOrderSide_Scan(t *testing.T) {
	var side OrderSide
	require.NoError(t, side.Scan("sell"))
	require.Equal(t, OrderSideSell, side)
	require.True(t, side.IsValid())

	require.Error(t, side.Scan([]byte("buy")))

	value, err := OrderSideBuy.Value()
	require.NoError(t, err)
	require.Equal(t, "buy", value)
}
