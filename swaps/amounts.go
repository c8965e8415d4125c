package swaps

import (
	"github.com/shopspring/decimal"
	"github.com/tideswap/tideswap/database/models"
)

// mulFloor multiplies an amount by a rate and rounds down.
func mulFloor(amount uint64, rate float64) uint64 {
	return uint64(decimal.NewFromUint64(amount).
		Mul(decimal.NewFromFloat(rate)).
		Floor().
		IntPart())
}

// CalculateInvoiceAmount back-computes the biggest invoice amount that a
// given on-chain amount can still cover after fees.
func CalculateInvoiceAmount(side models.OrderSide, rate float64, onchainAmount, baseFee uint64, feePercent float64) uint64 {
	effectiveRate := rate
	if side == models.OrderSideBuy {
		effectiveRate = 1 / rate
	}

	if onchainAmount < baseFee {
		return 0
	}

	return uint64(decimal.NewFromUint64(onchainAmount - baseFee).
		Mul(decimal.NewFromFloat(effectiveRate)).
		Div(decimal.NewFromFloat(1).Add(decimal.NewFromFloat(feePercent))).
		Floor().
		IntPart())
}
