package money

import (
	"github.com/shopspring/decimal"
)

// Money is a monetary amount in the smallest unit of a chain: satoshis for
// UTXO chains, 10^-8 coin units for account chains.
type Money uint64

// ToBtc renders the amount in whole coins, as BIP21 URIs expect it.
func (m Money) ToBtc() decimal.Decimal {
	return decimal.NewFromUint64(uint64(m)).Div(decimal.NewFromInt(1e8))
}
