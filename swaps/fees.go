package swaps

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/tideswap/tideswap/ethereum"
)

// BaseFeeType selects the transaction whose broadcast cost a base fee has
// to cover.
type BaseFeeType int

const (
	// BaseFeeNormalClaim covers claiming the user's lockup of a forward swap.
	BaseFeeNormalClaim BaseFeeType = iota
	// BaseFeeReverseLockup covers the service's lockup of a reverse swap.
	BaseFeeReverseLockup
	// BaseFeeReverseClaim covers the user's claim of a reverse swap.
	BaseFeeReverseClaim
)

// Virtual sizes of the swap transactions on UTXO chains.
const (
	vsizeNormalClaim   = 170
	vsizeReverseLockup = 153
	vsizeReverseClaim  = 138
)

// Gas usage of the swap contract calls on account chains.
const (
	gasUsageLockup = 46_460
	gasUsageClaim  = 24_924
)

const feeEstimationBlockTarget = 2

// FeeProvider knows the percentage fee of every pair and derives per-chain
// base fees from current network conditions.
type FeeProvider struct {
	mu          sync.RWMutex
	percentages map[string]float64
}

func NewFeeProvider() *FeeProvider {
	return &FeeProvider{
		percentages: make(map[string]float64),
	}
}

func (f *FeeProvider) Init(pairs []*Pair) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, pair := range pairs {
		f.percentages[pair.ID()] = pair.FeePercent
	}
}

// GetPercentageFee returns the fee fraction of the pair, zero for unknown
// pairs.
func (f *FeeProvider) GetPercentageFee(pairID string) float64 {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.percentages[pairID]
}

// GetBaseFee estimates the flat fee of a swap transaction on the currency,
// in the smallest unit of the chain.
func (f *FeeProvider) GetBaseFee(ctx context.Context, currency *Currency, feeType BaseFeeType) (uint64, error) {
	switch currency.Kind {
	case CurrencyBitcoinLike:
		if currency.Chain == nil {
			return 0, ErrNotSupportedBySymbol(currency.Symbol)
		}

		feeRate, err := currency.Chain.EstimateFee(ctx, feeEstimationBlockTarget)
		if err != nil {
			return 0, fmt.Errorf("failed to estimate fee for %s: %w", currency.Symbol, err)
		}

		return uint64(math.Ceil(feeRate * float64(vsizeForType(feeType)))), nil

	case CurrencyEther, CurrencyERC20:
		if currency.Provider == nil {
			return 0, ErrEthereumNotEnabled()
		}

		gasPrice, err := currency.Provider.SuggestGasPrice(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to get gas price for %s: %w", currency.Symbol, err)
		}

		gasUsage := gasUsageClaim
		if feeType == BaseFeeReverseLockup {
			gasUsage = gasUsageLockup
		}

		// wei -> 10^-8 coin units, the resolution all amounts use.
		fee := decimal.NewFromBigInt(gasPrice, 0).
			Mul(decimal.NewFromInt(int64(gasUsage))).
			Div(ethereum.EtherDecimals).
			Mul(decimal.NewFromInt(1e8)).
			Ceil()

		return uint64(fee.IntPart()), nil

	default:
		return 0, ErrNotSupportedBySymbol(currency.Symbol)
	}
}

// GetFees computes the base and percentage fee of a swap in one call. The
// percentage fee is charged on the converted amount.
func (f *FeeProvider) GetFees(ctx context.Context, pairID string, rate float64, chainCurrency *Currency, amount uint64, feeType BaseFeeType) (baseFee, percentageFee uint64, err error) {
	baseFee, err = f.GetBaseFee(ctx, chainCurrency, feeType)
	if err != nil {
		return 0, 0, err
	}

	percent := f.GetPercentageFee(pairID)
	percentageFee = uint64(decimal.NewFromUint64(amount).
		Mul(decimal.NewFromFloat(rate)).
		Mul(decimal.NewFromFloat(percent)).
		Ceil().
		IntPart())

	return baseFee, percentageFee, nil
}

func vsizeForType(feeType BaseFeeType) int {
	switch feeType {
	case BaseFeeReverseLockup:
		return vsizeReverseLockup
	case BaseFeeReverseClaim:
		return vsizeReverseClaim
	default:
		return vsizeNormalClaim
	}
}
