package swaps

import (
	"fmt"
	"strings"
	"sync"

	"github.com/tideswap/tideswap/database/models"
)

// Limits bound the swap size of a pair, in base currency units.
type Limits struct {
	Minimal uint64
	Maximal uint64
}

// Pair is a supported trading pair. Rate is expressed in quote units per
// base unit and FeePercent as a fraction (0.02 for 2%).
type Pair struct {
	Base  string
	Quote string

	Rate       float64
	Limits     Limits
	FeePercent float64

	// Configured timeout in minutes, converted to per-chain blocks by the
	// timeout delta provider.
	TimeoutDeltaMinutes uint32
}

func (p *Pair) ID() string {
	return p.Base + "/" + p.Quote
}

// PairRegistry holds the supported pairs. Pairs are only ever added, never
// removed at runtime.
type PairRegistry struct {
	mu    sync.RWMutex
	pairs map[string]*Pair
}

func NewPairRegistry() *PairRegistry {
	return &PairRegistry{
		pairs: make(map[string]*Pair),
	}
}

// Add inserts the pair if no pair with the same id exists yet.
func (r *PairRegistry) Add(pair *Pair) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.pairs[pair.ID()]; !ok {
		r.pairs[pair.ID()] = pair
	}
}

func (r *PairRegistry) Get(pairID string) (*Pair, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pair, ok := r.pairs[pairID]

	return pair, ok
}

func (r *PairRegistry) All() []*Pair {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pairs := make([]*Pair, 0, len(r.pairs))
	for _, pair := range r.pairs {
		pairs = append(pairs, pair)
	}

	return pairs
}

// SplitPairID splits "base/quote" into its currency symbols.
func SplitPairID(pairID string) (string, string, error) {
	parts := strings.Split(pairID, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid pair id: %s", pairID)
	}

	return parts[0], parts[1], nil
}

// ParseOrderSide maps the request string onto an order side,
// case-insensitively.
func ParseOrderSide(side string) (models.OrderSide, error) {
	switch strings.ToLower(side) {
	case "buy":
		return models.OrderSideBuy, nil
	case "sell":
		return models.OrderSideSell, nil
	default:
		return "", ErrOrderSideNotFound(side)
	}
}

// GetChainCurrency resolves the currency that settles on-chain. For forward
// swaps that is the one the user locks; for reverse swaps the one the
// service locks.
func GetChainCurrency(base, quote string, side models.OrderSide, isReverse bool) string {
	if isReverse {
		if side == models.OrderSideBuy {
			return base
		}

		return quote
	}

	if side == models.OrderSideBuy {
		return quote
	}

	return base
}

// GetLightningCurrency resolves the currency that settles over Lightning.
func GetLightningCurrency(base, quote string, side models.OrderSide, isReverse bool) string {
	if isReverse {
		if side == models.OrderSideBuy {
			return quote
		}

		return base
	}

	if side == models.OrderSideBuy {
		return base
	}

	return quote
}

// GetSendingReceivingCurrency resolves what the service sends and receives.
func GetSendingReceivingCurrency(base, quote string, side models.OrderSide) (sending, receiving string) {
	if side == models.OrderSideBuy {
		return base, quote
	}

	return quote, base
}

// GetRate adjusts the pair rate to the direction of the swap.
func GetRate(pairRate float64, side models.OrderSide, isReverse bool) float64 {
	if isReverse {
		if side == models.OrderSideBuy {
			return 1 / pairRate
		}

		return pairRate
	}

	if side == models.OrderSideBuy {
		return pairRate
	}

	return 1 / pairRate
}
