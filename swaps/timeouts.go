package swaps

import (
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tideswap/tideswap/database/models"
)

// Block times in minutes. ETH targets a block every 12 seconds, RBTC every 30.
var blockTimesMinutes = map[string]decimal.Decimal{
	"BTC":  decimal.NewFromInt(10),
	"LTC":  decimal.RequireFromString("2.5"),
	"ETH":  decimal.RequireFromString("0.2"),
	"RBTC": decimal.RequireFromString("0.5"),
}

// BlockTimeMinutes returns the block time of a chain. Token symbols have no
// entry and return an error; the TimeoutDeltaProvider maps them to their
// account chain before the lookup.
func BlockTimeMinutes(symbol string) (decimal.Decimal, error) {
	if blockTime, ok := blockTimesMinutes[symbol]; ok {
		return blockTime, nil
	}

	return decimal.Zero, fmt.Errorf("no block time for %s", symbol)
}

// PairTimeoutBlockDeltas is the configured timeout of a pair converted to
// blocks of each of its chains.
type PairTimeoutBlockDeltas struct {
	Base  uint32
	Quote uint32
}

// TimeoutDeltaProvider converts the per-pair timeout configuration, given
// in minutes, into block counts on the chain the timeout applies to.
type TimeoutDeltaProvider struct {
	mu     sync.RWMutex
	deltas map[string]PairTimeoutBlockDeltas

	tokenChains map[string]string
}

// NewTimeoutDeltaProvider creates the provider. tokenChains maps ERC20
// symbols to the account chain whose blocks carry them.
func NewTimeoutDeltaProvider(tokenChains map[string]string) *TimeoutDeltaProvider {
	return &TimeoutDeltaProvider{
		deltas:      make(map[string]PairTimeoutBlockDeltas),
		tokenChains: tokenChains,
	}
}

func (t *TimeoutDeltaProvider) Init(pairs []*Pair) error {
	for _, pair := range pairs {
		if err := t.SetTimeout(pair.ID(), pair.TimeoutDeltaMinutes); err != nil {
			return err
		}
	}

	return nil
}

// SetTimeout updates the timeout of a pair. The minutes must be a whole
// multiple of both chains' block times.
func (t *TimeoutDeltaProvider) SetTimeout(pairID string, minutes uint32) error {
	base, quote, err := SplitPairID(pairID)
	if err != nil {
		return err
	}

	baseBlocks, err := t.minutesToBlocks(base, minutes)
	if err != nil {
		return err
	}

	quoteBlocks, err := t.minutesToBlocks(quote, minutes)
	if err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.deltas[pairID] = PairTimeoutBlockDeltas{
		Base:  baseBlocks,
		Quote: quoteBlocks,
	}

	return nil
}

// GetTimeout returns the on-chain timeout in blocks of the chain currency
// of the swap.
func (t *TimeoutDeltaProvider) GetTimeout(pairID string, side models.OrderSide, isReverse bool) (uint32, error) {
	base, quote, err := SplitPairID(pairID)
	if err != nil {
		return 0, err
	}

	t.mu.RLock()
	deltas, ok := t.deltas[pairID]
	t.mu.RUnlock()

	if !ok {
		return 0, ErrPairNotFound(pairID)
	}

	if GetChainCurrency(base, quote, side, isReverse) == base {
		return deltas.Base, nil
	}

	return deltas.Quote, nil
}

// All returns a snapshot of every configured pair timeout.
func (t *TimeoutDeltaProvider) All() map[string]PairTimeoutBlockDeltas {
	t.mu.RLock()
	defer t.mu.RUnlock()

	deltas := make(map[string]PairTimeoutBlockDeltas, len(t.deltas))
	for pairID, delta := range t.deltas {
		deltas[pairID] = delta
	}

	return deltas
}

// ConvertBlocks converts a block count of one chain into the count that
// spans at least the same time on another chain.
func (t *TimeoutDeltaProvider) ConvertBlocks(fromSymbol, toSymbol string, blocks uint32) (uint32, error) {
	fromTime, err := t.blockTime(fromSymbol)
	if err != nil {
		return 0, err
	}

	toTime, err := t.blockTime(toSymbol)
	if err != nil {
		return 0, err
	}

	converted := decimal.NewFromInt(int64(blocks)).
		Mul(fromTime).
		Div(toTime).
		Ceil()

	return uint32(converted.IntPart()), nil
}

// CalculateTimeoutDate projects when the chain will have mined the missing
// blocks, as a unix timestamp.
func CalculateTimeoutDate(symbol string, blocksMissing uint32, now time.Time) (int64, error) {
	blockTime, err := BlockTimeMinutes(symbol)
	if err != nil {
		return 0, err
	}

	seconds := decimal.NewFromInt(int64(blocksMissing)).
		Mul(blockTime).
		Mul(decimal.NewFromInt(60)).
		IntPart()

	return now.Unix() + seconds, nil
}

func (t *TimeoutDeltaProvider) minutesToBlocks(symbol string, minutes uint32) (uint32, error) {
	blockTime, err := t.blockTime(symbol)
	if err != nil {
		return 0, err
	}

	blocks := decimal.NewFromInt(int64(minutes)).Div(blockTime)
	if !blocks.IsInteger() {
		return 0, fmt.Errorf("timeout delta of %d minutes is not a multiple of the %s block time", minutes, symbol)
	}

	return uint32(blocks.IntPart()), nil
}

func (t *TimeoutDeltaProvider) blockTime(symbol string) (decimal.Decimal, error) {
	if chain, ok := t.tokenChains[symbol]; ok {
		symbol = chain
	}

	return BlockTimeMinutes(symbol)
}
