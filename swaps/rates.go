package swaps

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// PairInfo is the atomically replaced quote snapshot of a pair: rate, limits
// and fees are always read together with the hash that commits to them.
type PairInfo struct {
	Rate       float64
	Limits     Limits
	FeePercent float64
	Hash       string
}

// RateSource supplies a fresh rate for a pair. The service does no price
// discovery on its own; rates are fed in.
type RateSource func(ctx context.Context, pairID string) (float64, error)

type RateProvider struct {
	mu    sync.RWMutex
	pairs map[string]*PairInfo

	// Lockups at or below this threshold (per chain currency) are accepted
	// without confirmation.
	zeroConfLimits map[string]uint64

	source   RateSource
	interval time.Duration
}

func NewRateProvider(source RateSource, interval time.Duration, zeroConfLimits map[string]uint64) *RateProvider {
	return &RateProvider{
		pairs:          make(map[string]*PairInfo),
		zeroConfLimits: zeroConfLimits,
		source:         source,
		interval:       interval,
	}
}

// Init seeds the provider with the configured pairs.
func (r *RateProvider) Init(pairs []*Pair) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, pair := range pairs {
		r.pairs[pair.ID()] = newPairInfo(pair.ID(), pair.Rate, pair.Limits, pair.FeePercent)
	}
}

// Get returns the current snapshot of the pair.
func (r *RateProvider) Get(pairID string) (*PairInfo, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	info, ok := r.pairs[pairID]

	return info, ok
}

// Hash returns the optimistic-concurrency token of the pair's current quote.
func (r *RateProvider) Hash(pairID string) (string, bool) {
	info, ok := r.Get(pairID)
	if !ok {
		return "", false
	}

	return info.Hash, true
}

// UpdateRate replaces the pair snapshot with a new rate. Readers never see
// a rate without its matching hash.
func (r *RateProvider) UpdateRate(pairID string, rate float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.pairs[pairID]
	if !ok {
		return fmt.Errorf("unknown pair: %s", pairID)
	}

	r.pairs[pairID] = newPairInfo(pairID, rate, current.Limits, current.FeePercent)

	return nil
}

// AcceptZeroConf reports whether an unconfirmed lockup of the amount on the
// chain currency is at or below the configured risk threshold.
func (r *RateProvider) AcceptZeroConf(symbol string, amount uint64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	limit, ok := r.zeroConfLimits[symbol]
	if !ok {
		return false
	}

	return amount <= limit
}

// Start refreshes the rates on the configured interval until the context is
// canceled. Without a source the provider keeps its static rates.
func (r *RateProvider) Start(ctx context.Context) {
	if r.source == nil || r.interval == 0 {
		return
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.refresh(ctx)
		}
	}
}

func (r *RateProvider) refresh(ctx context.Context) {
	r.mu.RLock()
	pairIDs := make([]string, 0, len(r.pairs))
	for pairID := range r.pairs {
		pairIDs = append(pairIDs, pairID)
	}
	r.mu.RUnlock()

	for _, pairID := range pairIDs {
		rate, err := r.source(ctx, pairID)
		if err != nil {
			log.WithField("pair", pairID).WithError(err).Warn("failed to refresh rate")

			continue
		}

		if err := r.UpdateRate(pairID, rate); err != nil {
			log.WithField("pair", pairID).WithError(err).Warn("failed to update rate")
		}
	}
}

func newPairInfo(pairID string, rate float64, limits Limits, feePercent float64) *PairInfo {
	return &PairInfo{
		Rate:       rate,
		Limits:     limits,
		FeePercent: feePercent,
		Hash:       hashPair(pairID, rate, limits, feePercent),
	}
}

func hashPair(pairID string, rate float64, limits Limits, feePercent float64) string {
	digest := sha256.Sum256([]byte(fmt.Sprintf(
		"%s:%g:%d:%d:%g", pairID, rate, limits.Minimal, limits.Maximal, feePercent,
	)))

	return hex.EncodeToString(digest[:8])
}
