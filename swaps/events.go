package swaps

import (
	"sync"

	"github.com/tideswap/tideswap/database/models"
)

// SwapUpdate is one lifecycle transition of a swap.
type SwapUpdate struct {
	ID     string
	Status models.SwapStatus

	// Optional details of the transition.
	FailureReason string
	TransactionID string
	ZeroConf      bool
}

// EventHub fans swap updates out to subscribers. Updates for the same swap
// id are delivered in publish order; ordering across ids is unspecified.
type EventHub struct {
	mu          sync.RWMutex
	subscribers map[int]chan SwapUpdate
	nextID      int
}

const subscriberBuffer = 64

func NewEventHub() *EventHub {
	return &EventHub{
		subscribers: make(map[int]chan SwapUpdate),
	}
}

// Subscribe registers a new subscriber. The returned cancel function must
// be called to release the subscription.
func (h *EventHub) Subscribe() (<-chan SwapUpdate, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++

	updates := make(chan SwapUpdate, subscriberBuffer)
	h.subscribers[id] = updates

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()

		if ch, ok := h.subscribers[id]; ok {
			delete(h.subscribers, id)
			close(ch)
		}
	}

	return updates, cancel
}

// Publish delivers the update to every subscriber. Publishing happens from
// a single goroutine per swap, so per-id ordering is preserved as long as
// subscribers keep draining their channels.
func (h *EventHub) Publish(update SwapUpdate) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, subscriber := range h.subscribers {
		subscriber <- update
	}
}
