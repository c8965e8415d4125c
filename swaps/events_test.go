package swaps

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tideswap/tideswap/database/models"
)

func TestEventHub_PerIDOrdering(t *testing.T) {
	hub := NewEventHub()

	updates, cancel := hub.Subscribe()
	defer cancel()

	lifecycle := []models.SwapStatus{
		models.StatusSwapCreated,
		models.StatusInvoiceSet,
		models.StatusTransactionMempool,
		models.StatusTransactionConfirmed,
		models.StatusInvoiceSettled,
	}

	for _, status := range lifecycle {
		hub.Publish(SwapUpdate{ID: "swap", Status: status})
	}

	for _, want := range lifecycle {
		update := <-updates
		require.Equal(t, "swap", update.ID)
		require.Equal(t, want, update.Status)
	}
}

func TestEventHub_CancelStopsDelivery(t *testing.T) {
	hub := NewEventHub()

	updates, cancel := hub.Subscribe()
	cancel()

	// Publishing after cancel must not block on the dead subscriber.
	hub.Publish(SwapUpdate{ID: "swap", Status: models.StatusSwapCreated})

	_, open := <-updates
	require.False(t, open)
}

func TestEventHub_MultipleSubscribers(t *testing.T) {
	hub := NewEventHub()

	first, cancelFirst := hub.Subscribe()
	defer cancelFirst()
	second, cancelSecond := hub.Subscribe()
	defer cancelSecond()

	hub.Publish(SwapUpdate{ID: "swap", Status: models.StatusSwapCreated})

	require.Equal(t, models.StatusSwapCreated, (<-first).Status)
	require.Equal(t, models.StatusSwapCreated, (<-second).Status)
}
