// Package daemon runs the long-lived loops around the swap service: rate
// refreshing and the lifecycle event monitor.
package daemon

import (
	"context"

	log "github.com/sirupsen/logrus"
	"github.com/tideswap/tideswap/swaps"
)

// Start blocks until the context is canceled, draining the swap event
// stream and keeping rates fresh.
func Start(ctx context.Context, service *swaps.Service, rates *swaps.RateProvider) error {
	log.Info("Starting tideswapd")

	go rates.Start(ctx)

	updates, cancel := service.Subscribe()
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			log.Info("Shutting down tideswapd")

			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}

			logger := log.WithField("id", update.ID).WithField("status", update.Status)
			if update.FailureReason != "" {
				logger = logger.WithField("reason", update.FailureReason)
			}
			logger.Info("swap update")
		}
	}
}
