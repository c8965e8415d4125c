package models

import (
	"database/sql/driver"
	"fmt"
)

type SwapStatus string

const (
	StatusSwapCreated          SwapStatus = "swap.created"
	StatusInvoiceSet           SwapStatus = "invoice.set"
	StatusTransactionMempool   SwapStatus = "transaction.mempool"
	StatusTransactionConfirmed SwapStatus = "transaction.confirmed"
	StatusInvoicePaid          SwapStatus = "invoice.paid"
	StatusInvoicePending       SwapStatus = "invoice.pending"
	StatusInvoiceFailedToPay   SwapStatus = "invoice.failedToPay"
	StatusInvoiceSettled       SwapStatus = "invoice.settled"
	StatusSwapRefunded         SwapStatus = "swap.refunded"
	StatusSwapExpired          SwapStatus = "swap.expired"
)

func (s SwapStatus) String() string {
	return string(s)
}

// IsFinal reports whether the status terminates the swap lifecycle and
// releases the record's resources.
func (s SwapStatus) IsFinal() bool {
	switch s {
	case StatusInvoiceSettled, StatusSwapRefunded, StatusSwapExpired:
		return true
	default:
		return false
	}
}

func (s *SwapStatus) Scan(value interface{}) error {
	str, ok := value.(string)
	if !ok {
		return fmt.Errorf("failed to scan SwapStatus: expected string, got %T", value)
	}
	*s = SwapStatus(str)

	return nil
}

func (s SwapStatus) Value() (driver.Value, error) {
	return string(s), nil
}
