package models

import (
	"time"
)

// Swap is a forward submarine swap: the user locks funds on-chain and the
// service settles the bound Lightning invoice.
type Swap struct {
	ID string `gorm:"primaryKey"`

	Pair      string    `gorm:"not null"`
	OrderSide OrderSide `gorm:"not null"`

	// Unique across all swaps; the HTLC hash that synchronizes both legs.
	PreimageHash string `gorm:"uniqueIndex;not null"`

	// Set at most once, when the user binds an invoice to the swap.
	Invoice *string `gorm:"uniqueIndex"`

	// Amount observed on-chain once the user funds the lockup address.
	OnchainAmount  *uint64
	ExpectedAmount *uint64
	PercentageFee  *uint64
	AcceptZeroConf bool

	// Locked at invoice-set time.
	Rate *float64

	LockupAddress       string `gorm:"not null"`
	LockupTransactionID *string
	TimeoutBlockHeight  uint32 `gorm:"not null"`

	// One of the two, depending on the chain currency kind.
	RefundPublicKey *string
	ClaimAddress    *string

	KeyIndex     *uint32
	RedeemScript *string

	ReferralID *string

	Status SwapStatus `gorm:"not null"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Swap) TableName() string {
	return "swaps"
}
