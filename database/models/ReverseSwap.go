package models

import (
	"time"
)

// ReverseSwap is the mirrored flow: the user pays a hold invoice and the
// service produces an on-chain HTLC the user claims with the preimage.
type ReverseSwap struct {
	ID string `gorm:"primaryKey"`

	Pair      string    `gorm:"not null"`
	OrderSide OrderSide `gorm:"not null"`

	PreimageHash string `gorm:"index;not null"`

	Invoice string `gorm:"uniqueIndex;not null"`
	// Secondary invoice covering the broadcast cost when prepay is active.
	MinerFeeInvoice *string

	HoldInvoiceAmount uint64 `gorm:"not null"`
	OnchainAmount     uint64 `gorm:"not null"`
	PercentageFee     uint64 `gorm:"not null"`

	PrepayMinerFeeInvoiceAmount *uint64
	PrepayMinerFeeOnchainAmount *uint64

	LockupAddress      string `gorm:"not null"`
	TimeoutBlockHeight uint32 `gorm:"not null"`

	ClaimPublicKey *string
	ClaimAddress   *string

	KeyIndex     *uint32
	RedeemScript *string

	ReferralID *string

	Status SwapStatus `gorm:"not null"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (ReverseSwap) TableName() string {
	return "reverse_swaps"
}
