package models

import (
	"time"
)

// ChannelCreation asks the service to open a channel to the user before
// paying the swap invoice. It lives and dies with its Swap.
type ChannelCreation struct {
	SwapID string `gorm:"primaryKey"`

	InboundLiquidity uint32 `gorm:"not null"`
	Private          bool   `gorm:"not null"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (ChannelCreation) TableName() string {
	return "channel_creations"
}
