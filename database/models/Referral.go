package models

import (
	"time"
)

type Referral struct {
	ID string `gorm:"primaryKey"`

	// Percentage of the service fee forwarded to the referral partner.
	FeeShare uint32 `gorm:"not null"`

	RoutingNode *string `gorm:"uniqueIndex"`

	APIKey    string `gorm:"not null"`
	APISecret string `gorm:"not null"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Referral) TableName() string {
	return "referrals"
}
