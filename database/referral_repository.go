package database

import (
	"context"
	"errors"

	"github.com/tideswap/tideswap/database/models"
	"gorm.io/gorm"
)

type ReferralRepository interface {
	CreateReferral(ctx context.Context, referral *models.Referral) error
	GetReferral(ctx context.Context, id string) (*models.Referral, error)
	GetReferralByRoutingNode(ctx context.Context, routingNode string) (*models.Referral, error)
}

func (d *Database) CreateReferral(ctx context.Context, referral *models.Referral) error {
	err := d.orm.WithContext(ctx).Create(referral).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateRecord
	}

	return err
}

func (d *Database) GetReferral(ctx context.Context, id string) (*models.Referral, error) {
	return firstOrNil[models.Referral](d.orm.WithContext(ctx).Where("id = ?", id))
}

func (d *Database) GetReferralByRoutingNode(ctx context.Context, routingNode string) (*models.Referral, error) {
	return firstOrNil[models.Referral](d.orm.WithContext(ctx).Where("routing_node = ?", routingNode))
}
