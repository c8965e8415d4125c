package database

import (
	"context"

	"github.com/tideswap/tideswap/database/models"
)

type ChannelCreationRepository interface {
	CreateChannelCreation(ctx context.Context, channelCreation *models.ChannelCreation) error
	GetChannelCreation(ctx context.Context, swapID string) (*models.ChannelCreation, error)
	DeleteChannelCreation(ctx context.Context, channelCreation *models.ChannelCreation) error
}

func (d *Database) CreateChannelCreation(ctx context.Context, channelCreation *models.ChannelCreation) error {
	return d.orm.WithContext(ctx).Create(channelCreation).Error
}

func (d *Database) GetChannelCreation(ctx context.Context, swapID string) (*models.ChannelCreation, error) {
	return firstOrNil[models.ChannelCreation](d.orm.WithContext(ctx).Where("swap_id = ?", swapID))
}

func (d *Database) DeleteChannelCreation(ctx context.Context, channelCreation *models.ChannelCreation) error {
	return d.orm.WithContext(ctx).Delete(channelCreation).Error
}
