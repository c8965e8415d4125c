package database

import (
	"context"
	"errors"

	"github.com/tideswap/tideswap/database/models"
	"gorm.io/gorm"
)

type ReverseSwapRepository interface {
	CreateReverseSwap(ctx context.Context, swap *models.ReverseSwap) error
	GetReverseSwap(ctx context.Context, id string) (*models.ReverseSwap, error)
	SaveReverseSwap(ctx context.Context, swap *models.ReverseSwap) error
}

func (d *Database) CreateReverseSwap(ctx context.Context, swap *models.ReverseSwap) error {
	err := d.orm.WithContext(ctx).Create(swap).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateRecord
	}

	return err
}

func (d *Database) GetReverseSwap(ctx context.Context, id string) (*models.ReverseSwap, error) {
	return firstOrNil[models.ReverseSwap](d.orm.WithContext(ctx).Where("id = ?", id))
}

func (d *Database) SaveReverseSwap(ctx context.Context, swap *models.ReverseSwap) error {
	return d.orm.WithContext(ctx).Save(swap).Error
}
