package database

import (
	"context"
	"errors"

	"github.com/tideswap/tideswap/database/models"
	"gorm.io/gorm"
)

// ErrDuplicateRecord is returned when an insert violates a unique key.
var ErrDuplicateRecord = errors.New("record already exists")

type SwapRepository interface {
	CreateSwap(ctx context.Context, swap *models.Swap) error
	GetSwap(ctx context.Context, id string) (*models.Swap, error)
	GetSwapByPreimageHash(ctx context.Context, preimageHash string) (*models.Swap, error)
	GetSwapByInvoice(ctx context.Context, invoice string) (*models.Swap, error)
	GetUnfinishedSwapByLockupTransaction(ctx context.Context, txID string) (*models.Swap, error)
	SaveSwap(ctx context.Context, swap *models.Swap) error
	DeleteSwap(ctx context.Context, swap *models.Swap) error
}

func (d *Database) CreateSwap(ctx context.Context, swap *models.Swap) error {
	err := d.orm.WithContext(ctx).Create(swap).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateRecord
	}

	return err
}

func (d *Database) GetSwap(ctx context.Context, id string) (*models.Swap, error) {
	return firstOrNil[models.Swap](d.orm.WithContext(ctx).Where("id = ?", id))
}

func (d *Database) GetSwapByPreimageHash(ctx context.Context, preimageHash string) (*models.Swap, error) {
	return firstOrNil[models.Swap](d.orm.WithContext(ctx).Where("preimage_hash = ?", preimageHash))
}

func (d *Database) GetSwapByInvoice(ctx context.Context, invoice string) (*models.Swap, error) {
	return firstOrNil[models.Swap](d.orm.WithContext(ctx).Where("invoice = ?", invoice))
}

// GetUnfinishedSwapByLockupTransaction finds a swap that is still in flight
// and was funded by the given transaction.
func (d *Database) GetUnfinishedSwapByLockupTransaction(ctx context.Context, txID string) (*models.Swap, error) {
	return firstOrNil[models.Swap](d.orm.WithContext(ctx).
		Where("lockup_transaction_id = ?", txID).
		Where("status NOT IN ?", []models.SwapStatus{
			models.StatusInvoiceSettled,
			models.StatusSwapRefunded,
			models.StatusSwapExpired,
		}))
}

func (d *Database) SaveSwap(ctx context.Context, swap *models.Swap) error {
	err := d.orm.WithContext(ctx).Save(swap).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateRecord
	}

	return err
}

func (d *Database) DeleteSwap(ctx context.Context, swap *models.Swap) error {
	return d.orm.WithContext(ctx).Delete(swap).Error
}

func firstOrNil[T any](query *gorm.DB) (*T, error) {
	var record T
	err := query.First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &record, nil
}
