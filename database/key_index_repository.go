package database

import (
	"context"

	"github.com/tideswap/tideswap/database/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type KeyIndexRepository interface {
	NextKeyIndex(ctx context.Context, symbol string) (uint32, error)
}

// NextKeyIndex issues the next HD derivation index for a wallet. The counter
// row is locked for the duration of the transaction, so concurrent swap
// creations never see the same index, and the counter only moves forward.
func (d *Database) NextKeyIndex(ctx context.Context, symbol string) (uint32, error) {
	var index uint32

	err := d.orm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		counter := models.KeyIndex{Symbol: symbol}

		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("symbol = ?", symbol).
			FirstOrCreate(&counter).Error
		if err != nil {
			return err
		}

		index = counter.NextIndex
		counter.NextIndex++

		return tx.Save(&counter).Error
	})
	if err != nil {
		return 0, err
	}

	return index, nil
}
