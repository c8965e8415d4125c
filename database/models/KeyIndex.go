package models

// KeyIndex is the persisted HD derivation counter of a wallet. Indexes are
// issued monotonically and only ever move forward, so a restart cannot
// hand out the same index twice.
type KeyIndex struct {
	Symbol    string `gorm:"primaryKey"`
	NextIndex uint32 `gorm:"not null"`
}

func (KeyIndex) TableName() string {
	return "key_indices"
}
