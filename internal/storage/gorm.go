package storage

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// collectionRow is one persisted collection: the collection key and its
// full JSON value.
type collectionRow struct {
	Key       string `gorm:"primaryKey;size:64"`
	Value     []byte `gorm:"type:jsonb"`
	UpdatedAt time.Time
}

func (collectionRow) TableName() string { return "content_collections" }

// GormStore persists collections in a key/value table, one row per
// collection, upserted on every save.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&collectionRow{}); err != nil {
		return nil, err
	}
	return &GormStore{db: db}, nil
}

func (g *GormStore) Load(key string) ([]byte, bool, error) {
	var row collectionRow
	err := g.db.First(&row, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return row.Value, true, nil
}

func (g *GormStore) Save(key string, value []byte) error {
	row := collectionRow{Key: key, Value: value, UpdatedAt: time.Now()}
	return g.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
}
