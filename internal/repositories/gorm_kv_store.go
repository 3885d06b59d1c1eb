package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tsena/internal/models"
)

// KVEntry is the single-table layout backing the durable slot.
type KVEntry struct {
	Key   string `gorm:"primaryKey;type:varchar(255)"`
	Value []byte
}

// TableName sets the GORM table name for KVEntry.
func (KVEntry) TableName() string {
	return "kv_entries"
}

// GORMKeyValueStore is a GORM implementation of KeyValueStore, used
// with a local SQLite file so the session record survives restarts.
type GORMKeyValueStore struct {
	db *gorm.DB
}

// NewGORMKeyValueStore creates a new GORMKeyValueStore and migrates
// its table.
func NewGORMKeyValueStore(db *gorm.DB) (*GORMKeyValueStore, error) {
	if err := db.AutoMigrate(&KVEntry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate kv_entries: %w", err)
	}
	return &GORMKeyValueStore{db: db}, nil
}

// Get retrieves the value stored under key.
func (s *GORMKeyValueStore) Get(key string) ([]byte, error) {
	var entry KVEntry
	if err := s.db.First(&entry, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("key %s: %w", key, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get key %s: %w", key, err)
	}
	return entry.Value, nil
}

// Set stores value under key, replacing any previous value.
func (s *GORMKeyValueStore) Set(key string, value []byte) error {
	entry := KVEntry{Key: key, Value: value}
	if err := s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&entry).Error; err != nil {
		return fmt.Errorf("failed to set key %s: %w", key, err)
	}
	return nil
}

// Delete removes the value stored under key. Absent keys are ignored.
func (s *GORMKeyValueStore) Delete(key string) error {
	if err := s.db.Delete(&KVEntry{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}
