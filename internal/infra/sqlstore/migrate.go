package sqlstore

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// schemaVersion is the current schema version. Bump it when adding a
// migration; never renumber existing ones.
const schemaVersion = 2

// schemaInfo is a single-row table recording the applied schema version.
type schemaInfo struct {
	ID      int `gorm:"primaryKey"`
	Version int `gorm:"not null"`
}

// TableName returns the table name for schemaInfo.
func (schemaInfo) TableName() string { return "schema_info" }

// migrations are keyed by the version that introduces them. Each step
// only creates what is missing, so running a step twice is safe.
var migrations = map[int]func(*gorm.DB) error{
	1: func(db *gorm.DB) error { return db.AutoMigrate(&taskRecord{}) },
	2: func(db *gorm.DB) error { return db.AutoMigrate(&statsRecord{}) },
}

// migrate applies all pending migrations. Opening with the same or a
// lower stored version is a no-op; a higher target version creates only
// the missing collections without touching existing data.
func migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&schemaInfo{}); err != nil {
		return fmt.Errorf("migrate schema info: %w", err)
	}

	info := schemaInfo{ID: 1}
	err := db.First(&info, "id = ?", 1).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("read schema version: %w", err)
	}

	for v := info.Version + 1; v <= schemaVersion; v++ {
		step, ok := migrations[v]
		if !ok {
			continue
		}
		if err := db.Transaction(func(tx *gorm.DB) error {
			if err := step(tx); err != nil {
				return err
			}
			return tx.Save(&schemaInfo{ID: 1, Version: v}).Error
		}); err != nil {
			return fmt.Errorf("migrate to v%d: %w", v, err)
		}
	}
	return nil
}
