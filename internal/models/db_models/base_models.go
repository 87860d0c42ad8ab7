package db_models

import (
	"time"

	"gorm.io/gorm"
)

// CatalogModel is embedded by every seeded catalog table. ID is the stable catalog
// key (e.g. "smoke-detector") and Position keeps the authored display order.
type CatalogModel struct {
	ID        string `gorm:"primaryKey;size:64"`
	Position  int    `gorm:"index;not null"`
	CreatedAt int64  `gorm:"autoCreateTime"`
	UpdatedAt int64  `gorm:"autoUpdateTime"`
}

// Hooks to manage int64 timestamps
func (b *CatalogModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now().Unix()
	b.CreatedAt = now
	b.UpdatedAt = now
	return nil
}

func (b *CatalogModel) BeforeUpdate(tx *gorm.DB) error {
	b.UpdatedAt = time.Now().Unix()
	return nil
}
