package repositories

import (
	"context"

	"gorm.io/gorm"

	"safesteps/internal/models/db_models"
)

type ChecklistRepositoryInterface interface {
	ListItems(ctx context.Context) ([]db_models.ChecklistItem, error)
}

type ChecklistRepository struct {
	db *gorm.DB
}

func NewChecklistRepository(db *gorm.DB) ChecklistRepositoryInterface {
	return &ChecklistRepository{db: db}
}

func (r *ChecklistRepository) ListItems(ctx context.Context) ([]db_models.ChecklistItem, error) {
	var items []db_models.ChecklistItem
	err := r.db.WithContext(ctx).Order("position ASC").Find(&items).Error
	return items, err
}
