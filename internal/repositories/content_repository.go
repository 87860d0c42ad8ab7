package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"safesteps/internal/models/db_models"
)

// ContentRepositoryInterface reads the page copy and SafeBot's keyword table.
type ContentRepositoryInterface interface {
	ListCannedAnswers(ctx context.Context) ([]db_models.CannedAnswer, error)
	ListDisasterCategories(ctx context.Context) ([]db_models.DisasterCategory, error)
	GetDisasterCategoryByID(ctx context.Context, id string) (*db_models.DisasterCategory, error)
}

type ContentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) ContentRepositoryInterface {
	return &ContentRepository{db: db}
}

func (r *ContentRepository) ListCannedAnswers(ctx context.Context) ([]db_models.CannedAnswer, error) {
	var answers []db_models.CannedAnswer
	err := r.db.WithContext(ctx).Order("position ASC").Find(&answers).Error
	return answers, err
}

func (r *ContentRepository) ListDisasterCategories(ctx context.Context) ([]db_models.DisasterCategory, error) {
	var categories []db_models.DisasterCategory
	err := r.db.WithContext(ctx).Order("position ASC").Find(&categories).Error
	return categories, err
}

func (r *ContentRepository) GetDisasterCategoryByID(ctx context.Context, id string) (*db_models.DisasterCategory, error) {
	var category db_models.DisasterCategory
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}
