package repositories

import (
	"context"

	"gorm.io/gorm"

	"safesteps/internal/models/db_models"
)

type ContactRepositoryInterface interface {
	ListContacts(ctx context.Context) ([]db_models.EmergencyContact, error)
}

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepositoryInterface {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) ListContacts(ctx context.Context) ([]db_models.EmergencyContact, error) {
	var contacts []db_models.EmergencyContact
	err := r.db.WithContext(ctx).Order("position ASC").Find(&contacts).Error
	return contacts, err
}
