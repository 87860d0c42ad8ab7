package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"safesteps/internal/models/db_models"
)

type QuizRepositoryInterface interface {
	ListQuestions(ctx context.Context) ([]db_models.QuizQuestion, error)
	GetQuestionByID(ctx context.Context, id string) (*db_models.QuizQuestion, error)
}

type QuizRepository struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) QuizRepositoryInterface {
	return &QuizRepository{db: db}
}

func (q *QuizRepository) ListQuestions(ctx context.Context) ([]db_models.QuizQuestion, error) {
	var questions []db_models.QuizQuestion
	err := q.db.WithContext(ctx).Order("position ASC").Find(&questions).Error
	return questions, err
}

func (q *QuizRepository) GetQuestionByID(ctx context.Context, id string) (*db_models.QuizQuestion, error) {
	var question db_models.QuizQuestion
	err := q.db.WithContext(ctx).Where("id = ?", id).First(&question).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &question, nil
}
