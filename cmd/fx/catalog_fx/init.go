package catalog_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"safesteps/internal/repositories"
	"safesteps/internal/services"
)

var Module = fx.Provide(
	provideQuizRepo,
	provideChecklistRepo,
	provideContactRepo,
	provideContentRepo,
	provideCatalogs,
)

func provideQuizRepo(db *gorm.DB) repositories.QuizRepositoryInterface {
	return repositories.NewQuizRepository(db)
}

func provideChecklistRepo(db *gorm.DB) repositories.ChecklistRepositoryInterface {
	return repositories.NewChecklistRepository(db)
}

func provideContactRepo(db *gorm.DB) repositories.ContactRepositoryInterface {
	return repositories.NewContactRepository(db)
}

func provideContentRepo(db *gorm.DB) repositories.ContentRepositoryInterface {
	return repositories.NewContentRepository(db)
}

func provideCatalogs(
	quizRepo repositories.QuizRepositoryInterface,
	checklistRepo repositories.ChecklistRepositoryInterface,
	contactRepo repositories.ContactRepositoryInterface,
	contentRepo repositories.ContentRepositoryInterface,
	logger *zap.Logger,
) (*services.Catalogs, error) {
	catalogs, err := services.LoadCatalogs(context.Background(), quizRepo, checklistRepo, contactRepo, contentRepo)
	if err != nil {
		return nil, err
	}
	logger.Info("Catalogs loaded",
		zap.Int("questions", len(catalogs.Questions)),
		zap.Int("checklist_items", catalogs.Checklist.Len()),
		zap.Int("contacts", len(catalogs.Contacts)),
		zap.Int("canned_answers", len(catalogs.Answers)))
	return catalogs, nil
}
