package infra

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"safesteps/internal/catalog"
	"safesteps/internal/models/db_models"
)

// SeedCatalogs writes the built-in catalogs. Rows that already exist are left alone,
// so an operator can edit copy in a persistent database without it being reset on
// the next start.
func SeedCatalogs(ctx context.Context, db *gorm.DB, logger *zap.Logger) error {
	questions := quizRows()
	items := checklistRows()
	contacts := contactRows()
	answers := answerRows()
	categories := categoryRows()

	seeds := []struct {
		table string
		rows  interface{}
		count int
	}{
		{"quiz_questions", &questions, len(questions)},
		{"checklist_items", &items, len(items)},
		{"emergency_contacts", &contacts, len(contacts)},
		{"canned_answers", &answers, len(answers)},
		{"disaster_categories", &categories, len(categories)},
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, s := range seeds {
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(s.rows).Error; err != nil {
				return fmt.Errorf("failed to seed %s: %w", s.table, err)
			}
			logger.Debug("Seeded catalog table", zap.String("table", s.table), zap.Int("rows", s.count))
		}
		return nil
	})
}

func quizRows() []db_models.QuizQuestion {
	rows := make([]db_models.QuizQuestion, 0, len(catalog.QuizQuestions))
	for i, q := range catalog.QuizQuestions {
		rows = append(rows, db_models.QuizQuestion{
			CatalogModel:  db_models.CatalogModel{ID: q.ID, Position: i},
			Text:          q.Text,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
			Category:      q.Category,
			Difficulty:    string(q.Difficulty),
		})
	}
	return rows
}

func checklistRows() []db_models.ChecklistItem {
	rows := make([]db_models.ChecklistItem, 0, len(catalog.ChecklistItems))
	for i, item := range catalog.ChecklistItems {
		rows = append(rows, db_models.ChecklistItem{
			CatalogModel: db_models.CatalogModel{ID: item.ID, Position: i},
			Title:        item.Title,
			Description:  item.Description,
			Category:     string(item.Category),
			Priority:     string(item.Priority),
		})
	}
	return rows
}

func contactRows() []db_models.EmergencyContact {
	rows := make([]db_models.EmergencyContact, 0, len(catalog.EmergencyContacts))
	for i, c := range catalog.EmergencyContacts {
		rows = append(rows, db_models.EmergencyContact{
			CatalogModel: db_models.CatalogModel{ID: c.ID, Position: i},
			Name:         c.Name,
			Number:       c.Number,
			Description:  c.Description,
			Kind:         string(c.Kind),
			Available:    c.Available,
		})
	}
	return rows
}

func answerRows() []db_models.CannedAnswer {
	rows := make([]db_models.CannedAnswer, 0, len(catalog.CannedAnswers))
	for i, a := range catalog.CannedAnswers {
		rows = append(rows, db_models.CannedAnswer{
			CatalogModel: db_models.CatalogModel{ID: a.Keyword, Position: i},
			Keyword:      a.Keyword,
			Text:         a.Text,
		})
	}
	return rows
}

func categoryRows() []db_models.DisasterCategory {
	rows := make([]db_models.DisasterCategory, 0, len(catalog.DisasterCategories))
	for i, c := range catalog.DisasterCategories {
		rows = append(rows, db_models.DisasterCategory{
			CatalogModel: db_models.CatalogModel{ID: c.ID, Position: i},
			Title:        c.Title,
			Description:  c.Description,
			Examples:     c.Examples,
			Trained:      c.Trained,
			Scenarios:    c.Scenarios,
		})
	}
	return rows
}
