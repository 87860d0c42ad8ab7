package services

import (
	"context"
	"fmt"

	"safesteps/internal/catalog"
	"safesteps/internal/chat"
	"safesteps/internal/checklist"
	"safesteps/internal/contacts"
	"safesteps/internal/models/db_models"
	"safesteps/internal/quiz"
	"safesteps/internal/repositories"
	"safesteps/pkg/utils"
)

// Catalogs is the read-only content every widget works against. It is loaded once
// at startup and never changes afterwards.
type Catalogs struct {
	Questions  []quiz.Question
	Checklist  *checklist.Catalog
	Contacts   []contacts.Contact
	Answers    []chat.Answer
	Categories []catalog.DisasterCategory
}

// LoadCatalogs reads every catalog table in display order and validates the result.
func LoadCatalogs(
	ctx context.Context,
	quizRepo repositories.QuizRepositoryInterface,
	checklistRepo repositories.ChecklistRepositoryInterface,
	contactRepo repositories.ContactRepositoryInterface,
	contentRepo repositories.ContentRepositoryInterface,
) (*Catalogs, error) {
	questionRows, err := quizRepo.ListQuestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list quiz questions: %v", utils.ErrDatabaseError, err)
	}
	itemRows, err := checklistRepo.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list checklist items: %v", utils.ErrDatabaseError, err)
	}
	contactRows, err := contactRepo.ListContacts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list contacts: %v", utils.ErrDatabaseError, err)
	}
	answerRows, err := contentRepo.ListCannedAnswers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list canned answers: %v", utils.ErrDatabaseError, err)
	}
	categoryRows, err := contentRepo.ListDisasterCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list disaster categories: %v", utils.ErrDatabaseError, err)
	}

	questions := make([]quiz.Question, 0, len(questionRows))
	for _, row := range questionRows {
		questions = append(questions, toQuestion(row))
	}
	if err := quiz.ValidateCatalog(questions); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrCatalogEmpty, err)
	}

	items := make([]checklist.Item, 0, len(itemRows))
	for _, row := range itemRows {
		items = append(items, toChecklistItem(row))
	}
	checklistCatalog, err := checklist.NewCatalog(items)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrCatalogEmpty, err)
	}

	out := &Catalogs{
		Questions: questions,
		Checklist: checklistCatalog,
	}
	for _, row := range contactRows {
		out.Contacts = append(out.Contacts, toContact(row))
	}
	for _, row := range answerRows {
		out.Answers = append(out.Answers, chat.Answer{Keyword: row.Keyword, Text: row.Text})
	}
	for _, row := range categoryRows {
		out.Categories = append(out.Categories, toDisasterCategory(row))
	}
	return out, nil
}

func toQuestion(row db_models.QuizQuestion) quiz.Question {
	return quiz.Question{
		ID:            row.ID,
		Text:          row.Text,
		Options:       row.Options,
		CorrectAnswer: row.CorrectAnswer,
		Explanation:   row.Explanation,
		Category:      row.Category,
		Difficulty:    quiz.Difficulty(row.Difficulty),
	}
}

func toChecklistItem(row db_models.ChecklistItem) checklist.Item {
	return checklist.Item{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		Category:    checklist.Category(row.Category),
		Priority:    checklist.Priority(row.Priority),
	}
}

func toContact(row db_models.EmergencyContact) contacts.Contact {
	return contacts.Contact{
		ID:          row.ID,
		Name:        row.Name,
		Number:      row.Number,
		Description: row.Description,
		Kind:        contacts.Kind(row.Kind),
		Available:   row.Available,
	}
}

func toDisasterCategory(row db_models.DisasterCategory) catalog.DisasterCategory {
	return catalog.DisasterCategory{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		Examples:    row.Examples,
		Trained:     row.Trained,
		Scenarios:   row.Scenarios,
	}
}
