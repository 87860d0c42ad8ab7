package repositories

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"safesteps/internal/catalog"
	"safesteps/internal/config"
	"safesteps/internal/infra"
)

func newSeededDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	cfg := config.DatabaseConfig{Driver: "sqlite", DSN: "file:" + name + "?mode=memory&cache=shared"}

	db, err := infra.InitDatabase(cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { infra.CloseDatabase(db, zap.NewNop()) })

	require.NoError(t, infra.SeedCatalogs(context.Background(), db, zap.NewNop()))
	return db
}

func TestQuizRepository(t *testing.T) {
	repo := NewQuizRepository(newSeededDB(t))
	ctx := context.Background()

	questions, err := repo.ListQuestions(ctx)
	require.NoError(t, err)
	require.Len(t, questions, len(catalog.QuizQuestions))
	for i, q := range questions {
		assert.Equal(t, catalog.QuizQuestions[i].ID, q.ID)
		assert.Equal(t, catalog.QuizQuestions[i].Options, q.Options)
		assert.Equal(t, catalog.QuizQuestions[i].CorrectAnswer, q.CorrectAnswer)
	}

	q, err := repo.GetQuestionByID(ctx, "fire1")
	require.NoError(t, err)
	require.NotNil(t, q)
	assert.Equal(t, "Stop, drop, and roll", q.Options[1])

	missing, err := repo.GetQuestionByID(ctx, "nope")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestChecklistRepository(t *testing.T) {
	repo := NewChecklistRepository(newSeededDB(t))
	ctx := context.Background()

	items, err := repo.ListItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 15)
	assert.Equal(t, "smoke-detector", items[0].ID)
	assert.Equal(t, "emergency-apps", items[14].ID)

	tests := []struct {
		category string
		want     int
	}{
		{"home", 4},
		{"kit", 6},
		{"vehicle", 2},
		{"digital", 3},
		{"garage", 0},
	}
	perCategory := map[string]int{}
	for _, it := range items {
		perCategory[it.Category]++
	}
	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			assert.Equal(t, tt.want, perCategory[tt.category])
		})
	}
}

func TestContactRepository(t *testing.T) {
	repo := NewContactRepository(newSeededDB(t))

	contacts, err := repo.ListContacts(context.Background())
	require.NoError(t, err)
	require.Len(t, contacts, len(catalog.EmergencyContacts))
	assert.Equal(t, "Emergency Services", contacts[0].Name)
	assert.Equal(t, "101", contacts[4].Number)
}

func TestContentRepository(t *testing.T) {
	repo := NewContentRepository(newSeededDB(t))
	ctx := context.Background()

	answers, err := repo.ListCannedAnswers(ctx)
	require.NoError(t, err)
	require.Len(t, answers, 5)
	keywords := make([]string, len(answers))
	for i, a := range answers {
		keywords[i] = a.Keyword
	}
	assert.Equal(t, []string{"earthquake", "emergency kit", "heart attack", "tsunami", "fire safety"}, keywords)

	categories, err := repo.ListDisasterCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 3)
	assert.Equal(t, []string{"Earthquakes", "Tsunamis", "Hurricanes", "Floods", "Wildfires"}, categories[0].Examples)

	c, err := repo.GetDisasterCategoryByID(ctx, "personal")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "Personal Emergencies", c.Title)
}

func TestSeedCatalogs_Idempotent(t *testing.T) {
	db := newSeededDB(t)
	require.NoError(t, infra.SeedCatalogs(context.Background(), db, zap.NewNop()))

	var count int64
	require.NoError(t, db.Table("checklist_items").Count(&count).Error)
	assert.EqualValues(t, 15, count)
}
