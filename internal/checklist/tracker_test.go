package checklist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"safesteps/internal/catalog"
	"safesteps/internal/checklist"
)

func newCatalog(t *testing.T) *checklist.Catalog {
	t.Helper()
	c, err := checklist.NewCatalog(catalog.ChecklistItems)
	require.NoError(t, err)
	return c
}

func TestToggle(t *testing.T) {
	c := newCatalog(t)
	s := checklist.NewState()

	s, n, err := checklist.Toggle(c, s, "radio")
	require.NoError(t, err)
	assert.Equal(t, "Great job! Item completed", n.Message)
	assert.True(t, s.IsCompleted("radio"))

	s, n, err = checklist.Toggle(c, s, "radio")
	require.NoError(t, err)
	assert.Equal(t, "Item unchecked", n.Message)
	assert.False(t, s.IsCompleted("radio"))
	assert.Empty(t, s.Completed)
}

func TestDoubleToggleRestoresMembership(t *testing.T) {
	c := newCatalog(t)
	s := checklist.NewState()
	s, _, _ = checklist.Toggle(c, s, "fuel")
	s, _, _ = checklist.Toggle(c, s, "first-aid")
	before := len(s.Completed)

	for _, id := range []string{"fuel", "medications"} {
		after, _, err := checklist.Toggle(c, s, id)
		require.NoError(t, err)
		after, _, err = checklist.Toggle(c, after, id)
		require.NoError(t, err)
		assert.Equal(t, s.Completed, after.Completed)
		assert.Len(t, after.Completed, before)
	}
}

func TestToggleUnknownItem(t *testing.T) {
	c := newCatalog(t)
	s := checklist.NewState()

	next, n, err := checklist.Toggle(c, s, "jetpack")
	assert.ErrorIs(t, err, checklist.ErrUnknownItem)
	assert.Nil(t, n)
	assert.Empty(t, next.Completed)
}

func TestToggleDoesNotMutateInput(t *testing.T) {
	c := newCatalog(t)
	s := checklist.NewState()
	_, _, _ = checklist.Toggle(c, s, "fuel")
	assert.Empty(t, s.Completed)
}

func TestProgress(t *testing.T) {
	c := newCatalog(t)
	require.Equal(t, 15, c.Len())

	s := checklist.NewState()
	assert.Equal(t, 0.0, checklist.Progress(c, s))
	assert.False(t, checklist.FullyPrepared(c, s))

	for _, it := range c.Items() {
		var err error
		s, _, err = checklist.Toggle(c, s, it.ID)
		require.NoError(t, err)
	}
	assert.Equal(t, 100.0, checklist.Progress(c, s))
	assert.True(t, checklist.FullyPrepared(c, s))

	s, n := checklist.Reset(s)
	assert.Equal(t, "Checklist reset!", n.Message)
	assert.Equal(t, 0.0, checklist.Progress(c, s))
}

func TestResetKeepsFilter(t *testing.T) {
	c := newCatalog(t)
	kit := checklist.Kit
	s := checklist.SetFilter(checklist.NewState(), &kit)
	s, _, _ = checklist.Toggle(c, s, "radio")

	s, _ = checklist.Reset(s)
	require.NotNil(t, s.Active)
	assert.Equal(t, checklist.Kit, *s.Active)
	assert.Empty(t, s.Completed)
}

func TestFilter(t *testing.T) {
	c := newCatalog(t)

	tests := []struct {
		category checklist.Category
		want     int
	}{
		{checklist.Home, 4},
		{checklist.Kit, 6},
		{checklist.Vehicle, 2},
		{checklist.Digital, 3},
	}
	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			cat := tt.category
			items := c.Filter(&cat)
			assert.Len(t, items, tt.want)
			for _, it := range items {
				assert.Equal(t, tt.category, it.Category)
			}
		})
	}

	assert.Len(t, c.Filter(nil), 15)
}

func TestCategoryCounts(t *testing.T) {
	c := newCatalog(t)
	s := checklist.NewState()
	s, _, _ = checklist.Toggle(c, s, "fuel")
	s, _, _ = checklist.Toggle(c, s, "car-kit")
	s, _, _ = checklist.Toggle(c, s, "radio")

	counts := checklist.CategoryCounts(c, s)
	require.Len(t, counts, 4)
	assert.Equal(t, checklist.CategoryCount{Category: checklist.Home, Name: "Home Safety", Completed: 0, Total: 4}, counts[0])
	assert.Equal(t, checklist.CategoryCount{Category: checklist.Kit, Name: "Emergency Kit", Completed: 1, Total: 6}, counts[1])
	assert.Equal(t, checklist.CategoryCount{Category: checklist.Vehicle, Name: "Vehicle", Completed: 2, Total: 2}, counts[2])
}

func TestExportText(t *testing.T) {
	c := newCatalog(t)
	out := checklist.ExportText(c)

	assert.Contains(t, out, "SAFETY PREPAREDNESS CHECKLIST\n\nHOME SAFETY\n  ☐ Install smoke detectors - Test monthly, replace batteries annually\n  ☐ Fire extinguisher accessible")
	assert.Contains(t, out, "\n\nVEHICLE\n  ☐ Vehicle emergency kit - Jumper cables, tire repair, blanket\n  ☐ Keep fuel tank half full - Always maintain minimum fuel level\n\nDIGITAL\n")
	assert.True(t, len(out) > 0 && out[len(out)-1] != '\n')
}

func TestNewCatalogRejectsBadItems(t *testing.T) {
	_, err := checklist.NewCatalog([]checklist.Item{
		{ID: "a", Category: checklist.Home, Priority: checklist.Low},
		{ID: "a", Category: checklist.Home, Priority: checklist.Low},
	})
	assert.Error(t, err)

	_, err = checklist.NewCatalog([]checklist.Item{{ID: "a", Category: "garage", Priority: checklist.Low}})
	assert.ErrorIs(t, err, checklist.ErrUnknownCategory)

	_, err = checklist.NewCatalog([]checklist.Item{{ID: "a", Category: checklist.Kit, Priority: "urgent"}})
	assert.Error(t, err)
}

func TestParseCategory(t *testing.T) {
	cat, err := checklist.ParseCategory("vehicle")
	require.NoError(t, err)
	assert.Equal(t, "Vehicle", cat.Name())

	_, err = checklist.ParseCategory("VEHICLE")
	assert.ErrorIs(t, err, checklist.ErrUnknownCategory)
}
