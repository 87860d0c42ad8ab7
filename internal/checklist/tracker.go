// Package checklist tracks which preparedness items a visitor has completed.
package checklist

import (
	"fmt"
	"strings"

	"safesteps/internal/notice"
)

type State struct {
	Completed map[string]struct{}
	Active    *Category
}

func NewState() State {
	return State{Completed: map[string]struct{}{}}
}

func (s State) IsCompleted(id string) bool {
	_, ok := s.Completed[id]
	return ok
}

// Toggle flips id in the completed set. Ids outside the catalog are rejected so the
// completed set always stays a subset of the catalog.
func Toggle(c *Catalog, s State, id string) (State, *notice.Notice, error) {
	if !c.Has(id) {
		return s, nil, fmt.Errorf("%w: %s", ErrUnknownItem, id)
	}
	next := s.clone()
	if _, done := next.Completed[id]; done {
		delete(next.Completed, id)
		return next, notice.New(notice.Success, "Item unchecked"), nil
	}
	next.Completed[id] = struct{}{}
	return next, notice.New(notice.Success, "Great job! Item completed"), nil
}

// Reset empties the completed set and keeps the active filter.
func Reset(s State) (State, *notice.Notice) {
	next := State{Completed: map[string]struct{}{}, Active: s.Active}
	return next, notice.New(notice.Success, "Checklist reset!")
}

func SetFilter(s State, category *Category) State {
	next := s.clone()
	if category == nil {
		next.Active = nil
		return next
	}
	cat := *category
	next.Active = &cat
	return next
}

// Progress is the completed share of the whole catalog, as an unrounded percentage.
func Progress(c *Catalog, s State) float64 {
	if c.Len() == 0 {
		return 0
	}
	return float64(len(s.Completed)) * 100 / float64(c.Len())
}

func FullyPrepared(c *Catalog, s State) bool {
	return c.Len() > 0 && len(s.Completed) == c.Len()
}

type CategoryCount struct {
	Category  Category
	Name      string
	Completed int
	Total     int
}

func CategoryCounts(c *Catalog, s State) []CategoryCount {
	out := make([]CategoryCount, 0, len(Categories))
	for _, info := range Categories {
		cat := info.ID
		cc := CategoryCount{Category: cat, Name: info.Name}
		for _, it := range c.Filter(&cat) {
			cc.Total++
			if s.IsCompleted(it.ID) {
				cc.Completed++
			}
		}
		out = append(out, cc)
	}
	return out
}

const ExportFilename = "safety-checklist.txt"

// ExportText renders the full catalog grouped by category. Completion state is not
// reflected: every line carries an empty box.
func ExportText(c *Catalog) string {
	sections := make([]string, 0, len(Categories))
	for _, info := range Categories {
		cat := info.ID
		lines := make([]string, 0)
		for _, it := range c.Filter(&cat) {
			lines = append(lines, fmt.Sprintf("☐ %s - %s", it.Title, it.Description))
		}
		sections = append(sections, strings.ToUpper(info.Name)+"\n  "+strings.Join(lines, "\n  "))
	}
	return "SAFETY PREPAREDNESS CHECKLIST\n\n" + strings.Join(sections, "\n\n")
}

func (s State) clone() State {
	next := State{Completed: make(map[string]struct{}, len(s.Completed))}
	for id := range s.Completed {
		next.Completed[id] = struct{}{}
	}
	if s.Active != nil {
		cat := *s.Active
		next.Active = &cat
	}
	return next
}
