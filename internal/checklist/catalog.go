package checklist

import (
	"errors"
	"fmt"
)

type Category string

const (
	Home    Category = "home"
	Kit     Category = "kit"
	Vehicle Category = "vehicle"
	Digital Category = "digital"
)

type Priority string

const (
	High   Priority = "high"
	Medium Priority = "medium"
	Low    Priority = "low"
)

type CategoryInfo struct {
	ID   Category
	Name string
}

// Categories is the display order used by the filter bar and the export.
var Categories = []CategoryInfo{
	{ID: Home, Name: "Home Safety"},
	{ID: Kit, Name: "Emergency Kit"},
	{ID: Vehicle, Name: "Vehicle"},
	{ID: Digital, Name: "Digital"},
}

var (
	ErrUnknownItem     = errors.New("unknown checklist item")
	ErrUnknownCategory = errors.New("unknown checklist category")
)

func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if string(c.ID) == s {
			return c.ID, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

func (c Category) Name() string {
	for _, info := range Categories {
		if info.ID == c {
			return info.Name
		}
	}
	return string(c)
}

func (p Priority) Valid() bool {
	switch p {
	case High, Medium, Low:
		return true
	}
	return false
}

type Item struct {
	ID          string
	Title       string
	Description string
	Category    Category
	Priority    Priority
}

// Catalog is an immutable, ordered set of checklist items.
type Catalog struct {
	items []Item
	index map[string]int
}

func NewCatalog(items []Item) (*Catalog, error) {
	c := &Catalog{
		items: append([]Item(nil), items...),
		index: make(map[string]int, len(items)),
	}
	for i, it := range items {
		if it.ID == "" {
			return nil, fmt.Errorf("checklist item %d has no id", i)
		}
		if _, dup := c.index[it.ID]; dup {
			return nil, fmt.Errorf("duplicate checklist item %s", it.ID)
		}
		if _, err := ParseCategory(string(it.Category)); err != nil {
			return nil, fmt.Errorf("checklist item %s: %w", it.ID, err)
		}
		if !it.Priority.Valid() {
			return nil, fmt.Errorf("checklist item %s: unknown priority %q", it.ID, it.Priority)
		}
		c.index[it.ID] = i
	}
	return c, nil
}

func (c *Catalog) Items() []Item {
	return append([]Item(nil), c.items...)
}

func (c *Catalog) Len() int { return len(c.items) }

func (c *Catalog) Has(id string) bool {
	_, ok := c.index[id]
	return ok
}

func (c *Catalog) Get(id string) (Item, bool) {
	i, ok := c.index[id]
	if !ok {
		return Item{}, false
	}
	return c.items[i], true
}

// Filter returns the items in category, or every item when category is nil.
func (c *Catalog) Filter(category *Category) []Item {
	if category == nil {
		return c.Items()
	}
	var out []Item
	for _, it := range c.items {
		if it.Category == *category {
			out = append(out, it)
		}
	}
	return out
}
