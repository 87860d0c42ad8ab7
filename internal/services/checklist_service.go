package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"

	"safesteps/internal/checklist"
	"safesteps/internal/models/response_models"
	"safesteps/internal/notice"
	mem "safesteps/pkg/memcache"
	"safesteps/pkg/utils"
)

type ChecklistServiceInterface interface {
	StartSession(ctx context.Context) (*response_models.ChecklistResponse, error)
	// GetSession renders the session. A non-empty category narrows the item list for
	// this response only; the session's own filter is left as is.
	GetSession(ctx context.Context, sessionID, category string) (*response_models.ChecklistResponse, error)
	ToggleItem(ctx context.Context, sessionID, itemID string) (*response_models.ChecklistResponse, error)
	Reset(ctx context.Context, sessionID string) (*response_models.ChecklistResponse, error)
	SetFilter(ctx context.Context, sessionID, category string) (*response_models.ChecklistResponse, error)
	Export(ctx context.Context) (filename string, body string)
}

// ChecklistObserver is told about every toggle.
type ChecklistObserver interface {
	ChecklistToggled(category string, completed bool)
}

type ChecklistService struct {
	catalog  *checklist.Catalog
	sessions mem.SessionStore[checklist.State]
	observer ChecklistObserver
}

func NewChecklistService(catalogs *Catalogs, sessions mem.SessionStore[checklist.State], observer ChecklistObserver) ChecklistServiceInterface {
	return &ChecklistService{
		catalog:  catalogs.Checklist,
		sessions: sessions,
		observer: observer,
	}
}

func (s *ChecklistService) StartSession(ctx context.Context) (*response_models.ChecklistResponse, error) {
	id := uuid.NewString()
	state := checklist.NewState()
	s.sessions.Create(id, state)
	return s.view(id, state, state.Active, nil), nil
}

func (s *ChecklistService) GetSession(ctx context.Context, sessionID, category string) (*response_models.ChecklistResponse, error) {
	filter, err := parseFilter(category)
	if err != nil {
		return nil, err
	}
	state, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", utils.ErrSessionNotFound, sessionID)
	}
	if filter == nil {
		filter = state.Active
	}
	return s.view(sessionID, state, filter, nil), nil
}

func (s *ChecklistService) ToggleItem(ctx context.Context, sessionID, itemID string) (*response_models.ChecklistResponse, error) {
	var (
		n         *notice.Notice
		toggleErr error
	)
	state, ok := s.sessions.Update(sessionID, func(cur checklist.State) checklist.State {
		next, out, err := checklist.Toggle(s.catalog, cur, itemID)
		n, toggleErr = out, err
		return next
	})
	if !ok {
		return nil, fmt.Errorf("%w: %s", utils.ErrSessionNotFound, sessionID)
	}
	if toggleErr != nil {
		if errors.Is(toggleErr, checklist.ErrUnknownItem) {
			return nil, fmt.Errorf("%w: %s", utils.ErrUnknownChecklistItem, itemID)
		}
		return nil, toggleErr
	}

	if s.observer != nil {
		item, _ := s.catalog.Get(itemID)
		s.observer.ChecklistToggled(string(item.Category), state.IsCompleted(itemID))
	}
	return s.view(sessionID, state, state.Active, n), nil
}

func (s *ChecklistService) Reset(ctx context.Context, sessionID string) (*response_models.ChecklistResponse, error) {
	var n *notice.Notice
	state, ok := s.sessions.Update(sessionID, func(cur checklist.State) checklist.State {
		next, out := checklist.Reset(cur)
		n = out
		return next
	})
	if !ok {
		return nil, fmt.Errorf("%w: %s", utils.ErrSessionNotFound, sessionID)
	}
	return s.view(sessionID, state, state.Active, n), nil
}

func (s *ChecklistService) SetFilter(ctx context.Context, sessionID, category string) (*response_models.ChecklistResponse, error) {
	filter, err := parseFilter(category)
	if err != nil {
		return nil, err
	}
	state, ok := s.sessions.Update(sessionID, func(cur checklist.State) checklist.State {
		return checklist.SetFilter(cur, filter)
	})
	if !ok {
		return nil, fmt.Errorf("%w: %s", utils.ErrSessionNotFound, sessionID)
	}
	return s.view(sessionID, state, state.Active, nil), nil
}

func (s *ChecklistService) Export(ctx context.Context) (string, string) {
	return checklist.ExportFilename, checklist.ExportText(s.catalog)
}

func parseFilter(category string) (*checklist.Category, error) {
	if category == "" {
		return nil, nil
	}
	c, err := checklist.ParseCategory(category)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", utils.ErrInvalidCategory, category)
	}
	return &c, nil
}

func (s *ChecklistService) view(sessionID string, state checklist.State, filter *checklist.Category, n *notice.Notice) *response_models.ChecklistResponse {
	progress := checklist.Progress(s.catalog, state)
	resp := &response_models.ChecklistResponse{
		SessionID:     sessionID,
		Completed:     len(state.Completed),
		Total:         s.catalog.Len(),
		Progress:      progress,
		ProgressLabel: fmt.Sprintf("%d%%", int(math.Round(progress))),
		FullyPrepared: checklist.FullyPrepared(s.catalog, state),
		Notice:        n,
	}
	if state.Active != nil {
		active := string(*state.Active)
		resp.ActiveCategory = &active
	}

	items := s.catalog.Filter(filter)
	resp.Items = make([]response_models.ChecklistItemView, 0, len(items))
	for _, it := range items {
		resp.Items = append(resp.Items, response_models.ChecklistItemView{
			ID:          it.ID,
			Title:       it.Title,
			Description: it.Description,
			Category:    string(it.Category),
			Priority:    string(it.Priority),
			Completed:   state.IsCompleted(it.ID),
		})
	}

	for _, cc := range checklist.CategoryCounts(s.catalog, state) {
		resp.Categories = append(resp.Categories, response_models.CategoryCountView{
			ID:        string(cc.Category),
			Name:      cc.Name,
			Completed: cc.Completed,
			Total:     cc.Total,
		})
	}
	return resp
}
