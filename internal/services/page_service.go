package services

import (
	"context"

	"safesteps/internal/catalog"
	"safesteps/internal/models/response_models"
)

type PageServiceInterface interface {
	Page(ctx context.Context) *response_models.PageResponse
	Categories(ctx context.Context) []response_models.DisasterCategoryView
}

type PageService struct {
	categories     []catalog.DisasterCategory
	quickQuestions []string
}

func NewPageService(catalogs *Catalogs, quickQuestions []string) PageServiceInterface {
	return &PageService{categories: catalogs.Categories, quickQuestions: quickQuestions}
}

func (s *PageService) Page(ctx context.Context) *response_models.PageResponse {
	return &response_models.PageResponse{
		Hero: response_models.HeroView{
			Badge:    catalog.PageHero.Badge,
			Headline: catalog.PageHero.Headline,
			Tagline:  catalog.PageHero.Tagline,
			Stats:    toStatViews(catalog.PageHero.Stats),
		},
		Categories:     s.Categories(ctx),
		QuickQuestions: append([]string(nil), s.quickQuestions...),
		FooterStats:    toStatViews(catalog.FooterStats),
		Sections:       catalog.Sections,
	}
}

func (s *PageService) Categories(ctx context.Context) []response_models.DisasterCategoryView {
	out := make([]response_models.DisasterCategoryView, 0, len(s.categories))
	for _, c := range s.categories {
		out = append(out, response_models.DisasterCategoryView{
			ID:          c.ID,
			Title:       c.Title,
			Description: c.Description,
			Examples:    c.Examples,
			Trained:     c.Trained,
			Scenarios:   c.Scenarios,
		})
	}
	return out
}

func toStatViews(stats []catalog.Stat) []response_models.StatView {
	out := make([]response_models.StatView, 0, len(stats))
	for _, st := range stats {
		out = append(out, response_models.StatView{Value: st.Value, Label: st.Label})
	}
	return out
}
