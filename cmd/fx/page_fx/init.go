package page_fx

import (
	"go.uber.org/fx"

	"safesteps/internal/catalog"
	"safesteps/internal/services"
)

var Module = fx.Provide(providePageService)

func providePageService(catalogs *services.Catalogs) services.PageServiceInterface {
	return services.NewPageService(catalogs, catalog.QuickQuestions)
}
