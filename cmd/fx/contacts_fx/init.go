package contacts_fx

import (
	"go.uber.org/fx"

	"safesteps/internal/catalog"
	"safesteps/internal/services"
)

var Module = fx.Provide(provideContactService)

func provideContactService(catalogs *services.Catalogs) services.ContactServiceInterface {
	return services.NewContactService(catalogs, catalog.QuickTips)
}
