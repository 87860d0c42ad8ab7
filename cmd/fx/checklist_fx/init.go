package checklist_fx

import (
	"go.uber.org/fx"

	"safesteps/internal/checklist"
	"safesteps/internal/services"
	mem "safesteps/pkg/memcache"
	"safesteps/pkg/metrics"
)

var Module = fx.Provide(provideChecklistService)

func provideChecklistService(
	catalogs *services.Catalogs,
	sessions mem.SessionStore[checklist.State],
	collector *metrics.Collector,
) services.ChecklistServiceInterface {
	return services.NewChecklistService(catalogs, sessions, collector)
}
