package metrics_fx

import (
	"go.uber.org/fx"

	"safesteps/pkg/metrics"
)

var Module = fx.Provide(provideCollector)

func provideCollector() *metrics.Collector {
	return metrics.NewCollector("safesteps")
}
