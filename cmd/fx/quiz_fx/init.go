package quiz_fx

import (
	"go.uber.org/fx"

	"safesteps/internal/quiz"
	"safesteps/internal/services"
	mem "safesteps/pkg/memcache"
	"safesteps/pkg/metrics"
)

var Module = fx.Provide(provideQuizService)

func provideQuizService(
	catalogs *services.Catalogs,
	sessions mem.SessionStore[quiz.Session],
	collector *metrics.Collector,
) services.QuizServiceInterface {
	return services.NewQuizService(catalogs, sessions, collector)
}
