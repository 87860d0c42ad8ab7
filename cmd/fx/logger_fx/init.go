package logger_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"safesteps/internal/config"
)

var Module = fx.Provide(provideLogger)

func provideLogger(lc fx.Lifecycle, cfg *config.Config) (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	if cfg.IsProduction() {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			_ = logger.Sync()
			return nil
		},
	})
	return logger.With(zap.String("service", "safesteps")), nil
}
