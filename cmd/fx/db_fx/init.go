package db_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"safesteps/internal/config"
	"safesteps/internal/infra"
)

var Module = fx.Provide(
	provideDB)

// provideDB opens the catalog store and seeds it before anything reads from it.
func provideDB(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	db, err := infra.InitDatabase(cfg.Database, logger)
	if err != nil {
		return nil, err
	}
	if err := infra.SeedCatalogs(context.Background(), db, logger); err != nil {
		infra.CloseDatabase(db, logger)
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.CloseDatabase(db, logger)
			return nil
		},
	})
	return db, nil
}
