package infra

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"safesteps/internal/config"
	"safesteps/internal/models/db_models"
)

const sharedMemoryDSN = "file::memory:?cache=shared"

// InitDatabase opens the catalog store and migrates its tables. SQLite with DSN
// "memory" (or empty) gives a shared in-memory database that lives as long as the
// process.
func InitDatabase(cfg config.DatabaseConfig, logger *zap.Logger) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: gormlogger.New(zap.NewStdLog(logger.Named("gorm")), gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	}

	var dialector gorm.Dialector
	switch cfg.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.DSN)
	default:
		dsn := cfg.DSN
		if dsn == "" || dsn == "memory" {
			dsn = sharedMemoryDSN
		}
		dialector = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", cfg.Driver, err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	logger.Info("Database connection established", zap.String("driver", cfg.Driver))
	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&db_models.QuizQuestion{},
		&db_models.ChecklistItem{},
		&db_models.EmergencyContact{},
		&db_models.CannedAnswer{},
		&db_models.DisasterCategory{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate catalog tables: %w", err)
	}
	return nil
}

func CloseDatabase(db *gorm.DB, logger *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("Error getting database instance", zap.Error(err))
		return
	}

	if err := sqlDB.Close(); err != nil {
		logger.Error("Error closing database connection", zap.Error(err))
	} else {
		logger.Info("Database connection closed successfully")
	}
}
