package infra

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"tourcms/internal/config"
	"tourcms/internal/models/db_models"
)

func InitPostgresql(cfg config.DatabaseConfig, log *zap.Logger) (*gorm.DB, error) {
	connectionPool, err := gorm.Open(postgres.Open(cfg.DSN), NewGormConfig(log))
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	sqlDB, err := connectionPool.DB()
	if err != nil {
		return nil, fmt.Errorf("get database instance: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}

	log.Info("connected to PostgreSQL")
	return connectionPool, nil
}

// NewGormConfig is shared by the PostgreSQL pool and the in-memory test
// databases so both translate driver errors the same way.
func NewGormConfig(log *zap.Logger) *gorm.Config {
	return &gorm.Config{
		Logger:         NewGormLogger(log),
		TranslateError: true,
	}
}

// Migrate creates or updates every table the API serves.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&db_models.User{},
		&db_models.Region{},
		&db_models.Hotel{},
		&db_models.Comfort{},
		&db_models.Event{},
		&db_models.Place{},
		&db_models.InfoPlace{},
		&db_models.OneDayTour{},
		&db_models.OneDayInfo{},
		&db_models.MultiDayTour{},
		&db_models.MultiDayInfo{},
		&db_models.AutorTour{},
		&db_models.AutorDayInfo{},
	)
}

func ClosePostgresql(db *gorm.DB, log *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Error("get database instance", zap.Error(err))
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Error("close database connection", zap.Error(err))
	} else {
		log.Info("PostgreSQL database connection closed successfully")
	}
}
