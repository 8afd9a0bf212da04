package config

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"mybusnow/internal/models"
)

// InitDB opens the postgres connection and migrates the schema.
func InitDB(cfg DatabaseConfig, logLevel gormlogger.LogLevel) (*gorm.DB, error) {
	return OpenDB(postgres.Open(cfg.DSN()), logLevel)
}

// OpenDB connects through dialector with driver errors translated to gorm
// sentinels, then migrates the schema.
func OpenDB(dialector gorm.Dialector, logLevel gormlogger.LogLevel) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormlogger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(&models.Route{}, &models.Stop{}, &models.Bus{}, &models.User{})
	if err != nil {
		return nil, fmt.Errorf("auto-migration failed: %w", err)
	}

	return db, nil
}
