package database

import (
	"fmt"

	"github.com/you/streamsvc/internal/infrastructure/repositories"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open creates a new database connection with production-ready settings
func Open(dsn string, log *zap.Logger) (*gorm.DB, error) {
	config := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	}

	db, err := gorm.Open(postgres.Open(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	log.Info("database connected")
	return db, nil
}

// AutoMigrate creates or updates every application table
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(repositories.Models()...); err != nil {
		return fmt.Errorf("failed to migrate tables: %w", err)
	}
	return nil
}

// Close releases the connection pool
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
