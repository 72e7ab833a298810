// Package db opens the configured database and migrates the models.
package db

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/devfolio/devfolio/internal/config"
	"github.com/devfolio/devfolio/internal/db/dsn"
	"github.com/devfolio/devfolio/internal/db/models"
)

// Dialector returns the gorm dialector for the configured engine.
func Dialector(dbCfg *config.DB) (gorm.Dialector, error) {
	switch dbCfg.GormEngine {
	case config.EngineMySQL:
		return mysql.Open(dsn.MySQL(dbCfg)), nil
	case config.EnginePostgres:
		return postgres.Open(dsn.Postgres(dbCfg)), nil
	case config.EngineSQLite, "":
		return sqlite.Open(dbCfg.Path), nil
	default:
		return nil, fmt.Errorf("%w: %s", config.ErrUnknownGormEngine, dbCfg.GormEngine)
	}
}

// Open connects to the configured database. SQL statements are logged in dev mode only.
func Open(dbCfg *config.DB, devMode bool) (*gorm.DB, error) {
	dialector, err := Dialector(dbCfg)
	if err != nil {
		return nil, err
	}

	logLevel := logger.Silent
	if devMode {
		logLevel = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// sqlite allows a single writer, an in-memory database exists per connection
	if dbCfg.GormEngine == config.EngineSQLite || dbCfg.GormEngine == "" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get database instance: %w", err)
		}

		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}

// Migrate creates or updates the tables of all models.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.SiteSettings{},
		&models.HomePage{},
		&models.ContactSubmission{},
		&models.User{},
	); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	return nil
}
