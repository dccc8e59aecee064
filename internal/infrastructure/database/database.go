package database

import (
	"fmt"

	"turnos-api/config"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewConnection opens the database selected by cfg.Driver. SQLite schemas are
// created on the fly; PostgreSQL expects `migrate up` to have been run.
func NewConnection(cfg config.DBConfig, env string) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: logger.Default.LogMode(gormLogLevel(env)),
	}

	switch cfg.Driver {
	case config.DBDriverPostgres:
		return NewPostgresConnection(cfg, gormCfg)
	case config.DBDriverSQLite:
		db, err := NewSQLiteConnection(cfg.SQLitePath, gormCfg)
		if err != nil {
			return nil, err
		}
		if err := AutoMigrate(db); err != nil {
			return nil, fmt.Errorf("failed to migrate sqlite schema: %w", err)
		}
		return db, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func gormLogLevel(env string) logger.LogLevel {
	if env == "development" {
		return logger.Info
	}
	return logger.Warn
}
