package database

import (
	"fmt"

	"turnos-api/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewSQLiteConnection opens a SQLite database with foreign keys enforced.
// path may be ":memory:" for a throwaway database.
func NewSQLiteConnection(path string, gormCfg *gorm.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)
	if path == ":memory:" {
		dsn = "file::memory:?_foreign_keys=on"
	}

	db, err := gorm.Open(sqlite.Open(dsn), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// SQLite allows a single writer; one connection also keeps an
	// in-memory database alive and shared.
	sqlDB.SetMaxOpenConns(1)

	logrus.Infof("Successfully opened SQLite database at %s", path)

	return db, nil
}

// AutoMigrate creates the schema for SQLite. PostgreSQL uses the versioned
// migrations instead.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.Analyst{},
		&entity.Project{},
		&entity.Shift{},
		&entity.AuditLog{},
	)
}
