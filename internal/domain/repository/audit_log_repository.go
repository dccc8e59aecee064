package repository

import (
	"context"

	"turnos-api/internal/domain/entity"

	"gorm.io/gorm"
)

type AuditLogRepository interface {
	Create(ctx context.Context, db *gorm.DB, log *entity.AuditLog) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.AuditLog, error)
	// FindAll returns entries newest first; an empty action matches every entry.
	FindAll(ctx context.Context, db *gorm.DB, action string, limit int) ([]entity.AuditLog, error)
}
