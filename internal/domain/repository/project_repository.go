package repository

import (
	"context"

	"turnos-api/internal/domain/entity"

	"gorm.io/gorm"
)

type ProjectRepository interface {
	Create(ctx context.Context, db *gorm.DB, project *entity.Project) error
	FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Project, error)
	Count(ctx context.Context, db *gorm.DB) (int64, error)
}
