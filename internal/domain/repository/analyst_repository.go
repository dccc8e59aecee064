package repository

import (
	"context"

	"turnos-api/internal/domain/entity"

	"gorm.io/gorm"
)

type AnalystRepository interface {
	Create(ctx context.Context, db *gorm.DB, analyst *entity.Analyst) error
	FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Analyst, error)
	Count(ctx context.Context, db *gorm.DB) (int64, error)
}
