package repository

import (
	"context"

	"turnos-api/internal/domain/entity"

	"gorm.io/gorm"
)

type ShiftRepository interface {
	Create(ctx context.Context, db *gorm.DB, shift *entity.Shift) error
	FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Shift, error)
	// FindAll returns one page of shifts ordered by date DESC, start_time DESC,
	// id DESC together with the number of rows matching filter before paging.
	FindAll(ctx context.Context, db *gorm.DB, filter *entity.ShiftFilter, limit, offset int) ([]entity.Shift, int64, error)
}
