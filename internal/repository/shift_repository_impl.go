package repository

import (
	"context"
	"errors"

	"turnos-api/internal/domain/entity"
	domainRepo "turnos-api/internal/domain/repository"

	"gorm.io/gorm"
)

type shiftRepository struct{}

func NewShiftRepository() domainRepo.ShiftRepository {
	return &shiftRepository{}
}

func (r *shiftRepository) Create(ctx context.Context, db *gorm.DB, shift *entity.Shift) error {
	return db.WithContext(ctx).Omit("Analyst", "Project").Create(shift).Error
}

func (r *shiftRepository) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Shift, error) {
	var shift entity.Shift
	err := db.WithContext(ctx).Where("id = ?", id).First(&shift).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &shift, nil
}

func (r *shiftRepository) FindAll(ctx context.Context, db *gorm.DB, filter *entity.ShiftFilter, limit, offset int) ([]entity.Shift, int64, error) {
	var shifts []entity.Shift
	var total int64

	if err := filtered(db.WithContext(ctx), filter).Model(&entity.Shift{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entity.Shift{}, 0, nil
	}

	// id breaks ties so consecutive pages never overlap or skip rows
	err := filtered(db.WithContext(ctx), filter).
		Order("date DESC, start_time DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&shifts).Error
	if err != nil {
		return nil, 0, err
	}

	return shifts, total, nil
}

// filtered applies each non-nil filter field as a conjunctive predicate.
func filtered(query *gorm.DB, filter *entity.ShiftFilter) *gorm.DB {
	if filter == nil {
		return query
	}
	if filter.AnalystID != nil {
		query = query.Where("analyst_id = ?", *filter.AnalystID)
	}
	if filter.ProjectID != nil {
		query = query.Where("project_id = ?", *filter.ProjectID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.DateFrom != nil {
		query = query.Where("date >= ?", entity.DateOnly(*filter.DateFrom))
	}
	if filter.DateTo != nil {
		query = query.Where("date <= ?", entity.DateOnly(*filter.DateTo))
	}
	return query
}
