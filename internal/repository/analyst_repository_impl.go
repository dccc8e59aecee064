package repository

import (
	"context"
	"errors"

	"turnos-api/internal/domain/entity"
	domainRepo "turnos-api/internal/domain/repository"

	"gorm.io/gorm"
)

type analystRepository struct{}

func NewAnalystRepository() domainRepo.AnalystRepository {
	return &analystRepository{}
}

func (r *analystRepository) Create(ctx context.Context, db *gorm.DB, analyst *entity.Analyst) error {
	return db.WithContext(ctx).Create(analyst).Error
}

func (r *analystRepository) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Analyst, error) {
	var analyst entity.Analyst
	err := db.WithContext(ctx).Where("id = ?", id).First(&analyst).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &analyst, nil
}

func (r *analystRepository) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).Model(&entity.Analyst{}).Count(&total).Error
	return total, err
}
