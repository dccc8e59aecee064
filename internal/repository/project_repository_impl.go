package repository

import (
	"context"
	"errors"

	"turnos-api/internal/domain/entity"
	domainRepo "turnos-api/internal/domain/repository"

	"gorm.io/gorm"
)

type projectRepository struct{}

func NewProjectRepository() domainRepo.ProjectRepository {
	return &projectRepository{}
}

func (r *projectRepository) Create(ctx context.Context, db *gorm.DB, project *entity.Project) error {
	return db.WithContext(ctx).Create(project).Error
}

func (r *projectRepository) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Project, error) {
	var project entity.Project
	err := db.WithContext(ctx).Where("id = ?", id).First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &project, nil
}

func (r *projectRepository) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).Model(&entity.Project{}).Count(&total).Error
	return total, err
}
