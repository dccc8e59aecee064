package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"turnos-api/internal/domain/entity"
	"turnos-api/internal/infrastructure/database"
	"turnos-api/internal/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ErrSeedConflict means another writer filled the tables while seeding.
var ErrSeedConflict = errors.New("seed data already present")

func demoAnalysts() []entity.Analyst {
	first, second := "Isabelly Aquino", "Analista 2"
	return []entity.Analyst{
		{Name: &first, Email: "isabelly@linx.com", IsActive: true},
		{Name: &second, Email: "analista2@linx.com", IsActive: true},
	}
}

func demoProjects() []entity.Project {
	return []entity.Project{
		{Name: "Projeto Xavier", IsActive: true},
		{Name: "Portal do Cliente", IsActive: true},
	}
}

// Seed inserts the demo analysts and projects into empty tables. Tables that
// already hold rows are left alone, so running it twice is harmless.
func Seed(ctx context.Context, db *gorm.DB, log *logrus.Logger) error {
	analystRepo := repository.NewAnalystRepository()
	projectRepo := repository.NewProjectRepository()

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		analysts, err := analystRepo.Count(ctx, tx)
		if err != nil {
			return fmt.Errorf("count analysts: %w", err)
		}
		if analysts == 0 {
			for _, a := range demoAnalysts() {
				if err := analystRepo.Create(ctx, tx, &a); err != nil {
					if database.IsUniqueViolation(err) {
						return fmt.Errorf("%w: analyst %s", ErrSeedConflict, a.Email)
					}
					return fmt.Errorf("seed analyst %s: %w", a.Email, err)
				}
				log.WithField("analyst_id", a.ID).Infof("Seeded analyst %s", a.Email)
			}
		} else {
			log.Infof("Analysts already present (%d), skipping", analysts)
		}

		projects, err := projectRepo.Count(ctx, tx)
		if err != nil {
			return fmt.Errorf("count projects: %w", err)
		}
		if projects == 0 {
			for _, p := range demoProjects() {
				if err := projectRepo.Create(ctx, tx, &p); err != nil {
					return fmt.Errorf("seed project %s: %w", p.Name, err)
				}
				log.WithField("project_id", p.ID).Infof("Seeded project %s", p.Name)
			}
		} else {
			log.Infof("Projects already present (%d), skipping", projects)
		}

		return nil
	})
}
