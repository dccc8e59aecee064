package usecase_test

import (
	"context"
	"io"
	"testing"
	"time"

	"turnos-api/internal/domain/entity"
	"turnos-api/internal/infrastructure/database"
	"turnos-api/internal/repository"
	"turnos-api/internal/service"
	"turnos-api/internal/usecase"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Seeded reference ids
const (
	activeAnalystID   = 1
	inactiveAnalystID = 2
	activeProjectID   = 1
	inactiveProjectID = 2
	missingID         = 999
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// newTestDB opens a private in-memory SQLite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.NewSQLiteConnection(":memory:", &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
	return db
}

type fixture struct {
	db      *gorm.DB
	usecase usecase.ShiftUsecase
}

// newFixture wires the usecase to real repositories on a seeded database:
// analyst 1 active, analyst 2 inactive, project 1 active, project 2 inactive.
func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := newTestDB(t)
	ctx := context.Background()

	analystRepo := repository.NewAnalystRepository()
	projectRepo := repository.NewProjectRepository()
	name := "Isabelly Aquino"
	require.NoError(t, analystRepo.Create(ctx, db, &entity.Analyst{Name: &name, Email: "isabelly@example.com", IsActive: true}))
	require.NoError(t, analystRepo.Create(ctx, db, &entity.Analyst{Email: "former@example.com", IsActive: false}))
	require.NoError(t, projectRepo.Create(ctx, db, &entity.Project{Name: "Projeto Xavier", IsActive: true}))
	require.NoError(t, projectRepo.Create(ctx, db, &entity.Project{Name: "Legacy Portal", IsActive: false}))

	log := quietLogger()
	uc := usecase.NewShiftUsecase(
		db,
		log,
		repository.NewShiftRepository(),
		analystRepo,
		projectRepo,
		service.NewAuditService(log, repository.NewAuditLogRepository()),
		service.NewShiftListCache(nil, time.Minute, log),
	)

	return &fixture{db: db, usecase: uc}
}

// insertShift stores a shift directly, bypassing validation.
func (f *fixture) insertShift(t *testing.T, date string, start string, analystID int, mutate ...func(*entity.Shift)) *entity.Shift {
	t.Helper()

	d, err := time.Parse(entity.DateLayout, date)
	require.NoError(t, err)

	shift := &entity.Shift{
		Date:            d,
		StartTime:       start,
		EndTime:         "23:59:00",
		DurationMinutes: 60,
		Reason:          "seeded",
		Status:          entity.ShiftStatusPending,
		AnalystID:       analystID,
		IsActive:        true,
	}
	for _, m := range mutate {
		m(shift)
	}
	require.NoError(t, f.db.Create(shift).Error)
	return shift
}

func (f *fixture) countShifts(t *testing.T) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(&entity.Shift{}).Count(&n).Error)
	return n
}

func intPtr(v int) *int       { return &v }
func boolPtr(v bool) *bool    { return &v }
func strPtr(v string) *string { return &v }
