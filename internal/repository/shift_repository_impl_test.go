package repository_test

import (
	"context"
	"testing"
	"time"

	"turnos-api/internal/domain/entity"
	"turnos-api/internal/infrastructure/database"
	"turnos-api/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.NewSQLiteConnection(":memory:", &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func seedReferences(t *testing.T, db *gorm.DB) (analyst entity.Analyst, project entity.Project) {
	t.Helper()
	ctx := context.Background()

	analyst = entity.Analyst{Email: "ana@example.com", IsActive: true}
	require.NoError(t, repository.NewAnalystRepository().Create(ctx, db, &analyst))
	project = entity.Project{Name: "Projeto Xavier", IsActive: true}
	require.NoError(t, repository.NewProjectRepository().Create(ctx, db, &project))
	return analyst, project
}

func newShift(date string, start string, analystID int) *entity.Shift {
	d, _ := time.Parse(entity.DateLayout, date)
	return &entity.Shift{
		Date:            d,
		StartTime:       start,
		EndTime:         "23:00:00",
		DurationMinutes: 30,
		Reason:          "on call",
		Status:          entity.ShiftStatusPending,
		AnalystID:       analystID,
		IsActive:        true,
	}
}

func TestShiftRepository_CreateAndFindByID(t *testing.T) {
	db := setupDB(t)
	analyst, project := seedReferences(t, db)
	repo := repository.NewShiftRepository()
	ctx := context.Background()

	shift := newShift("2025-05-20", "08:00:00", analyst.ID)
	shift.ProjectID = &project.ID
	require.NoError(t, repo.Create(ctx, db, shift))
	require.NotZero(t, shift.ID)

	found, err := repo.FindByID(ctx, db, shift.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "2025-05-20", found.Date.Format(entity.DateLayout))
	assert.Equal(t, "08:00:00", found.StartTime)
	assert.Equal(t, project.ID, *found.ProjectID)

	missing, err := repo.FindByID(ctx, db, shift.ID+100)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestShiftRepository_CreateRejectsUnknownAnalyst(t *testing.T) {
	db := setupDB(t)
	seedReferences(t, db)

	err := repository.NewShiftRepository().Create(context.Background(), db, newShift("2025-05-20", "08:00:00", 404))

	require.Error(t, err)
	assert.True(t, database.IsForeignKeyViolation(err), "got %v", err)
}

func TestShiftRepository_FindAll(t *testing.T) {
	db := setupDB(t)
	analyst, project := seedReferences(t, db)
	other := entity.Analyst{Email: "bruno@example.com", IsActive: true}
	require.NoError(t, repository.NewAnalystRepository().Create(context.Background(), db, &other))

	repo := repository.NewShiftRepository()
	ctx := context.Background()

	inProject := newShift("2025-05-02", "10:00:00", analyst.ID)
	inProject.ProjectID = &project.ID
	for _, s := range []*entity.Shift{
		newShift("2025-05-01", "08:00:00", analyst.ID),
		inProject,
		newShift("2025-05-02", "07:00:00", other.ID),
		newShift("2025-05-03", "08:00:00", analyst.ID),
	} {
		require.NoError(t, repo.Create(ctx, db, s))
	}

	t.Run("no filter pages after counting", func(t *testing.T) {
		shifts, total, err := repo.FindAll(ctx, db, &entity.ShiftFilter{}, 2, 1)
		require.NoError(t, err)
		assert.EqualValues(t, 4, total)
		require.Len(t, shifts, 2)
		assert.Equal(t, "10:00:00", shifts[0].StartTime)
		assert.Equal(t, "07:00:00", shifts[1].StartTime)
	})

	t.Run("analyst and date range", func(t *testing.T) {
		from := time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC)
		shifts, total, err := repo.FindAll(ctx, db, &entity.ShiftFilter{AnalystID: &analyst.ID, DateFrom: &from}, 10, 0)
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
		require.Len(t, shifts, 2)
		assert.Equal(t, "2025-05-03", shifts[0].Date.Format(entity.DateLayout))
	})

	t.Run("project", func(t *testing.T) {
		shifts, total, err := repo.FindAll(ctx, db, &entity.ShiftFilter{ProjectID: &project.ID}, 10, 0)
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		assert.Equal(t, inProject.ID, shifts[0].ID)
	})

	t.Run("no match returns empty slice", func(t *testing.T) {
		status := entity.ShiftStatusCompleted
		shifts, total, err := repo.FindAll(ctx, db, &entity.ShiftFilter{Status: &status}, 10, 0)
		require.NoError(t, err)
		assert.Zero(t, total)
		assert.NotNil(t, shifts)
		assert.Empty(t, shifts)
	})
}

func TestShiftRepository_FindAllBreaksTiesByID(t *testing.T) {
	db := setupDB(t)
	analyst, _ := seedReferences(t, db)
	repo := repository.NewShiftRepository()
	ctx := context.Background()

	var ids []int
	for i := 0; i < 5; i++ {
		s := newShift("2025-06-01", "08:00:00", analyst.ID)
		require.NoError(t, repo.Create(ctx, db, s))
		ids = append(ids, s.ID)
	}

	var seen []int
	for offset := 0; offset < len(ids); offset += 2 {
		page, total, err := repo.FindAll(ctx, db, &entity.ShiftFilter{}, 2, offset)
		require.NoError(t, err)
		assert.EqualValues(t, 5, total)
		for _, s := range page {
			seen = append(seen, s.ID)
		}
	}

	assert.Equal(t, []int{ids[4], ids[3], ids[2], ids[1], ids[0]}, seen)
}

func TestAuditLogRepository(t *testing.T) {
	db := setupDB(t)
	repo := repository.NewAuditLogRepository()
	ctx := context.Background()

	first := &entity.AuditLog{
		Action:    entity.AuditActionShiftCreate,
		RequestID: "req-1",
		Metadata:  entity.JSON{"entity": "shifts", "entity_id": 9},
	}
	require.NoError(t, repo.Create(ctx, db, first))
	require.NoError(t, repo.Create(ctx, db, &entity.AuditLog{Action: "other.action"}))
	require.NoError(t, repo.Create(ctx, db, &entity.AuditLog{Action: entity.AuditActionShiftCreate, RequestID: "req-3"}))

	logs, err := repo.FindAll(ctx, db, entity.AuditActionShiftCreate, 10)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "req-3", logs[0].RequestID)
	assert.Equal(t, "req-1", logs[1].RequestID)

	all, err := repo.FindAll(ctx, db, "", 2)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	found, err := repo.FindByID(ctx, db, first.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "shifts", found.Metadata["entity"])
	assert.EqualValues(t, 9, found.Metadata["entity_id"])

	missing, err := repo.FindByID(ctx, db, first.ID+100)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
