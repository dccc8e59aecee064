package bootstrap_test

import (
	"context"
	"io"
	"testing"

	"turnos-api/cmd/bootstrap"
	"turnos-api/internal/domain/entity"
	"turnos-api/internal/infrastructure/database"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestSeed_FillsEmptyTablesOnce(t *testing.T) {
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

	log := logrus.New()
	log.SetOutput(io.Discard)
	ctx := context.Background()

	require.NoError(t, bootstrap.Seed(ctx, db, log))
	require.NoError(t, bootstrap.Seed(ctx, db, log))

	var analysts []entity.Analyst
	require.NoError(t, db.Order("id").Find(&analysts).Error)
	require.Len(t, analysts, 2)
	assert.Equal(t, "isabelly@linx.com", analysts[0].Email)
	assert.True(t, analysts[0].IsActive)

	var projects []entity.Project
	require.NoError(t, db.Order("id").Find(&projects).Error)
	require.Len(t, projects, 2)
	assert.Equal(t, "Projeto Xavier", projects[0].Name)
}
