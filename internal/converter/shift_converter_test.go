package converter

import (
	"testing"
	"time"

	"turnos-api/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestShiftToResponse(t *testing.T) {
	projectID := 7
	notes := "covering for release"
	shift := &entity.Shift{
		ID:              42,
		Date:            time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC),
		StartTime:       "08:00:00",
		EndTime:         "10:30:00",
		DurationMinutes: 150,
		Reason:          "on-call",
		Status:          entity.ShiftStatusConfirmed,
		AnalystID:       3,
		ProjectID:       &projectID,
		Notes:           &notes,
		IsActive:        true,
	}

	resp := ShiftToResponse(shift)

	assert.Equal(t, 42, resp.ID)
	assert.Equal(t, "2025-05-02", resp.Date)
	assert.Equal(t, "08:00:00", resp.StartTime)
	assert.Equal(t, "10:30:00", resp.EndTime)
	assert.Equal(t, 150, resp.DurationMinutes)
	assert.Equal(t, "on-call", resp.Reason)
	assert.Equal(t, entity.ShiftStatusConfirmed, resp.Status)
	assert.Equal(t, 3, resp.AnalystID)
	assert.Equal(t, &projectID, resp.ProjectID)
	assert.Equal(t, &notes, resp.Notes)
	assert.True(t, resp.Active)
}

func TestShiftToResponse_Nil(t *testing.T) {
	assert.Nil(t, ShiftToResponse(nil))
}

func TestShiftsToResponses_PreservesOrder(t *testing.T) {
	shifts := []entity.Shift{{ID: 3}, {ID: 1}, {ID: 2}}

	responses := ShiftsToResponses(shifts)

	assert.Len(t, responses, 3)
	assert.Equal(t, []int{3, 1, 2}, []int{responses[0].ID, responses[1].ID, responses[2].ID})
	assert.NotNil(t, ShiftsToResponses(nil))
}
