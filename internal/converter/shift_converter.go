package converter

import (
	"turnos-api/internal/delivery/dto"
	"turnos-api/internal/domain/entity"
)

// ShiftToResponse converts a Shift entity to ShiftResponse DTO
func ShiftToResponse(shift *entity.Shift) *dto.ShiftResponse {
	if shift == nil {
		return nil
	}

	return &dto.ShiftResponse{
		ID:              shift.ID,
		Date:            shift.Date.Format(entity.DateLayout),
		StartTime:       shift.StartTime,
		EndTime:         shift.EndTime,
		DurationMinutes: shift.DurationMinutes,
		Reason:          shift.Reason,
		Status:          shift.Status,
		AnalystID:       shift.AnalystID,
		ProjectID:       shift.ProjectID,
		Notes:           shift.Notes,
		Active:          shift.IsActive,
	}
}

// ShiftsToResponses converts a slice of Shift entities to slice of ShiftResponse DTOs
func ShiftsToResponses(shifts []entity.Shift) []dto.ShiftResponse {
	responses := make([]dto.ShiftResponse, len(shifts))
	for i := range shifts {
		responses[i] = *ShiftToResponse(&shifts[i])
	}
	return responses
}
