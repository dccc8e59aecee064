package dto

import (
	"time"

	"turnos-api/internal/domain/entity"
)

// Request DTOs

// CreateShiftRequest accepts dates as YYYY-MM-DD (or RFC 3339, time of day
// dropped) and times as HH:MM or HH:MM:SS. Status defaults to pending and
// Active to true.
type CreateShiftRequest struct {
	Date      string             `json:"date" validate:"required,date"`
	StartTime string             `json:"start_time" validate:"required,clock"`
	EndTime   string             `json:"end_time" validate:"required,clock"`
	Reason    string             `json:"reason" validate:"required,max=1000"`
	Status    entity.ShiftStatus `json:"status" validate:"omitempty,shiftstatus"`
	AnalystID int                `json:"analyst_id" validate:"required,gt=0"`
	ProjectID *int               `json:"project_id" validate:"omitempty,gt=0"`
	Notes     *string            `json:"notes" validate:"omitempty,max=2000"`
	Active    *bool              `json:"active"`
}

// ShiftFilterQuery carries already-parsed list filters. Nil fields do not
// constrain the query.
type ShiftFilterQuery struct {
	AnalystID *int
	ProjectID *int
	Status    *entity.ShiftStatus
	DateFrom  *time.Time
	DateTo    *time.Time
	Page      int
	PageSize  int
}

// Response DTOs

type ShiftResponse struct {
	ID              int                `json:"id"`
	Date            string             `json:"date"`
	StartTime       string             `json:"start_time"`
	EndTime         string             `json:"end_time"`
	DurationMinutes int                `json:"duration_minutes"`
	Reason          string             `json:"reason"`
	Status          entity.ShiftStatus `json:"status"`
	AnalystID       int                `json:"analyst_id"`
	ProjectID       *int               `json:"project_id"`
	Notes           *string            `json:"notes"`
	Active          bool               `json:"active"`
}

type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
}

// NewPagination computes TotalPages as ceil(totalItems / pageSize), or 0 when
// pageSize is not positive.
func NewPagination(page, pageSize int, totalItems int64) Pagination {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int((totalItems + int64(pageSize) - 1) / int64(pageSize))
	}
	return Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}

type ShiftListResponse struct {
	Shifts     []ShiftResponse `json:"shifts"`
	Pagination Pagination      `json:"pagination"`
}
