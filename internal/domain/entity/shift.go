package entity

import "time"

// ShiftStatus represents the lifecycle state of a shift
type ShiftStatus string

const (
	ShiftStatusPending   ShiftStatus = "pending"
	ShiftStatusConfirmed ShiftStatus = "confirmed"
	ShiftStatusCompleted ShiftStatus = "completed"
	ShiftStatusCancelled ShiftStatus = "cancelled"
)

// ShiftStatuses lists every valid status in lifecycle order
var ShiftStatuses = []ShiftStatus{
	ShiftStatusPending,
	ShiftStatusConfirmed,
	ShiftStatusCompleted,
	ShiftStatusCancelled,
}

// IsValid reports whether s is one of the known statuses
func (s ShiftStatus) IsValid() bool {
	for _, status := range ShiftStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Shift is a scheduled work interval for one analyst on one date.
// Shifts are never deleted: cancellation keeps the row with IsActive=false.
type Shift struct {
	ID              int         `gorm:"primaryKey;autoIncrement" json:"id"`
	Date            time.Time   `gorm:"type:date;not null;index:idx_shifts_date_start,priority:1" json:"date"`
	StartTime       string      `gorm:"type:varchar(8);not null;index:idx_shifts_date_start,priority:2" json:"start_time"`
	EndTime         string      `gorm:"type:varchar(8);not null" json:"end_time"`
	DurationMinutes int         `gorm:"not null;check:duration_minutes > 0" json:"duration_minutes"`
	Reason          string      `gorm:"type:text;not null" json:"reason"`
	Status          ShiftStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	AnalystID       int         `gorm:"not null;index" json:"analyst_id"`
	ProjectID       *int        `gorm:"index" json:"project_id,omitempty"`
	Notes           *string     `gorm:"type:text" json:"notes,omitempty"`
	IsActive        bool        `gorm:"not null" json:"is_active"`
	CreatedAt       time.Time   `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Analyst *Analyst `gorm:"foreignKey:AnalystID;constraint:OnDelete:RESTRICT" json:"analyst,omitempty"`
	Project *Project `gorm:"foreignKey:ProjectID;constraint:OnDelete:SET NULL" json:"project,omitempty"`
}

func (Shift) TableName() string {
	return "shifts"
}

// IsCancelled checks if shift is cancelled
func (s *Shift) IsCancelled() bool {
	return s.Status == ShiftStatusCancelled
}
