package entity

import "time"

// ShiftFilter is a domain-level filter for querying shifts.
// Nil fields do not constrain the query. Dates are compared by calendar day.
type ShiftFilter struct {
	AnalystID *int
	ProjectID *int
	Status    *ShiftStatus
	DateFrom  *time.Time
	DateTo    *time.Time
}
