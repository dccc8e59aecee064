package usecase

import (
	"errors"
	"strings"
)

var (
	ErrShiftNotFound = errors.New("shift not found")

	// ErrOperationFailed wraps every storage failure so callers can tell it
	// apart from a *ValidationError.
	ErrOperationFailed = errors.New("operation failed")
)

// Caller-facing validation messages.
const (
	MsgCreateShiftFailed     = "failed to create shift"
	MsgAnalystNotFound       = "analyst not found"
	MsgAnalystInactive       = "analyst inactive"
	MsgProjectNotFound       = "project not found"
	MsgProjectInactive       = "project inactive"
	MsgEndNotAfterStart      = "end must be greater than start"
	MsgInvalidDuration       = "invalid computed duration"
	MsgCancelledMustBeActive = "cancelled shift must have active = false"
	MsgInvalidDate           = "invalid date, use YYYY-MM-DD"
	MsgInvalidStartTime      = "invalid start time, use HH:MM or HH:MM:SS"
	MsgInvalidEndTime        = "invalid end time, use HH:MM or HH:MM:SS"
	MsgReasonRequired        = "reason is required"
	MsgInvalidStatus         = "invalid status"
)

type ViolationKind string

const (
	ReferenceNotFound  ViolationKind = "reference_not_found"
	ReferenceInactive  ViolationKind = "reference_inactive"
	InvalidTimeRange   ViolationKind = "invalid_time_range"
	InvalidDuration    ViolationKind = "invalid_duration"
	InconsistentStatus ViolationKind = "inconsistent_status"
	InvalidFormat      ViolationKind = "invalid_format"
)

type Violation struct {
	Kind    ViolationKind
	Message string
}

// ValidationError accumulates every business-rule violation found while
// checking a request. Checks append to it instead of returning early.
type ValidationError struct {
	Message    string
	Violations []Violation
}

func newValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message + ": " + strings.Join(e.Messages(), "; ")
}

func (e *ValidationError) add(kind ViolationKind, message string) {
	e.Violations = append(e.Violations, Violation{Kind: kind, Message: message})
}

func (e *ValidationError) empty() bool {
	return len(e.Violations) == 0
}

// Messages returns the violation messages in the order they were found.
func (e *ValidationError) Messages() []string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.Message
	}
	return msgs
}

// Has reports whether a violation of the given kind was recorded.
func (e *ValidationError) Has(kind ViolationKind) bool {
	for _, v := range e.Violations {
		if v.Kind == kind {
			return true
		}
	}
	return false
}
