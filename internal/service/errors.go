package service

import (
	"errors"
	"fmt"

	"review-scheduler/internal/repository"
	"review-scheduler/internal/schedule"
)

// MaxObjectNameLength leaves room for the notification subject prefix within
// the 500 character subject column.
const MaxObjectNameLength = 450

var (
	// ErrValidation is wrapped by every input validation failure.
	ErrValidation = errors.New("validation failed")

	ErrSelfBooking          = validationError("applicant and reviewer must be different users")
	ErrEmptyObjectName      = validationError("object name must not be empty")
	ErrObjectNameTooLong    = validationError(fmt.Sprintf("object name must be at most %d characters", MaxObjectNameLength))
	ErrObjectNameControl    = validationError("object name must not contain line breaks or control characters")
	ErrNotWeekday           = validationError("date must fall on a weekday (Monday to Friday)")
	ErrInvalidInterval      = validationError("start time must be before end time")
	ErrMisaligned           = validationError(fmt.Sprintf("times must be multiples of %d minutes", schedule.Granularity))
	ErrOutsideBusinessHours = validationError("time must be within business hours (" + schedule.BusinessHours.String() + ")")
	ErrInvalidSlotSize      = validationError(fmt.Sprintf("slot size must be a positive multiple of %d minutes", schedule.Granularity))
	ErrPastDate             = validationError("date must not be in the past")
	ErrInvalidReviewer      = validationError("reviewer id must be a positive user id")
	ErrInvalidUser          = validationError("user must have an id, a name and a known role")
)

var (
	// ErrConflict is matched by every *ConflictError.
	ErrConflict = errors.New("schedule conflict")

	// ErrNotFoundOrForbidden deliberately does not say which of the two applies.
	ErrNotFoundOrForbidden = errors.New("appointment not found or not authorized")
	ErrWrongState          = errors.New("appointment is not pending")

	ErrLeaveNotFound  = errors.New("leave schedule not found")
	ErrLeaveForbidden = errors.New("leave schedule belongs to another reviewer")
	ErrLeaveOverlap   = errors.New("leave overlaps an existing leave schedule")

	ErrNotFound = repository.ErrNotFound
)

type validationErr struct {
	msg string
}

func validationError(msg string) error {
	return &validationErr{msg: msg}
}

func (e *validationErr) Error() string { return e.msg }

func (e *validationErr) Unwrap() error { return ErrValidation }

// ConflictError reports the occupied window a request collided with.
type ConflictError struct {
	Kind   ConflictKind
	Window schedule.Interval
	Reason string
}

func (e *ConflictError) Error() string {
	return e.Reason
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}
