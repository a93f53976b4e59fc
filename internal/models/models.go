package models

import (
	"time"

	"review-scheduler/internal/schedule"

	"github.com/google/uuid"
)

type User struct {
	ID       int64
	Name     string
	Email    string
	Role     Role
	IsActive bool
}

type Role string

const (
	RoleApplicant Role = "applicant"
	RoleReviewer  Role = "reviewer"
	RoleAdmin     Role = "admin"
)

type Appointment struct {
	ID                 uuid.UUID
	ApplicantID        int64
	ReviewerID         int64
	Date               time.Time
	Interval           schedule.Interval
	ObjectName         string
	Status             AppointmentStatus
	DelegateReviewerID *int64
	DelegateStatus     *string
	CreatedByID        int64
	CreatedAt          time.Time
	UpdatedAt          time.Time
	CancelledAt        *time.Time
	CancelledReason    *string
}

type AppointmentStatus string

const (
	StatusPending          AppointmentStatus = "pending"
	StatusAccepted         AppointmentStatus = "accepted"
	StatusRejected         AppointmentStatus = "rejected"
	StatusDelegated        AppointmentStatus = "delegated"
	StatusDelegateAccepted AppointmentStatus = "delegate_accepted"
	StatusDelegateRejected AppointmentStatus = "delegate_rejected"
	StatusCancelled        AppointmentStatus = "cancelled"
)

// NonOccupying lists statuses whose appointments no longer block a reviewer's time.
var NonOccupying = []AppointmentStatus{StatusRejected, StatusCancelled}

func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected, StatusDelegated,
		StatusDelegateAccepted, StatusDelegateRejected, StatusCancelled:
		return true
	}
	return false
}

type LeaveSchedule struct {
	ID         uuid.UUID
	ReviewerID int64
	Date       time.Time
	Interval   schedule.Interval
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type AppointmentHistory struct {
	ID            uuid.UUID
	AppointmentID uuid.UUID
	Action        HistoryAction
	ActorID       int64
	OccurredAt    time.Time
	Notes         string
}

type HistoryAction string

const (
	ActionCreated  HistoryAction = "created"
	ActionAccepted HistoryAction = "accepted"
	ActionRejected HistoryAction = "rejected"
)

type NotificationLog struct {
	ID             uuid.UUID
	AppointmentID  uuid.UUID
	RecipientID    int64
	RecipientEmail string
	Type           NotificationType
	Subject        string
	Content        string
	Status         NotificationStatus
	RetryCount     int
	NextRetryAt    time.Time
	SentAt         *time.Time
	ErrorMessage   *string
	CreatedAt      time.Time
}

type NotificationType string

const (
	NotificationNewAppointment       NotificationType = "new_appointment"
	NotificationAppointmentConfirmed NotificationType = "appointment_confirmed"
	NotificationAppointmentRejected  NotificationType = "appointment_rejected"
)

type NotificationStatus string

const (
	NotificationPending NotificationStatus = "pending"
	NotificationSent    NotificationStatus = "sent"
	NotificationFailed  NotificationStatus = "failed"
)
