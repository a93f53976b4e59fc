//go:generate mockgen -source=repositories.go -destination=../mocks/repositories.go -package=mocks .

package service

import (
	"context"
	"time"

	"review-scheduler/internal/models"

	"github.com/google/uuid"
)

type AppointmentReader interface {
	// Appointments of a reviewer on one day, minus excluded statuses and id
	ListByReviewerDay(
		ctx context.Context,
		reviewerID int64,
		date time.Time,
		excludeStatuses []models.AppointmentStatus,
		excludeID *uuid.UUID,
	) ([]*models.Appointment, error)
}

type LeaveReader interface {
	// Leave blocks of a reviewer on one day
	ListByReviewerDay(ctx context.Context, reviewerID int64, date time.Time) ([]*models.LeaveSchedule, error)
}

type AppointmentRepository interface {
	AppointmentReader

	Create(ctx context.Context, a *models.Appointment) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.Appointment, error)

	// Row-locked read that only matches the assigned reviewer
	GetForReviewer(ctx context.Context, id uuid.UUID, reviewerID int64) (*models.Appointment, error)

	UpdateStatus(ctx context.Context, id uuid.UUID, status models.AppointmentStatus, at time.Time) error

	ListByReviewer(ctx context.Context, reviewerID int64, from, to *time.Time) ([]*models.Appointment, error)

	ListByApplicant(ctx context.Context, applicantID int64, from *time.Time) ([]*models.Appointment, error)
}

type LeaveRepository interface {
	LeaveReader

	Create(ctx context.Context, l *models.LeaveSchedule) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.LeaveSchedule, error)

	Delete(ctx context.Context, id uuid.UUID) error

	ListByReviewer(ctx context.Context, reviewerID int64, from, to *time.Time) ([]*models.LeaveSchedule, error)
}

type HistoryRepository interface {
	Append(ctx context.Context, h *models.AppointmentHistory) error

	ListByAppointment(ctx context.Context, appointmentID uuid.UUID) ([]*models.AppointmentHistory, error)
}

type NotificationRepository interface {
	Enqueue(ctx context.Context, n *models.NotificationLog) error
}

type UserRepository interface {
	GetUserByID(ctx context.Context, id int64) (*models.User, error)

	ListActiveByRole(ctx context.Context, role models.Role) ([]*models.User, error)

	Upsert(ctx context.Context, user *models.User) error
}

// ReviewerDayLocker serializes occupancy writes for one reviewer and day
// until the surrounding transaction ends.
type ReviewerDayLocker interface {
	LockReviewerDay(ctx context.Context, reviewerID int64, date time.Time) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// ReviewerCache is the read-through cache in front of the reviewer
// directory. Occupancy is never cached. Implementations never fail the
// caller on cache errors.
type ReviewerCache interface {
	Reviewers(ctx context.Context, load func(context.Context) ([]*models.User, error)) ([]*models.User, error)

	InvalidateReviewers(ctx context.Context)
}

// Waker nudges the notification dispatcher. It must not block.
type Waker interface {
	Wake()
}

type TxManagerStub struct{}

func (TxManagerStub) Do(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

// NopCache always loads and never stores.
type NopCache struct{}

func (NopCache) Reviewers(ctx context.Context, load func(context.Context) ([]*models.User, error)) ([]*models.User, error) {
	return load(ctx)
}

func (NopCache) InvalidateReviewers(context.Context) {}

type nopWaker struct{}

func (nopWaker) Wake() {}
