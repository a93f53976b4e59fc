package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"review-scheduler/internal/models"
	"review-scheduler/internal/notify"
	"review-scheduler/internal/repository"
	"review-scheduler/internal/schedule"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

type CreateAppointmentInput struct {
	ApplicantID int64
	ReviewerID  int64
	Date        time.Time
	Interval    schedule.Interval
	ObjectName  string
}

type AppointmentService struct {
	appointments  AppointmentRepository
	history       HistoryRepository
	notifications NotificationRepository
	locker        ReviewerDayLocker
	detector      *ConflictDetector

	cache     ReviewerCache
	waker     Waker
	trManager TxManager

	log *zap.Logger
}

func NewAppointmentService(
	appointments AppointmentRepository,
	leaves LeaveReader,
	history HistoryRepository,
	notifications NotificationRepository,
	locker ReviewerDayLocker,
	cache ReviewerCache,
	waker Waker,
	trManager TxManager,
	log *zap.Logger,
) *AppointmentService {
	if cache == nil {
		cache = NopCache{}
	}
	if waker == nil {
		waker = nopWaker{}
	}

	return &AppointmentService{
		appointments:  appointments,
		history:       history,
		notifications: notifications,
		locker:        locker,
		detector:      NewConflictDetector(appointments, leaves, log),
		cache:         cache,
		waker:         waker,
		trManager:     trManager,
		log:           log,
	}
}

// ValidateCreate runs the booking checks in order and returns the first failure.
func ValidateCreate(in CreateAppointmentInput) error {
	switch {
	case in.ApplicantID == in.ReviewerID:
		return ErrSelfBooking
	case in.ReviewerID <= 0:
		return ErrInvalidReviewer
	case strings.TrimSpace(in.ObjectName) == "":
		return ErrEmptyObjectName
	case utf8.RuneCountInString(in.ObjectName) > MaxObjectNameLength:
		return ErrObjectNameTooLong
	case strings.ContainsFunc(in.ObjectName, unicode.IsControl):
		return ErrObjectNameControl
	case !schedule.IsWeekday(in.Date):
		return ErrNotWeekday
	case in.Interval.Start >= in.Interval.End:
		return ErrInvalidInterval
	case !in.Interval.Aligned(schedule.Granularity):
		return ErrMisaligned
	case !schedule.InBusinessHours(in.Interval):
		return ErrOutsideBusinessHours
	}
	return nil
}

// Create books a pending appointment. The conflict check and the insert run in
// one transaction holding the reviewer-day lock, so of two overlapping
// concurrent requests exactly one succeeds.
func (s *AppointmentService) Create(ctx context.Context, in CreateAppointmentInput) (*models.Appointment, error) {
	ctx, span := tracer.Start(ctx, "AppointmentService.Create")
	defer span.End()
	span.SetAttributes(
		attribute.Int64("applicant_id", in.ApplicantID),
		attribute.Int64("reviewer_id", in.ReviewerID),
	)

	in.Date = schedule.Day(in.Date)

	if err := ValidateCreate(in); err != nil {
		s.log.Info("appointment request rejected",
			zap.String("reason", err.Error()),
			zap.Int64("applicant_id", in.ApplicantID),
			zap.Int64("reviewer_id", in.ReviewerID),
		)
		return nil, err
	}

	a := &models.Appointment{
		ApplicantID: in.ApplicantID,
		ReviewerID:  in.ReviewerID,
		Date:        in.Date,
		Interval:    in.Interval,
		ObjectName:  strings.TrimSpace(in.ObjectName),
		Status:      models.StatusPending,
		CreatedByID: in.ApplicantID,
	}

	err := s.trManager.Do(ctx, func(ctx context.Context) error {
		if err := s.locker.LockReviewerDay(ctx, a.ReviewerID, a.Date); err != nil {
			s.log.Error("failed to lock reviewer day",
				zap.Error(err),
				zap.Int64("reviewer_id", a.ReviewerID),
			)
			return err
		}

		result := s.detector.CheckConflict(ctx, a.ReviewerID, a.Date, a.Interval, nil)
		if result.HasConflict {
			s.log.Warn("appointment conflicts with occupied time",
				zap.String("reason", result.Reason),
				zap.Int64("reviewer_id", a.ReviewerID),
				zap.String("interval", a.Interval.String()),
			)
			return result.Err()
		}

		if err := s.appointments.Create(ctx, a); err != nil {
			if errors.Is(err, repository.ErrOverlap) {
				s.log.Warn("appointment rejected by exclusion constraint",
					zap.Int64("reviewer_id", a.ReviewerID),
					zap.String("interval", a.Interval.String()),
				)
				return &ConflictError{
					Kind:   ConflictAppointment,
					Window: a.Interval,
					Reason: "appointment conflict: " + a.Interval.String(),
				}
			}
			s.log.Error("failed to create appointment",
				zap.Error(err),
				zap.Int64("reviewer_id", a.ReviewerID),
			)
			return err
		}

		return s.appendHistory(ctx, a.ID, models.ActionCreated, a.ApplicantID, "")
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("appointment created",
		zap.String("appointment_id", a.ID.String()),
		zap.Int64("applicant_id", a.ApplicantID),
		zap.Int64("reviewer_id", a.ReviewerID),
		zap.String("date", a.Date.Format(schedule.DateLayout)),
		zap.String("interval", a.Interval.String()),
	)

	s.cache.InvalidateReviewers(ctx)
	s.notify(ctx, models.NotificationNewAppointment, a, a.ReviewerID, "")

	return a, nil
}

func (s *AppointmentService) Accept(ctx context.Context, id uuid.UUID, reviewerID int64) (*models.Appointment, error) {
	ctx, span := tracer.Start(ctx, "AppointmentService.Accept")
	defer span.End()

	a, err := s.transition(ctx, id, reviewerID, models.StatusAccepted, models.ActionAccepted, "")
	if err != nil {
		return nil, err
	}

	s.notify(ctx, models.NotificationAppointmentConfirmed, a, a.ApplicantID, "")

	return a, nil
}

// Reject records reason in the history and the applicant's notification.
// An empty reason becomes notify.DefaultRejectReason.
func (s *AppointmentService) Reject(ctx context.Context, id uuid.UUID, reviewerID int64, reason string) (*models.Appointment, error) {
	ctx, span := tracer.Start(ctx, "AppointmentService.Reject")
	defer span.End()

	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = notify.DefaultRejectReason
	}

	a, err := s.transition(ctx, id, reviewerID, models.StatusRejected, models.ActionRejected, reason)
	if err != nil {
		return nil, err
	}

	s.notify(ctx, models.NotificationAppointmentRejected, a, a.ApplicantID, reason)

	return a, nil
}

func (s *AppointmentService) transition(
	ctx context.Context,
	id uuid.UUID,
	reviewerID int64,
	to models.AppointmentStatus,
	action models.HistoryAction,
	notes string,
) (*models.Appointment, error) {
	var a *models.Appointment

	err := s.trManager.Do(ctx, func(ctx context.Context) error {
		var err error
		a, err = s.appointments.GetForReviewer(ctx, id, reviewerID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				s.log.Warn("appointment not found or not assigned to reviewer",
					zap.String("appointment_id", id.String()),
					zap.Int64("reviewer_id", reviewerID),
				)
				return ErrNotFoundOrForbidden
			}
			s.log.Error("failed to get appointment",
				zap.Error(err),
				zap.String("appointment_id", id.String()),
			)
			return err
		}

		if a.Status != models.StatusPending {
			s.log.Info("appointment is no longer pending",
				zap.String("appointment_id", id.String()),
				zap.String("status", string(a.Status)),
				zap.String("requested", string(to)),
			)
			return fmt.Errorf("%w (current status: %s)", ErrWrongState, a.Status)
		}

		now := time.Now().UTC()
		if err := s.appointments.UpdateStatus(ctx, id, to, now); err != nil {
			s.log.Error("failed to update appointment status",
				zap.Error(err),
				zap.String("appointment_id", id.String()),
				zap.String("status", string(to)),
			)
			return err
		}
		a.Status = to
		a.UpdatedAt = now

		return s.appendHistory(ctx, id, action, reviewerID, notes)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("appointment status changed",
		zap.String("appointment_id", id.String()),
		zap.Int64("reviewer_id", reviewerID),
		zap.String("status", string(to)),
	)

	return a, nil
}

func (s *AppointmentService) appendHistory(ctx context.Context, id uuid.UUID, action models.HistoryAction, actorID int64, notes string) error {
	err := s.history.Append(ctx, &models.AppointmentHistory{
		AppointmentID: id,
		Action:        action,
		ActorID:       actorID,
		Notes:         notes,
	})
	if err != nil {
		s.log.Error("failed to append appointment history",
			zap.Error(err),
			zap.String("appointment_id", id.String()),
			zap.String("action", string(action)),
		)
	}
	return err
}

// notify hands a notification to the outbox and wakes the dispatcher. It runs
// after the state change committed and only logs failures.
func (s *AppointmentService) notify(
	ctx context.Context,
	typ models.NotificationType,
	a *models.Appointment,
	recipientID int64,
	reason string,
) {
	ctx = context.WithoutCancel(ctx)

	msg, err := notify.Compose(typ, a, reason)
	if err != nil {
		s.log.Error("failed to compose notification",
			zap.Error(err),
			zap.String("appointment_id", a.ID.String()),
			zap.String("type", string(typ)),
		)
		return
	}

	err = s.notifications.Enqueue(ctx, &models.NotificationLog{
		AppointmentID: a.ID,
		RecipientID:   recipientID,
		Type:          typ,
		Subject:       msg.Subject,
		Content:       msg.Body,
	})
	if err != nil {
		s.log.Error("failed to enqueue notification",
			zap.Error(err),
			zap.String("appointment_id", a.ID.String()),
			zap.String("type", string(typ)),
			zap.Int64("recipient_id", recipientID),
		)
		return
	}

	s.waker.Wake()
}

// Get returns the appointment to its applicant or reviewer. Anyone else gets
// ErrNotFoundOrForbidden.
func (s *AppointmentService) Get(ctx context.Context, id uuid.UUID, actorID int64) (*models.Appointment, error) {
	a, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFoundOrForbidden
		}
		s.log.Error("failed to get appointment",
			zap.Error(err),
			zap.String("appointment_id", id.String()),
		)
		return nil, err
	}

	if a.ApplicantID != actorID && a.ReviewerID != actorID {
		return nil, ErrNotFoundOrForbidden
	}

	return a, nil
}

// History returns the audit trail, oldest first, under the same visibility
// rule as Get.
func (s *AppointmentService) History(ctx context.Context, id uuid.UUID, actorID int64) ([]*models.AppointmentHistory, error) {
	if _, err := s.Get(ctx, id, actorID); err != nil {
		return nil, err
	}

	entries, err := s.history.ListByAppointment(ctx, id)
	if err != nil {
		s.log.Error("failed to list appointment history",
			zap.Error(err),
			zap.String("appointment_id", id.String()),
		)
		return nil, err
	}

	return entries, nil
}

func (s *AppointmentService) ListByReviewer(ctx context.Context, reviewerID int64, from, to *time.Time) ([]*models.Appointment, error) {
	appointments, err := s.appointments.ListByReviewer(ctx, reviewerID, from, to)
	if err != nil {
		s.log.Error("failed to list reviewer appointments",
			zap.Error(err),
			zap.Int64("reviewer_id", reviewerID),
		)
		return nil, err
	}
	return appointments, nil
}

func (s *AppointmentService) ListByApplicant(ctx context.Context, applicantID int64, from *time.Time) ([]*models.Appointment, error) {
	appointments, err := s.appointments.ListByApplicant(ctx, applicantID, from)
	if err != nil {
		s.log.Error("failed to list applicant appointments",
			zap.Error(err),
			zap.Int64("applicant_id", applicantID),
		)
		return nil, err
	}
	return appointments, nil
}

// CheckAvailability runs the conflict detector without booking anything.
func (s *AppointmentService) CheckAvailability(
	ctx context.Context,
	reviewerID int64,
	date time.Time,
	iv schedule.Interval,
	excludeID *uuid.UUID,
) (ConflictResult, error) {
	if iv.Start >= iv.End {
		return ConflictResult{}, ErrInvalidInterval
	}
	return s.detector.CheckConflict(ctx, reviewerID, schedule.Day(date), iv, excludeID), nil
}
