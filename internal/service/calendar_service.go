package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"review-scheduler/internal/models"
	"review-scheduler/internal/schedule"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

type Calendar struct {
	ReviewerID  int64
	Date        time.Time
	SlotMinutes int
	Occupied    []schedule.Interval
	Available   []schedule.Interval
}

// CalendarService serves the read side of the scheduler: reviewer day views
// and the reviewer directory. Day views always read current occupancy; only
// the directory is cached.
type CalendarService struct {
	calculator *AvailabilityCalculator
	users      UserRepository
	cache      ReviewerCache

	log *zap.Logger
}

func NewCalendarService(
	appointments AppointmentReader,
	leaves LeaveReader,
	users UserRepository,
	cache ReviewerCache,
	log *zap.Logger,
) *CalendarService {
	if cache == nil {
		cache = NopCache{}
	}

	return &CalendarService{
		calculator: NewAvailabilityCalculator(appointments, leaves),
		users:      users,
		cache:      cache,
		log:        log,
	}
}

func (s *CalendarService) Calendar(ctx context.Context, reviewerID int64, date time.Time, slotMinutes int) (*Calendar, error) {
	ctx, span := tracer.Start(ctx, "CalendarService.Calendar")
	defer span.End()
	span.SetAttributes(
		attribute.Int64("reviewer_id", reviewerID),
		attribute.Int("slot_minutes", slotMinutes),
	)

	if slotMinutes == 0 {
		slotMinutes = schedule.DefaultSlotMinutes
	}
	date = schedule.Day(date)

	day, err := s.calculator.Day(ctx, reviewerID, date, slotMinutes)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			return nil, err
		}
		s.log.Error("failed to load occupancy",
			zap.Error(err),
			zap.Int64("reviewer_id", reviewerID),
			zap.String("date", date.Format(schedule.DateLayout)),
		)
		return nil, err
	}

	return &Calendar{
		ReviewerID:  reviewerID,
		Date:        date,
		SlotMinutes: slotMinutes,
		Occupied:    day.Occupied,
		Available:   day.Available,
	}, nil
}

// ListReviewers returns active reviewers, served from the cache when warm.
func (s *CalendarService) ListReviewers(ctx context.Context) ([]*models.User, error) {
	reviewers, err := s.cache.Reviewers(ctx, func(ctx context.Context) ([]*models.User, error) {
		return s.users.ListActiveByRole(ctx, models.RoleReviewer)
	})
	if err != nil {
		s.log.Error("failed to list reviewers", zap.Error(err))
		return nil, err
	}
	return reviewers, nil
}

// SyncUser writes a directory entry pushed by the identity provider.
func (s *CalendarService) SyncUser(ctx context.Context, user *models.User) error {
	user.Name = strings.TrimSpace(user.Name)
	switch {
	case user.ID <= 0, user.Name == "":
		return ErrInvalidUser
	case user.Role != models.RoleApplicant && user.Role != models.RoleReviewer && user.Role != models.RoleAdmin:
		return ErrInvalidUser
	}

	if err := s.users.Upsert(ctx, user); err != nil {
		s.log.Error("failed to sync user",
			zap.Error(err),
			zap.Int64("user_id", user.ID),
		)
		return err
	}

	s.cache.InvalidateReviewers(ctx)

	return nil
}
