package service

import (
	"context"
	"errors"
	"time"

	"review-scheduler/internal/models"
	"review-scheduler/internal/repository"
	"review-scheduler/internal/schedule"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LeaveService manages the blocks of time a reviewer marks as unavailable.
type LeaveService struct {
	leaves    LeaveRepository
	locker    ReviewerDayLocker
	trManager TxManager

	now func() time.Time
	log *zap.Logger
}

func NewLeaveService(
	leaves LeaveRepository,
	locker ReviewerDayLocker,
	trManager TxManager,
	log *zap.Logger,
) *LeaveService {
	return &LeaveService{
		leaves:    leaves,
		locker:    locker,
		trManager: trManager,
		now:       time.Now,
		log:       log,
	}
}

func (s *LeaveService) validate(reviewerID int64, date time.Time, iv schedule.Interval) error {
	today := schedule.Day(s.now())

	switch {
	case reviewerID <= 0:
		return ErrInvalidReviewer
	case date.Before(today):
		return ErrPastDate
	case !schedule.IsWeekday(date):
		return ErrNotWeekday
	case iv.Start >= iv.End:
		return ErrInvalidInterval
	case !iv.Aligned(schedule.Granularity):
		return ErrMisaligned
	}
	return nil
}

// Create blocks iv on date for the reviewer. Leave may overlap existing
// appointments but not other leave of the same reviewer.
func (s *LeaveService) Create(ctx context.Context, reviewerID int64, date time.Time, iv schedule.Interval) (*models.LeaveSchedule, error) {
	ctx, span := tracer.Start(ctx, "LeaveService.Create")
	defer span.End()

	date = schedule.Day(date)
	if err := s.validate(reviewerID, date, iv); err != nil {
		s.log.Info("leave request rejected",
			zap.String("reason", err.Error()),
			zap.Int64("reviewer_id", reviewerID),
		)
		return nil, err
	}

	leave := &models.LeaveSchedule{
		ReviewerID: reviewerID,
		Date:       date,
		Interval:   iv,
	}

	err := s.trManager.Do(ctx, func(ctx context.Context) error {
		if err := s.locker.LockReviewerDay(ctx, reviewerID, date); err != nil {
			s.log.Error("failed to lock reviewer day",
				zap.Error(err),
				zap.Int64("reviewer_id", reviewerID),
			)
			return err
		}

		existing, err := s.leaves.ListByReviewerDay(ctx, reviewerID, date)
		if err != nil {
			s.log.Error("failed to list leave",
				zap.Error(err),
				zap.Int64("reviewer_id", reviewerID),
			)
			return err
		}
		for _, l := range existing {
			if schedule.Overlaps(iv, l.Interval) {
				s.log.Info("leave overlaps existing leave",
					zap.Int64("reviewer_id", reviewerID),
					zap.String("existing", l.Interval.String()),
				)
				return ErrLeaveOverlap
			}
		}

		if err := s.leaves.Create(ctx, leave); err != nil {
			if errors.Is(err, repository.ErrOverlap) {
				return ErrLeaveOverlap
			}
			s.log.Error("failed to create leave",
				zap.Error(err),
				zap.Int64("reviewer_id", reviewerID),
			)
			return err
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("leave created",
		zap.String("leave_id", leave.ID.String()),
		zap.Int64("reviewer_id", reviewerID),
		zap.String("date", date.Format(schedule.DateLayout)),
		zap.String("interval", iv.String()),
	)

	return leave, nil
}

func (s *LeaveService) Get(ctx context.Context, id uuid.UUID) (*models.LeaveSchedule, error) {
	leave, err := s.leaves.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrLeaveNotFound
		}
		s.log.Error("failed to get leave",
			zap.Error(err),
			zap.String("leave_id", id.String()),
		)
		return nil, err
	}
	return leave, nil
}

// Delete removes a leave block. Only the owning reviewer may delete it.
func (s *LeaveService) Delete(ctx context.Context, id uuid.UUID, reviewerID int64) error {
	var leave *models.LeaveSchedule

	err := s.trManager.Do(ctx, func(ctx context.Context) error {
		var err error
		leave, err = s.Get(ctx, id)
		if err != nil {
			return err
		}

		if leave.ReviewerID != reviewerID {
			s.log.Warn("leave delete by non-owner",
				zap.String("leave_id", id.String()),
				zap.Int64("owner_id", leave.ReviewerID),
				zap.Int64("actor_id", reviewerID),
			)
			return ErrLeaveForbidden
		}

		if err := s.leaves.Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrLeaveNotFound
			}
			s.log.Error("failed to delete leave",
				zap.Error(err),
				zap.String("leave_id", id.String()),
			)
			return err
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info("leave deleted",
		zap.String("leave_id", id.String()),
		zap.Int64("reviewer_id", reviewerID),
		zap.String("date", leave.Date.Format(schedule.DateLayout)),
	)

	return nil
}

func (s *LeaveService) ListByReviewer(ctx context.Context, reviewerID int64, from, to *time.Time) ([]*models.LeaveSchedule, error) {
	leaves, err := s.leaves.ListByReviewer(ctx, reviewerID, from, to)
	if err != nil {
		s.log.Error("failed to list leave",
			zap.Error(err),
			zap.Int64("reviewer_id", reviewerID),
		)
		return nil, err
	}
	return leaves, nil
}
