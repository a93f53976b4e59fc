package service_test

import (
	"context"
	"errors"
	"slices"
	"strconv"
	"sync"
	"testing"
	"time"

	"review-scheduler/internal/models"
	"review-scheduler/internal/schedule"
	"review-scheduler/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// memStore is an in-memory appointment store whose reads are slow enough
// for two unsynchronized writers to interleave between check and insert.
type memStore struct {
	mu           sync.Mutex
	appointments []*models.Appointment
	history      []*models.AppointmentHistory
	readDelay    time.Duration
}

func (s *memStore) ListByReviewerDay(
	_ context.Context,
	reviewerID int64,
	date time.Time,
	excludeStatuses []models.AppointmentStatus,
	excludeID *uuid.UUID,
) ([]*models.Appointment, error) {
	s.mu.Lock()
	var out []*models.Appointment
	for _, a := range s.appointments {
		if a.ReviewerID != reviewerID || !a.Date.Equal(date) || slices.Contains(excludeStatuses, a.Status) {
			continue
		}
		if excludeID != nil && a.ID == *excludeID {
			continue
		}
		out = append(out, a)
	}
	s.mu.Unlock()

	time.Sleep(s.readDelay)
	return out, nil
}

func (s *memStore) Create(_ context.Context, a *models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a.ID = uuid.New()
	s.appointments = append(s.appointments, a)
	return nil
}

func (s *memStore) GetByID(context.Context, uuid.UUID) (*models.Appointment, error) {
	return nil, errors.New("not used")
}

func (s *memStore) GetForReviewer(context.Context, uuid.UUID, int64) (*models.Appointment, error) {
	return nil, errors.New("not used")
}

func (s *memStore) UpdateStatus(context.Context, uuid.UUID, models.AppointmentStatus, time.Time) error {
	return errors.New("not used")
}

func (s *memStore) ListByReviewer(context.Context, int64, *time.Time, *time.Time) ([]*models.Appointment, error) {
	return nil, errors.New("not used")
}

func (s *memStore) ListByApplicant(context.Context, int64, *time.Time) ([]*models.Appointment, error) {
	return nil, errors.New("not used")
}

func (s *memStore) Append(_ context.Context, h *models.AppointmentHistory) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, h)
	return nil
}

func (s *memStore) ListByAppointment(context.Context, uuid.UUID) ([]*models.AppointmentHistory, error) {
	return nil, errors.New("not used")
}

func (s *memStore) Enqueue(context.Context, *models.NotificationLog) error { return nil }

type noLeave struct{}

func (noLeave) ListByReviewerDay(context.Context, int64, time.Time) ([]*models.LeaveSchedule, error) {
	return nil, nil
}

// memTx mimics transaction-scoped advisory locks: locks taken inside Do are
// released when Do returns.
type memTx struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

type txLocksKey struct{}

func (m *memTx) Do(ctx context.Context, fn func(context.Context) error) error {
	var held []*sync.Mutex
	defer func() {
		for _, l := range held {
			l.Unlock()
		}
	}()
	return fn(context.WithValue(ctx, txLocksKey{}, &held))
}

func (m *memTx) LockReviewerDay(ctx context.Context, reviewerID int64, date time.Time) error {
	held, ok := ctx.Value(txLocksKey{}).(*[]*sync.Mutex)
	if !ok {
		return errors.New("lock outside transaction")
	}

	key := strconv.FormatInt(reviewerID, 10) + "/" + date.Format(schedule.DateLayout)
	m.mu.Lock()
	l, ok := m.locks[key]
	if !ok {
		l = &sync.Mutex{}
		m.locks[key] = l
	}
	m.mu.Unlock()

	l.Lock()
	*held = append(*held, l)
	return nil
}

func TestAppointmentService_ConcurrentOverlappingCreates(t *testing.T) {
	for round := range 20 {
		store := &memStore{readDelay: 5 * time.Millisecond}
		tx := &memTx{locks: map[string]*sync.Mutex{}}

		svc := service.NewAppointmentService(store, noLeave{}, store, store, tx, nil, nil, tx, zap.NewNop())

		requests := []service.CreateAppointmentInput{
			{ApplicantID: 5, ReviewerID: 7, Date: monday, Interval: mustInterval(t, "09:00", "10:00"), ObjectName: "A"},
			{ApplicantID: 6, ReviewerID: 7, Date: monday, Interval: mustInterval(t, "09:30", "10:30"), ObjectName: "B"},
		}

		errs := make([]error, len(requests))
		start := make(chan struct{})

		var g errgroup.Group
		for i, req := range requests {
			g.Go(func() error {
				<-start
				_, errs[i] = svc.Create(context.Background(), req)
				return nil
			})
		}
		close(start)
		require.NoError(t, g.Wait())

		succeeded, conflicted := 0, 0
		for _, err := range errs {
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, service.ErrConflict):
				conflicted++
			default:
				t.Fatalf("round %d: unexpected error %v", round, err)
			}
		}

		require.Equal(t, 1, succeeded, "round %d", round)
		require.Equal(t, 1, conflicted, "round %d", round)
		require.Len(t, store.appointments, 1)
		require.Len(t, store.history, 1)
	}
}

func TestAppointmentService_ConcurrentDisjointCreates(t *testing.T) {
	store := &memStore{readDelay: time.Millisecond}
	tx := &memTx{locks: map[string]*sync.Mutex{}}
	svc := service.NewAppointmentService(store, noLeave{}, store, store, tx, nil, nil, tx, zap.NewNop())

	var g errgroup.Group
	for h := 9; h < 18; h++ {
		g.Go(func() error {
			_, err := svc.Create(context.Background(), service.CreateAppointmentInput{
				ApplicantID: 5,
				ReviewerID:  7,
				Date:        monday,
				Interval:    schedule.Interval{Start: schedule.Clock(h, 0), End: schedule.Clock(h+1, 0)},
				ObjectName:  "slot",
			})
			return err
		})
	}

	require.NoError(t, g.Wait())
	require.Len(t, store.appointments, 9)
}
