package notify_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"review-scheduler/internal/mocks"
	"review-scheduler/internal/models"
	"review-scheduler/internal/notify"
	"review-scheduler/internal/retry"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type txStub struct{}

func (txStub) Do(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

func newDispatcher(t *testing.T) (*notify.Dispatcher, *mocks.MockOutbox, *mocks.MockSender) {
	ctrl := gomock.NewController(t)
	outbox := mocks.NewMockOutbox(ctrl)
	sender := mocks.NewMockSender(ctrl)

	d := notify.NewDispatcher(outbox, sender, txStub{}, notify.DispatcherConfig{
		PollInterval: time.Hour,
		BatchSize:    10,
		MaxAttempts:  3,
		Backoff:      retry.ConstantBackoff{Interval: time.Minute},
	}, zap.NewNop())

	return d, outbox, sender
}

func TestDispatcher_DispatchOnce(t *testing.T) {
	ctx := context.Background()

	t.Run("sent and failed", func(t *testing.T) {
		d, outbox, sender := newDispatcher(t)
		ok := &models.NotificationLog{ID: uuid.New(), Type: models.NotificationNewAppointment}
		bad := &models.NotificationLog{ID: uuid.New(), Type: models.NotificationAppointmentRejected, RetryCount: 1}
		sendErr := errors.New("relay down")

		before := time.Now()
		outbox.EXPECT().ListDue(gomock.Any(), gomock.Any(), 3, 10).Return([]*models.NotificationLog{ok, bad}, nil)
		sender.EXPECT().Send(gomock.Any(), ok).Return(nil)
		outbox.EXPECT().MarkSent(gomock.Any(), ok.ID, gomock.Any()).Return(nil)
		sender.EXPECT().Send(gomock.Any(), bad).Return(sendErr)
		outbox.EXPECT().
			MarkFailed(gomock.Any(), bad.ID, "relay down", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, _ string, next time.Time) error {
				require.False(t, next.Before(before.Add(time.Minute)))
				require.True(t, next.Before(time.Now().Add(time.Minute+time.Second)))
				return nil
			})

		n, err := d.DispatchOnce(ctx)
		require.NoError(t, err)
		require.Equal(t, 2, n)
	})

	t.Run("nothing due", func(t *testing.T) {
		d, outbox, _ := newDispatcher(t)
		outbox.EXPECT().ListDue(gomock.Any(), gomock.Any(), 3, 10).Return(nil, nil)

		n, err := d.DispatchOnce(ctx)
		require.NoError(t, err)
		require.Zero(t, n)
	})

	t.Run("last attempt is still recorded", func(t *testing.T) {
		d, outbox, sender := newDispatcher(t)
		last := &models.NotificationLog{ID: uuid.New(), RetryCount: 2}

		outbox.EXPECT().ListDue(gomock.Any(), gomock.Any(), 3, 10).Return([]*models.NotificationLog{last}, nil)
		sender.EXPECT().Send(gomock.Any(), last).Return(notify.ErrNoRecipient)
		outbox.EXPECT().MarkFailed(gomock.Any(), last.ID, notify.ErrNoRecipient.Error(), gomock.Any()).Return(nil)

		_, err := d.DispatchOnce(ctx)
		require.NoError(t, err)
	})

	t.Run("outbox errors abort the batch", func(t *testing.T) {
		d, outbox, sender := newDispatcher(t)
		dbErr := errors.New("conn reset")
		first := &models.NotificationLog{ID: uuid.New()}
		second := &models.NotificationLog{ID: uuid.New()}

		outbox.EXPECT().ListDue(gomock.Any(), gomock.Any(), 3, 10).Return([]*models.NotificationLog{first, second}, nil)
		sender.EXPECT().Send(gomock.Any(), first).Return(nil)
		outbox.EXPECT().MarkSent(gomock.Any(), first.ID, gomock.Any()).Return(dbErr)

		n, err := d.DispatchOnce(ctx)
		require.ErrorIs(t, err, dbErr)
		require.Zero(t, n)
	})

	t.Run("list failure", func(t *testing.T) {
		d, outbox, _ := newDispatcher(t)
		dbErr := errors.New("conn reset")
		outbox.EXPECT().ListDue(gomock.Any(), gomock.Any(), 3, 10).Return(nil, dbErr)

		_, err := d.DispatchOnce(ctx)
		require.ErrorIs(t, err, dbErr)
	})
}

func TestDispatcher_Run(t *testing.T) {
	d, outbox, sender := newDispatcher(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	n := &models.NotificationLog{ID: uuid.New()}
	outbox.EXPECT().ListDue(gomock.Any(), gomock.Any(), 3, 10).Return([]*models.NotificationLog{n}, nil)
	sender.EXPECT().Send(gomock.Any(), n).Return(nil)
	outbox.EXPECT().
		MarkSent(gomock.Any(), n.ID, gomock.Any()).
		DoAndReturn(func(context.Context, uuid.UUID, time.Time) error {
			cancel()
			return nil
		})

	// Wake must not block even when a signal is already pending.
	d.Wake()
	d.Wake()

	done := make(chan error, 1)
	go func() { done <- d.Run(ctx) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("dispatcher did not stop")
	}
}
