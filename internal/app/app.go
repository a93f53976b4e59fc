package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"review-scheduler/internal/api"
	"review-scheduler/internal/cache"
	"review-scheduler/internal/config"
	"review-scheduler/internal/database"
	"review-scheduler/internal/handler"
	"review-scheduler/internal/notify"
	"review-scheduler/internal/repository"
	"review-scheduler/internal/service"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	redisConnectAttempts = 3
	redisConnectWait     = 2 * time.Second
)

// SchedulerApp represents the application with its dependencies.
type SchedulerApp struct {
	cfg *config.Config

	db  *pgxpool.Pool
	rdb *redis.Client
	r   *echo.Echo

	dispatcher  *notify.Dispatcher
	closeSender func() error

	log *zap.Logger
}

// NewSchedulerApp connects to storage and wires repositories, services,
// the notification dispatcher, handlers and routes.
func NewSchedulerApp(ctx context.Context, cfg *config.Config, log *zap.Logger) *SchedulerApp {
	db, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	rdb, err := database.ConnectRedis(ctx, cfg.Redis, redisConnectAttempts, redisConnectWait, log)
	if err != nil {
		log.Warn("redis unavailable, running without cache", zap.Error(err))
	}
	reviewerCache := cache.New(rdb, cfg.Redis.TTL, log)

	retrier := newRepoRetrier(cfg.Retry, isRetryableFunc)

	appointmentRepo := repository.NewAppointmentRepository(db, trmpgx.DefaultCtxGetter, retrier)
	leaveRepo := repository.NewLeaveRepository(db, trmpgx.DefaultCtxGetter, retrier)
	historyRepo := repository.NewHistoryRepository(db, trmpgx.DefaultCtxGetter, retrier)
	notificationRepo := repository.NewNotificationRepository(db, trmpgx.DefaultCtxGetter, retrier)
	userRepo := repository.NewUserRepository(db, trmpgx.DefaultCtxGetter, retrier)
	locker := repository.NewLocker(db, trmpgx.DefaultCtxGetter, retrier)

	trManager := manager.Must(trmpgx.NewDefaultFactory(db))

	sender, closeSender := newSender(cfg, log)
	dispatcher := notify.NewDispatcher(notificationRepo, sender, trManager, notify.DispatcherConfig{
		PollInterval: cfg.Notify.PollInterval,
		BatchSize:    cfg.Notify.BatchSize,
		MaxAttempts:  cfg.Notify.MaxAttempts,
		Backoff:      notificationBackoff(cfg.Notify),
	}, log)

	appointmentService := service.NewAppointmentService(
		appointmentRepo,
		leaveRepo,
		historyRepo,
		notificationRepo,
		locker,
		reviewerCache,
		dispatcher,
		trManager,
		log,
	)
	leaveService := service.NewLeaveService(leaveRepo, locker, trManager, log)
	calendarService := service.NewCalendarService(appointmentRepo, leaveRepo, userRepo, reviewerCache, log)

	schedulerHandler := handler.NewSchedulerHandler(appointmentService, leaveService, calendarService, log)

	r := echo.New()
	r.HideBanner = true

	r.Use(middleware.Recover())
	r.Use(echo.WrapMiddleware(otelhttp.NewMiddleware(cfg.Tracing.ServiceName)))
	r.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			log.Debug("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			)
			return nil
		},
	}))

	a := &SchedulerApp{
		cfg:         cfg,
		db:          db,
		rdb:         rdb,
		r:           r,
		dispatcher:  dispatcher,
		closeSender: closeSender,
		log:         log,
	}

	r.GET("/healthz", a.healthz)
	api.RegisterHandlers(r, schedulerHandler)

	return a
}

func (a *SchedulerApp) healthz(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	if err := a.db.Ping(ctx); err != nil {
		a.log.Warn("health check failed", zap.Error(err))
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Run serves HTTP and drains the notification outbox until ctx is
// cancelled or either of them fails.
func (a *SchedulerApp) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.log.Info("http server starting", zap.String("port", a.cfg.App.Port))
		if err := a.r.Start(":" + a.cfg.App.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return a.dispatcher.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		return a.shutdownServer()
	})

	err := g.Wait()
	a.Shutdown()

	return err
}

func (a *SchedulerApp) shutdownServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.App.ShutdownTimeout)
	defer cancel()

	if err := a.r.Shutdown(ctx); err != nil {
		a.log.Error("failed to shutdown server", zap.Error(err))
		return err
	}

	return nil
}

// Shutdown closes the notification transport, Redis and database
// connections. The server and dispatcher must have stopped.
func (a *SchedulerApp) Shutdown() {
	if err := a.closeSender(); err != nil {
		a.log.Warn("failed to close notification transport", zap.Error(err))
	}

	if a.rdb != nil {
		if err := a.rdb.Close(); err != nil {
			a.log.Warn("failed to close redis", zap.Error(err))
		}
	}

	a.db.Close()
}
