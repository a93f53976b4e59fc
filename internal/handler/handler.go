package handler

//go:generate mockgen -source=handler.go -destination=../mocks/handler.go -package=mocks .

import (
	"context"
	"errors"
	"net/http"
	"time"

	"review-scheduler/internal/api"
	"review-scheduler/internal/models"
	"review-scheduler/internal/schedule"
	"review-scheduler/internal/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type AppointmentService interface {
	Create(ctx context.Context, in service.CreateAppointmentInput) (*models.Appointment, error)
	Accept(ctx context.Context, id uuid.UUID, reviewerID int64) (*models.Appointment, error)
	Reject(ctx context.Context, id uuid.UUID, reviewerID int64, reason string) (*models.Appointment, error)
	Get(ctx context.Context, id uuid.UUID, actorID int64) (*models.Appointment, error)
	History(ctx context.Context, id uuid.UUID, actorID int64) ([]*models.AppointmentHistory, error)
	ListByReviewer(ctx context.Context, reviewerID int64, from, to *time.Time) ([]*models.Appointment, error)
	ListByApplicant(ctx context.Context, applicantID int64, from *time.Time) ([]*models.Appointment, error)
	CheckAvailability(ctx context.Context, reviewerID int64, date time.Time, iv schedule.Interval, excludeID *uuid.UUID) (service.ConflictResult, error)
}

type LeaveService interface {
	Create(ctx context.Context, reviewerID int64, date time.Time, iv schedule.Interval) (*models.LeaveSchedule, error)
	Get(ctx context.Context, id uuid.UUID) (*models.LeaveSchedule, error)
	Delete(ctx context.Context, id uuid.UUID, reviewerID int64) error
	ListByReviewer(ctx context.Context, reviewerID int64, from, to *time.Time) ([]*models.LeaveSchedule, error)
}

type CalendarService interface {
	Calendar(ctx context.Context, reviewerID int64, date time.Time, slotMinutes int) (*service.Calendar, error)
	ListReviewers(ctx context.Context) ([]*models.User, error)
	SyncUser(ctx context.Context, user *models.User) error
}

type SchedulerHandler struct {
	appointments AppointmentService
	leaves       LeaveService
	calendar     CalendarService
	log          *zap.Logger
}

var _ api.ServerInterface = (*SchedulerHandler)(nil)

func NewSchedulerHandler(
	appointments AppointmentService,
	leaves LeaveService,
	calendar CalendarService,
	log *zap.Logger,
) *SchedulerHandler {
	return &SchedulerHandler{
		appointments: appointments,
		leaves:       leaves,
		calendar:     calendar,
		log:          log,
	}
}

func errorJSON(c echo.Context, status int, code api.ErrorResponseErrorCode, message string) error {
	errResponse := api.ErrorResponse{}
	errResponse.Error.Code = code
	errResponse.Error.Message = message
	return c.JSON(status, errResponse)
}

func badRequest(c echo.Context, message string) error {
	return errorJSON(c, http.StatusBadRequest, api.INVALIDREQUEST, message)
}

// fail maps service errors to responses. Expected failures are answered
// without error logging; anything unrecognised becomes a 500.
func (h *SchedulerHandler) fail(c echo.Context, err error) error {
	var conflict *service.ConflictError

	switch {
	case errors.As(err, &conflict):
		h.log.Info("request conflicts with occupied time",
			zap.String("path", c.Path()),
			zap.String("kind", string(conflict.Kind)),
			zap.String("reason", conflict.Reason),
		)
		return errorJSON(c, http.StatusConflict, api.SLOTCONFLICT, conflict.Reason)
	case errors.Is(err, service.ErrValidation):
		return errorJSON(c, http.StatusBadRequest, api.VALIDATIONFAILED, err.Error())
	case errors.Is(err, service.ErrNotFoundOrForbidden):
		return errorJSON(c, http.StatusNotFound, api.NOTFOUND, service.ErrNotFoundOrForbidden.Error())
	case errors.Is(err, service.ErrWrongState):
		return errorJSON(c, http.StatusConflict, api.WRONGSTATE, err.Error())
	case errors.Is(err, service.ErrLeaveNotFound):
		return errorJSON(c, http.StatusNotFound, api.NOTFOUND, err.Error())
	case errors.Is(err, service.ErrLeaveForbidden):
		return errorJSON(c, http.StatusForbidden, api.FORBIDDEN, err.Error())
	case errors.Is(err, service.ErrLeaveOverlap):
		return errorJSON(c, http.StatusConflict, api.LEAVEOVERLAP, err.Error())
	default:
		h.log.Error("request failed",
			zap.String("method", c.Request().Method),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return errorJSON(c, http.StatusInternalServerError, api.INTERNAL, "internal error")
	}
}

// parseWindow reads "HH:MM" bounds. Ordering and alignment are left to the
// services so they report them with their own errors.
func parseWindow(start, end string) (schedule.Interval, error) {
	s, err := schedule.ParseTimeOfDay(start)
	if err != nil {
		return schedule.Interval{}, err
	}
	e, err := schedule.ParseTimeOfDay(end)
	if err != nil {
		return schedule.Interval{}, err
	}
	return schedule.Interval{Start: s, End: e}, nil
}
