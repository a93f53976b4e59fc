package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"review-scheduler/internal/api"
	"review-scheduler/internal/handler"
	"review-scheduler/internal/mocks"
	"review-scheduler/internal/models"
	"review-scheduler/internal/schedule"
	"review-scheduler/internal/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var monday = time.Date(2025, 11, 24, 0, 0, 0, 0, time.UTC)

type testServer struct {
	e            *echo.Echo
	appointments *mocks.MockAppointmentService
	leaves       *mocks.MockLeaveService
	calendar     *mocks.MockCalendarService
}

func newTestServer(t *testing.T) *testServer {
	ctrl := gomock.NewController(t)

	s := &testServer{
		e:            echo.New(),
		appointments: mocks.NewMockAppointmentService(ctrl),
		leaves:       mocks.NewMockLeaveService(ctrl),
		calendar:     mocks.NewMockCalendarService(ctrl),
	}
	api.RegisterHandlers(s.e, handler.NewSchedulerHandler(s.appointments, s.leaves, s.calendar, zap.NewNop()))

	return s
}

func (s *testServer) do(t *testing.T, method, path string, userID int64, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if userID != 0 {
		req.Header.Set("X-User-ID", fmt.Sprint(userID))
	}

	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) api.ErrorResponseErrorCode {
	t.Helper()
	return decode[api.ErrorResponse](t, rec).Error.Code
}

func window(start, end int) schedule.Interval {
	return schedule.Interval{Start: schedule.Clock(start, 0), End: schedule.Clock(end, 0)}
}

func TestCreateAppointment(t *testing.T) {
	const body = `{"reviewer_id":7,"date":"2025-11-24","time_start":"09:00","time_end":"10:00","object_name":"Lot 4"}`

	t.Run("created", func(t *testing.T) {
		s := newTestServer(t)
		id := uuid.New()

		s.appointments.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in service.CreateAppointmentInput) (*models.Appointment, error) {
				require.Equal(t, int64(5), in.ApplicantID)
				require.Equal(t, int64(7), in.ReviewerID)
				require.True(t, monday.Equal(in.Date))
				require.Equal(t, window(9, 10), in.Interval)
				require.Equal(t, "Lot 4", in.ObjectName)
				return &models.Appointment{
					ID:          id,
					ApplicantID: in.ApplicantID,
					ReviewerID:  in.ReviewerID,
					Date:        in.Date,
					Interval:    in.Interval,
					ObjectName:  in.ObjectName,
					Status:      models.StatusPending,
					CreatedByID: in.ApplicantID,
				}, nil
			})

		rec := s.do(t, http.MethodPost, "/appointments", 5, body)
		require.Equal(t, http.StatusCreated, rec.Code)

		got := decode[api.Appointment](t, rec)
		require.Equal(t, id, got.Id)
		require.Equal(t, api.AppointmentStatusPending, got.Status)
		require.Equal(t, "09:00", got.TimeStart)
		require.Equal(t, "10:00", got.TimeEnd)
		require.Equal(t, "2025-11-24", got.Date.String())
	})

	t.Run("missing actor header", func(t *testing.T) {
		s := newTestServer(t)
		rec := s.do(t, http.MethodPost, "/appointments", 0, body)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unparseable time", func(t *testing.T) {
		s := newTestServer(t)
		rec := s.do(t, http.MethodPost, "/appointments", 5,
			`{"reviewer_id":7,"date":"2025-11-24","time_start":"9am","time_end":"10:00","object_name":"x"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, api.INVALIDREQUEST, errorCode(t, rec))
	})

	tests := []struct {
		name   string
		err    error
		status int
		code   api.ErrorResponseErrorCode
	}{
		{"validation", service.ErrSelfBooking, http.StatusBadRequest, api.VALIDATIONFAILED},
		{"conflict", &service.ConflictError{Kind: service.ConflictAppointment, Window: window(9, 10), Reason: "appointment conflict: 09:00-10:00"}, http.StatusConflict, api.SLOTCONFLICT},
		{"storage", errors.New("db down"), http.StatusInternalServerError, api.INTERNAL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			s.appointments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			rec := s.do(t, http.MethodPost, "/appointments", 5, body)
			require.Equal(t, tt.status, rec.Code)

			resp := decode[api.ErrorResponse](t, rec)
			require.Equal(t, tt.code, resp.Error.Code)
			if tt.code == api.SLOTCONFLICT {
				require.Equal(t, "appointment conflict: 09:00-10:00", resp.Error.Message)
			}
			if tt.code == api.INTERNAL {
				require.NotContains(t, resp.Error.Message, "db down")
			}
		})
	}
}

func TestAppointmentTransitions(t *testing.T) {
	id := uuid.New()
	path := "/appointments/" + id.String()

	t.Run("accept", func(t *testing.T) {
		s := newTestServer(t)
		s.appointments.EXPECT().Accept(gomock.Any(), id, int64(7)).
			Return(&models.Appointment{ID: id, Status: models.StatusAccepted, Interval: window(9, 10)}, nil)

		rec := s.do(t, http.MethodPut, path+"/accept", 7, "")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, api.AppointmentStatusAccepted, decode[api.Appointment](t, rec).Status)
	})

	t.Run("accept by someone else", func(t *testing.T) {
		s := newTestServer(t)
		s.appointments.EXPECT().Accept(gomock.Any(), id, int64(8)).Return(nil, service.ErrNotFoundOrForbidden)

		rec := s.do(t, http.MethodPut, path+"/accept", 8, "")
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Equal(t, api.NOTFOUND, errorCode(t, rec))
	})

	t.Run("accept twice", func(t *testing.T) {
		s := newTestServer(t)
		s.appointments.EXPECT().Accept(gomock.Any(), id, int64(7)).
			Return(nil, fmt.Errorf("%w (current status: accepted)", service.ErrWrongState))

		rec := s.do(t, http.MethodPut, path+"/accept", 7, "")
		require.Equal(t, http.StatusConflict, rec.Code)
		require.Equal(t, api.WRONGSTATE, errorCode(t, rec))
	})

	t.Run("reject with reason", func(t *testing.T) {
		s := newTestServer(t)
		s.appointments.EXPECT().Reject(gomock.Any(), id, int64(7), "on leave").
			Return(&models.Appointment{ID: id, Status: models.StatusRejected}, nil)

		rec := s.do(t, http.MethodPut, path+"/reject", 7, `{"reason":"on leave"}`)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("reject without body", func(t *testing.T) {
		s := newTestServer(t)
		s.appointments.EXPECT().Reject(gomock.Any(), id, int64(7), "").
			Return(&models.Appointment{ID: id, Status: models.StatusRejected}, nil)

		rec := s.do(t, http.MethodPut, path+"/reject", 7, "")
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		s := newTestServer(t)
		rec := s.do(t, http.MethodPut, "/appointments/42/accept", 7, "")
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAppointmentReads(t *testing.T) {
	id := uuid.New()

	t.Run("history", func(t *testing.T) {
		s := newTestServer(t)
		s.appointments.EXPECT().History(gomock.Any(), id, int64(5)).Return([]*models.AppointmentHistory{
			{ID: uuid.New(), AppointmentID: id, Action: models.ActionCreated, ActorID: 5},
			{ID: uuid.New(), AppointmentID: id, Action: models.ActionRejected, ActorID: 7, Notes: "busy"},
		}, nil)

		rec := s.do(t, http.MethodGet, "/appointments/"+id.String()+"/history", 5, "")
		require.Equal(t, http.StatusOK, rec.Code)

		got := decode[[]api.HistoryEntry](t, rec)
		require.Len(t, got, 2)
		require.Nil(t, got[0].Notes)
		require.Equal(t, "busy", *got[1].Notes)
	})

	t.Run("reviewer list with range", func(t *testing.T) {
		s := newTestServer(t)
		s.appointments.EXPECT().
			ListByReviewer(gomock.Any(), int64(7), gomock.Any(), nil).
			DoAndReturn(func(_ context.Context, _ int64, from, _ *time.Time) ([]*models.Appointment, error) {
				require.NotNil(t, from)
				require.True(t, monday.Equal(*from))
				return []*models.Appointment{}, nil
			})

		rec := s.do(t, http.MethodGet, "/reviewers/7/appointments?from=2025-11-24", 0, "")
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("applicant list", func(t *testing.T) {
		s := newTestServer(t)
		s.appointments.EXPECT().ListByApplicant(gomock.Any(), int64(5), nil).
			Return([]*models.Appointment{{ID: id, ApplicantID: 5}}, nil)

		rec := s.do(t, http.MethodGet, "/applicants/5/appointments", 0, "")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, decode[[]api.Appointment](t, rec), 1)
	})
}

func TestCheckAvailability(t *testing.T) {
	const body = `{"reviewer_id":7,"date":"2025-11-24","time_start":"13:00","time_end":"14:00"}`

	t.Run("free", func(t *testing.T) {
		s := newTestServer(t)
		s.appointments.EXPECT().CheckAvailability(gomock.Any(), int64(7), gomock.Any(), window(13, 14), nil).
			Return(service.ConflictResult{}, nil)

		rec := s.do(t, http.MethodPost, "/appointments/check", 0, body)
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"available":true}`, rec.Body.String())
	})

	t.Run("leave conflict", func(t *testing.T) {
		s := newTestServer(t)
		s.appointments.EXPECT().CheckAvailability(gomock.Any(), int64(7), gomock.Any(), window(13, 14), nil).
			Return(service.ConflictResult{
				HasConflict: true,
				Kind:        service.ConflictLeave,
				Window:      window(12, 15),
				Reason:      "leave conflict: 12:00-15:00",
			}, nil)

		rec := s.do(t, http.MethodPost, "/appointments/check", 0, body)
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{
			"available": false,
			"conflict_type": "leave",
			"reason": "leave conflict: 12:00-15:00",
			"conflict": {"start": "12:00", "end": "15:00"}
		}`, rec.Body.String())
	})

	t.Run("unverified has no window", func(t *testing.T) {
		s := newTestServer(t)
		s.appointments.EXPECT().CheckAvailability(gomock.Any(), int64(7), gomock.Any(), window(13, 14), nil).
			Return(service.ConflictResult{
				HasConflict: true,
				Kind:        service.ConflictUnverified,
				Reason:      "conflict check failed, please retry later",
			}, nil)

		rec := s.do(t, http.MethodPost, "/appointments/check", 0, body)
		got := decode[api.CheckAvailabilityResponse](t, rec)
		require.False(t, got.Available)
		require.Nil(t, got.Conflict)
	})
}

func TestGetCalendar(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		s := newTestServer(t)
		s.calendar.EXPECT().Calendar(gomock.Any(), int64(7), gomock.Any(), 60).
			Return(&service.Calendar{
				ReviewerID:  7,
				Date:        monday,
				SlotMinutes: 60,
				Occupied:    []schedule.Interval{window(9, 17)},
				Available:   []schedule.Interval{window(17, 18)},
			}, nil)

		rec := s.do(t, http.MethodGet, "/calendar/7/2025-11-24?slot_minutes=60", 0, "")
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{
			"reviewer_id": 7,
			"date": "2025-11-24",
			"slot_minutes": 60,
			"occupied": [{"start": "09:00", "end": "17:00"}],
			"available_slots": [{"start": "17:00", "end": "18:00"}]
		}`, rec.Body.String())
	})

	t.Run("bad date", func(t *testing.T) {
		s := newTestServer(t)
		rec := s.do(t, http.MethodGet, "/calendar/7/24-11-2025", 0, "")
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bad reviewer", func(t *testing.T) {
		s := newTestServer(t)
		rec := s.do(t, http.MethodGet, "/calendar/0/2025-11-24", 0, "")
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bad slot size", func(t *testing.T) {
		s := newTestServer(t)
		s.calendar.EXPECT().Calendar(gomock.Any(), int64(7), gomock.Any(), 20).Return(nil, service.ErrInvalidSlotSize)

		rec := s.do(t, http.MethodGet, "/calendar/7/2025-11-24?slot_minutes=20", 0, "")
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, api.VALIDATIONFAILED, errorCode(t, rec))
	})
}

func TestLeaveSchedules(t *testing.T) {
	id := uuid.New()

	t.Run("create for caller", func(t *testing.T) {
		s := newTestServer(t)
		s.leaves.EXPECT().Create(gomock.Any(), int64(7), gomock.Any(), window(13, 15)).
			Return(&models.LeaveSchedule{ID: id, ReviewerID: 7, Date: monday, Interval: window(13, 15)}, nil)

		rec := s.do(t, http.MethodPost, "/leave-schedules", 7,
			`{"date":"2025-11-24","time_start":"13:00","time_end":"15:00"}`)
		require.Equal(t, http.StatusCreated, rec.Code)
		require.Equal(t, id, decode[api.LeaveSchedule](t, rec).Id)
	})

	t.Run("overlap", func(t *testing.T) {
		s := newTestServer(t)
		s.leaves.EXPECT().Create(gomock.Any(), int64(7), gomock.Any(), gomock.Any()).Return(nil, service.ErrLeaveOverlap)

		rec := s.do(t, http.MethodPost, "/leave-schedules", 7,
			`{"date":"2025-11-24","time_start":"13:00","time_end":"15:00"}`)
		require.Equal(t, http.StatusConflict, rec.Code)
		require.Equal(t, api.LEAVEOVERLAP, errorCode(t, rec))
	})

	t.Run("get missing", func(t *testing.T) {
		s := newTestServer(t)
		s.leaves.EXPECT().Get(gomock.Any(), id).Return(nil, service.ErrLeaveNotFound)

		rec := s.do(t, http.MethodGet, "/leave-schedules/"+id.String(), 0, "")
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("delete", func(t *testing.T) {
		s := newTestServer(t)
		s.leaves.EXPECT().Delete(gomock.Any(), id, int64(7)).Return(nil)

		rec := s.do(t, http.MethodDelete, "/leave-schedules/"+id.String(), 7, "")
		require.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("delete someone else's", func(t *testing.T) {
		s := newTestServer(t)
		s.leaves.EXPECT().Delete(gomock.Any(), id, int64(8)).Return(service.ErrLeaveForbidden)

		rec := s.do(t, http.MethodDelete, "/leave-schedules/"+id.String(), 8, "")
		require.Equal(t, http.StatusForbidden, rec.Code)
		require.Equal(t, api.FORBIDDEN, errorCode(t, rec))
	})

	t.Run("list", func(t *testing.T) {
		s := newTestServer(t)
		s.leaves.EXPECT().ListByReviewer(gomock.Any(), int64(7), nil, nil).
			Return([]*models.LeaveSchedule{{ID: id, ReviewerID: 7, Interval: window(13, 15)}}, nil)

		rec := s.do(t, http.MethodGet, "/reviewers/7/leave-schedules", 0, "")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, decode[[]api.LeaveSchedule](t, rec), 1)
	})
}

func TestUsers(t *testing.T) {
	t.Run("reviewers", func(t *testing.T) {
		s := newTestServer(t)
		s.calendar.EXPECT().ListReviewers(gomock.Any()).
			Return([]*models.User{{ID: 7, Name: "Rita", Email: "rita@example.com", Role: models.RoleReviewer, IsActive: true}}, nil)

		rec := s.do(t, http.MethodGet, "/reviewers", 0, "")
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `[{"id":7,"name":"Rita","email":"rita@example.com","role":"reviewer","is_active":true}]`, rec.Body.String())
	})

	t.Run("upsert", func(t *testing.T) {
		s := newTestServer(t)
		s.calendar.EXPECT().SyncUser(gomock.Any(), &models.User{
			ID: 9, Name: "Nia", Email: "nia@example.com", Role: models.RoleReviewer, IsActive: true,
		}).Return(nil)

		rec := s.do(t, http.MethodPut, "/users/9", 0,
			`{"name":"Nia","email":"nia@example.com","role":"reviewer","is_active":true}`)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("upsert invalid", func(t *testing.T) {
		s := newTestServer(t)
		s.calendar.EXPECT().SyncUser(gomock.Any(), gomock.Any()).Return(service.ErrInvalidUser)

		rec := s.do(t, http.MethodPut, "/users/9", 0, `{"name":"","role":"root","is_active":true}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
