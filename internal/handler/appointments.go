package handler

import (
	"net/http"

	"review-scheduler/internal/api"
	"review-scheduler/internal/service"

	"github.com/labstack/echo/v4"
)

func (h *SchedulerHandler) CreateAppointment(c echo.Context, params api.CreateAppointmentParams) error {
	body := api.CreateAppointmentJSONRequestBody{}
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "bad request")
	}

	iv, err := parseWindow(body.TimeStart, body.TimeEnd)
	if err != nil {
		return badRequest(c, err.Error())
	}

	appointment, err := h.appointments.Create(c.Request().Context(), service.CreateAppointmentInput{
		ApplicantID: params.XUserID,
		ReviewerID:  body.ReviewerId,
		Date:        body.Date.Time,
		Interval:    iv,
		ObjectName:  body.ObjectName,
	})
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusCreated, toAPIAppointment(appointment))
}

func (h *SchedulerHandler) CheckAvailability(c echo.Context) error {
	body := api.CheckAvailabilityJSONRequestBody{}
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "bad request")
	}

	iv, err := parseWindow(body.TimeStart, body.TimeEnd)
	if err != nil {
		return badRequest(c, err.Error())
	}

	result, err := h.appointments.CheckAvailability(c.Request().Context(), body.ReviewerId, body.Date.Time, iv, body.ExcludeId)
	if err != nil {
		return h.fail(c, err)
	}

	resp := api.CheckAvailabilityResponse{Available: !result.HasConflict}
	if result.HasConflict {
		kind := api.CheckAvailabilityResponseConflictType(result.Kind)
		reason := result.Reason
		resp.ConflictType = &kind
		resp.Reason = &reason
		if result.Kind != service.ConflictUnverified {
			resp.Conflict = &api.TimeSlot{
				Start: result.Window.Start.String(),
				End:   result.Window.End.String(),
			}
		}
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *SchedulerHandler) GetAppointment(c echo.Context, id api.AppointmentId, params api.GetAppointmentParams) error {
	appointment, err := h.appointments.Get(c.Request().Context(), id, params.XUserID)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, toAPIAppointment(appointment))
}

func (h *SchedulerHandler) AcceptAppointment(c echo.Context, id api.AppointmentId, params api.AcceptAppointmentParams) error {
	appointment, err := h.appointments.Accept(c.Request().Context(), id, params.XUserID)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, toAPIAppointment(appointment))
}

func (h *SchedulerHandler) RejectAppointment(c echo.Context, id api.AppointmentId, params api.RejectAppointmentParams) error {
	// the body is optional
	body := api.RejectAppointmentJSONRequestBody{}
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "bad request")
	}

	var reason string
	if body.Reason != nil {
		reason = *body.Reason
	}

	appointment, err := h.appointments.Reject(c.Request().Context(), id, params.XUserID, reason)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, toAPIAppointment(appointment))
}

func (h *SchedulerHandler) GetAppointmentHistory(c echo.Context, id api.AppointmentId, params api.GetAppointmentHistoryParams) error {
	history, err := h.appointments.History(c.Request().Context(), id, params.XUserID)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, toAPIHistory(history))
}

func (h *SchedulerHandler) ListReviewerAppointments(c echo.Context, reviewerId api.ReviewerId, params api.ListReviewerAppointmentsParams) error {
	list, err := h.appointments.ListByReviewer(c.Request().Context(), reviewerId, fromAPIDate(params.From), fromAPIDate(params.To))
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, toAPIAppointments(list))
}

func (h *SchedulerHandler) ListApplicantAppointments(c echo.Context, applicantId int64, params api.ListApplicantAppointmentsParams) error {
	list, err := h.appointments.ListByApplicant(c.Request().Context(), applicantId, fromAPIDate(params.From))
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, toAPIAppointments(list))
}
