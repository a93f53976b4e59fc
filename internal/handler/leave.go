package handler

import (
	"net/http"

	"review-scheduler/internal/api"

	"github.com/labstack/echo/v4"
)

// CreateLeaveSchedule books leave for the calling reviewer.
func (h *SchedulerHandler) CreateLeaveSchedule(c echo.Context, params api.CreateLeaveScheduleParams) error {
	body := api.CreateLeaveScheduleJSONRequestBody{}
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "bad request")
	}

	iv, err := parseWindow(body.TimeStart, body.TimeEnd)
	if err != nil {
		return badRequest(c, err.Error())
	}

	leave, err := h.leaves.Create(c.Request().Context(), params.XUserID, body.Date.Time, iv)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusCreated, toAPILeave(leave))
}

func (h *SchedulerHandler) GetLeaveSchedule(c echo.Context, id api.LeaveId) error {
	leave, err := h.leaves.Get(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, toAPILeave(leave))
}

func (h *SchedulerHandler) DeleteLeaveSchedule(c echo.Context, id api.LeaveId, params api.DeleteLeaveScheduleParams) error {
	if err := h.leaves.Delete(c.Request().Context(), id, params.XUserID); err != nil {
		return h.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *SchedulerHandler) ListReviewerLeaveSchedules(c echo.Context, reviewerId api.ReviewerId, params api.ListReviewerLeaveSchedulesParams) error {
	list, err := h.leaves.ListByReviewer(c.Request().Context(), reviewerId, fromAPIDate(params.From), fromAPIDate(params.To))
	if err != nil {
		return h.fail(c, err)
	}

	resp := make([]api.LeaveSchedule, len(list))
	for i, l := range list {
		resp[i] = toAPILeave(l)
	}

	return c.JSON(http.StatusOK, resp)
}
