package handler

import (
	"net/http"

	"review-scheduler/internal/api"
	"review-scheduler/internal/models"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

func (h *SchedulerHandler) GetCalendar(c echo.Context, reviewerId api.ReviewerId, date openapi_types.Date, params api.GetCalendarParams) error {
	if reviewerId <= 0 {
		return badRequest(c, "invalid reviewer id")
	}

	var slotMinutes int
	if params.SlotMinutes != nil {
		slotMinutes = *params.SlotMinutes
	}

	cal, err := h.calendar.Calendar(c.Request().Context(), reviewerId, date.Time, slotMinutes)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, api.Calendar{
		ReviewerId:     cal.ReviewerID,
		Date:           toAPIDate(cal.Date),
		SlotMinutes:    cal.SlotMinutes,
		Occupied:       toAPISlots(cal.Occupied),
		AvailableSlots: toAPISlots(cal.Available),
	})
}

func (h *SchedulerHandler) ListReviewers(c echo.Context) error {
	reviewers, err := h.calendar.ListReviewers(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}

	resp := make([]api.User, len(reviewers))
	for i, u := range reviewers {
		resp[i] = toAPIUser(u)
	}

	return c.JSON(http.StatusOK, resp)
}

// UpsertUser stores a directory entry pushed by the identity provider.
func (h *SchedulerHandler) UpsertUser(c echo.Context, userId int64) error {
	body := api.UpsertUserJSONRequestBody{}
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "bad request")
	}

	user := &models.User{
		ID:       userId,
		Name:     body.Name,
		Role:     models.Role(body.Role),
		IsActive: body.IsActive,
	}
	if body.Email != nil {
		user.Email = *body.Email
	}

	if err := h.calendar.SyncUser(c.Request().Context(), user); err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, toAPIUser(user))
}
