package handler

import (
	"time"

	"review-scheduler/internal/api"
	"review-scheduler/internal/models"
	"review-scheduler/internal/schedule"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toAPIDate(t time.Time) openapi_types.Date {
	return openapi_types.Date{Time: t}
}

func fromAPIDate(d *openapi_types.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := schedule.Day(d.Time)
	return &t
}

func toAPISlots(ivs []schedule.Interval) []api.TimeSlot {
	slots := make([]api.TimeSlot, len(ivs))
	for i, iv := range ivs {
		slots[i] = api.TimeSlot{Start: iv.Start.String(), End: iv.End.String()}
	}
	return slots
}

func toAPIAppointment(a *models.Appointment) api.Appointment {
	return api.Appointment{
		Id:                 a.ID,
		ApplicantId:        a.ApplicantID,
		ReviewerId:         a.ReviewerID,
		Date:               toAPIDate(a.Date),
		TimeStart:          a.Interval.Start.String(),
		TimeEnd:            a.Interval.End.String(),
		ObjectName:         a.ObjectName,
		Status:             api.AppointmentStatus(a.Status),
		DelegateReviewerId: a.DelegateReviewerID,
		DelegateStatus:     a.DelegateStatus,
		CreatedById:        a.CreatedByID,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
		CancelledAt:        a.CancelledAt,
		CancelledReason:    a.CancelledReason,
	}
}

func toAPIAppointments(list []*models.Appointment) []api.Appointment {
	out := make([]api.Appointment, len(list))
	for i, a := range list {
		out[i] = toAPIAppointment(a)
	}
	return out
}

func toAPIHistory(list []*models.AppointmentHistory) []api.HistoryEntry {
	out := make([]api.HistoryEntry, len(list))
	for i, h := range list {
		out[i] = api.HistoryEntry{
			Id:         h.ID,
			Action:     api.HistoryEntryAction(h.Action),
			ActorId:    h.ActorID,
			OccurredAt: h.OccurredAt,
		}
		if h.Notes != "" {
			notes := h.Notes
			out[i].Notes = &notes
		}
	}
	return out
}

func toAPILeave(l *models.LeaveSchedule) api.LeaveSchedule {
	return api.LeaveSchedule{
		Id:         l.ID,
		ReviewerId: l.ReviewerID,
		Date:       toAPIDate(l.Date),
		TimeStart:  l.Interval.Start.String(),
		TimeEnd:    l.Interval.End.String(),
		CreatedAt:  l.CreatedAt,
		UpdatedAt:  l.UpdatedAt,
	}
}

func toAPIUser(u *models.User) api.User {
	return api.User{
		Id:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Role:     api.UserRole(u.Role),
		IsActive: u.IsActive,
	}
}
