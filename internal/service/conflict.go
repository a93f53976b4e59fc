package service

import (
	"context"
	"time"

	"review-scheduler/internal/models"
	"review-scheduler/internal/schedule"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

type ConflictKind string

const (
	ConflictAppointment ConflictKind = "appointment"
	ConflictLeave       ConflictKind = "leave"
	// ConflictUnverified means occupancy could not be read and the check
	// failed closed.
	ConflictUnverified ConflictKind = "unverified"
)

const reasonCheckFailed = "conflict check failed, please retry later"

type ConflictResult struct {
	HasConflict bool
	Reason      string
	Kind        ConflictKind
	Window      schedule.Interval
}

// Err converts a positive result into a *ConflictError, nil otherwise.
func (r ConflictResult) Err() error {
	if !r.HasConflict {
		return nil
	}
	return &ConflictError{Kind: r.Kind, Window: r.Window, Reason: r.Reason}
}

func conflictWith(kind ConflictKind, window schedule.Interval) ConflictResult {
	return ConflictResult{
		HasConflict: true,
		Kind:        kind,
		Window:      window,
		Reason:      string(kind) + " conflict: " + window.String(),
	}
}

// ConflictDetector decides whether a candidate interval collides with a
// reviewer's occupied time on a day. Appointments are checked before leave.
type ConflictDetector struct {
	appointments AppointmentReader
	leaves       LeaveReader

	log *zap.Logger
}

func NewConflictDetector(appointments AppointmentReader, leaves LeaveReader, log *zap.Logger) *ConflictDetector {
	return &ConflictDetector{
		appointments: appointments,
		leaves:       leaves,
		log:          log,
	}
}

// CheckConflict never returns an error: a failed read is reported as a
// conflict so nothing is booked on unknown occupancy.
func (d *ConflictDetector) CheckConflict(
	ctx context.Context,
	reviewerID int64,
	date time.Time,
	iv schedule.Interval,
	excludeID *uuid.UUID,
) ConflictResult {
	ctx, span := tracer.Start(ctx, "ConflictDetector.CheckConflict")
	defer span.End()
	span.SetAttributes(
		attribute.Int64("reviewer_id", reviewerID),
		attribute.String("date", date.Format(schedule.DateLayout)),
		attribute.String("interval", iv.String()),
	)

	appointments, err := d.appointments.ListByReviewerDay(ctx, reviewerID, date, models.NonOccupying, excludeID)
	if err != nil {
		d.log.Error("failed to load appointments for conflict check",
			zap.Error(err),
			zap.Int64("reviewer_id", reviewerID),
			zap.Time("date", date),
		)
		span.SetStatus(codes.Error, err.Error())
		return ConflictResult{HasConflict: true, Kind: ConflictUnverified, Reason: reasonCheckFailed}
	}

	for _, a := range appointments {
		if schedule.Overlaps(iv, a.Interval) {
			return conflictWith(ConflictAppointment, a.Interval)
		}
	}

	leaves, err := d.leaves.ListByReviewerDay(ctx, reviewerID, date)
	if err != nil {
		d.log.Error("failed to load leave for conflict check",
			zap.Error(err),
			zap.Int64("reviewer_id", reviewerID),
			zap.Time("date", date),
		)
		span.SetStatus(codes.Error, err.Error())
		return ConflictResult{HasConflict: true, Kind: ConflictUnverified, Reason: reasonCheckFailed}
	}

	for _, l := range leaves {
		if schedule.Overlaps(iv, l.Interval) {
			return conflictWith(ConflictLeave, l.Interval)
		}
	}

	return ConflictResult{}
}
