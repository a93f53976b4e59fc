package service

import (
	"context"
	"time"

	"review-scheduler/internal/models"
	"review-scheduler/internal/schedule"
)

// AvailabilityCalculator derives bookable slots from current occupancy.
// It holds no state; every call reads occupancy afresh.
type AvailabilityCalculator struct {
	appointments AppointmentReader
	leaves       LeaveReader
}

func NewAvailabilityCalculator(appointments AppointmentReader, leaves LeaveReader) *AvailabilityCalculator {
	return &AvailabilityCalculator{
		appointments: appointments,
		leaves:       leaves,
	}
}

// Occupied returns the merged cover of the reviewer's occupying appointments
// and leave on date.
func (c *AvailabilityCalculator) Occupied(ctx context.Context, reviewerID int64, date time.Time) ([]schedule.Interval, error) {
	appointments, err := c.appointments.ListByReviewerDay(ctx, reviewerID, date, models.NonOccupying, nil)
	if err != nil {
		return nil, err
	}

	leaves, err := c.leaves.ListByReviewerDay(ctx, reviewerID, date)
	if err != nil {
		return nil, err
	}

	occupied := make([]schedule.Interval, 0, len(appointments)+len(leaves))
	for _, a := range appointments {
		occupied = append(occupied, a.Interval)
	}
	for _, l := range leaves {
		occupied = append(occupied, l.Interval)
	}

	return schedule.Merge(occupied), nil
}

// DayAvailability is one reviewer day: the merged occupied cover and the free
// slots left around it.
type DayAvailability struct {
	Occupied  []schedule.Interval
	Available []schedule.Interval
}

// Day reads occupancy afresh and lays the slot grid over it.
func (c *AvailabilityCalculator) Day(ctx context.Context, reviewerID int64, date time.Time, slotMinutes int) (DayAvailability, error) {
	if err := ValidateSlotMinutes(slotMinutes); err != nil {
		return DayAvailability{}, err
	}

	occupied, err := c.Occupied(ctx, reviewerID, date)
	if err != nil {
		return DayAvailability{}, err
	}

	return DayAvailability{
		Occupied:  occupied,
		Available: schedule.FreeSlots(schedule.BusinessHours, occupied, slotMinutes),
	}, nil
}

// AvailableSlots lists every free [t, t+slotMinutes) in business hours, in
// chronological order.
func (c *AvailabilityCalculator) AvailableSlots(ctx context.Context, reviewerID int64, date time.Time, slotMinutes int) ([]schedule.Interval, error) {
	day, err := c.Day(ctx, reviewerID, date, slotMinutes)
	if err != nil {
		return nil, err
	}
	return day.Available, nil
}

func ValidateSlotMinutes(slotMinutes int) error {
	if slotMinutes <= 0 || slotMinutes%schedule.Granularity != 0 {
		return ErrInvalidSlotSize
	}
	return nil
}
