package repository

import (
	"fmt"
	"time"

	"review-scheduler/internal/schedule"

	"github.com/jackc/pgx/v5/pgtype"
)

const microsPerMinute = int64(time.Minute / time.Microsecond)

type rowScanner interface {
	Scan(dest ...any) error
}

func toPgTime(t schedule.TimeOfDay) pgtype.Time {
	return pgtype.Time{Microseconds: int64(t) * microsPerMinute, Valid: true}
}

func fromPgTime(t pgtype.Time) (schedule.TimeOfDay, error) {
	if !t.Valid {
		return 0, fmt.Errorf("null time value")
	}
	return schedule.TimeOfDay(t.Microseconds / microsPerMinute), nil
}

func toInterval(start, end pgtype.Time) (schedule.Interval, error) {
	s, err := fromPgTime(start)
	if err != nil {
		return schedule.Interval{}, err
	}
	e, err := fromPgTime(end)
	if err != nil {
		return schedule.Interval{}, err
	}
	return schedule.Interval{Start: s, End: e}, nil
}

// dateOnly keeps the calendar date and drops the clock so the value binds to a
// DATE column unambiguously.
func dateOnly(t time.Time) pgtype.Date {
	return pgtype.Date{Time: schedule.Day(t), Valid: true}
}
