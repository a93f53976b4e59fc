package schedule

import (
	"iter"
	"slices"
	"time"
)

// Merge returns the minimal disjoint cover of the input. Overlapping and
// touching intervals are combined. The input slice is not modified.
func Merge(intervals []Interval) []Interval {
	if len(intervals) == 0 {
		return nil
	}

	sorted := slices.Clone(intervals)
	slices.SortFunc(sorted, func(a, b Interval) int {
		return int(a.Start - b.Start)
	})

	merged := make([]Interval, 0, len(sorted))
	running := sorted[0]

	for _, iv := range sorted[1:] {
		if iv.Start <= running.End {
			running.End = max(running.End, iv.End)
			continue
		}
		merged = append(merged, running)
		running = iv
	}

	return append(merged, running)
}

// Slots yields every [t, t+step) inside window, stepping from window.Start,
// that overlaps none of occupied. Order is chronological.
func Slots(window Interval, occupied []Interval, step int) iter.Seq[Interval] {
	return func(yield func(Interval) bool) {
		if step <= 0 {
			return
		}

		for cur := window.Start; cur.Add(step) <= window.End; cur = cur.Add(step) {
			candidate := Interval{Start: cur, End: cur.Add(step)}
			if _, busy := OverlapsAny(candidate, occupied); busy {
				continue
			}
			if !yield(candidate) {
				return
			}
		}
	}
}

// FreeSlots merges occupied and collects the bookable slots of size step
// within window.
func FreeSlots(window Interval, occupied []Interval, step int) []Interval {
	return slices.Collect(Slots(window, Merge(occupied), step))
}

// InBusinessHours reports whether iv lies fully inside BusinessHours.
func InBusinessHours(iv Interval) bool {
	return Contains(BusinessHours, iv)
}

// IsWeekday reports whether date falls Monday through Friday.
func IsWeekday(date time.Time) bool {
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	default:
		return true
	}
}

const DateLayout = time.DateOnly

// ParseDate parses YYYY-MM-DD into midnight UTC.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// Day truncates t to its calendar date at midnight UTC, keeping the wall date.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
