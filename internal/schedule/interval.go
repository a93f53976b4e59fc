// Package schedule holds the time-of-day arithmetic behind conflict detection
// and availability: half-open intervals, merging and slot enumeration.
// Everything here is pure and works on naive local time.
package schedule

import (
	"errors"
	"fmt"
	"time"
)

// TimeOfDay is a wall-clock time expressed in minutes after midnight.
type TimeOfDay int

const (
	// Granularity is the alignment every bound must respect.
	Granularity = 15

	DefaultSlotMinutes = 15

	minutesPerDay = 24 * 60
)

var (
	BusinessStart = Clock(9, 0)
	BusinessEnd   = Clock(18, 0)

	// BusinessHours is the daily window appointments and slots must fall in.
	BusinessHours = Interval{Start: BusinessStart, End: BusinessEnd}
)

var (
	ErrInvalidTime     = errors.New("invalid time of day")
	ErrInvalidInterval = errors.New("interval start must be before end")
)

func Clock(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*60 + minute)
}

// ParseTimeOfDay accepts "HH:MM" and "HH:MM:SS" (seconds must be zero).
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	for _, layout := range []string{"15:04", "15:04:05"} {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		if t.Second() != 0 {
			return 0, fmt.Errorf("%w: %q has seconds", ErrInvalidTime, s)
		}
		return Clock(t.Hour(), t.Minute()), nil
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
}

func (t TimeOfDay) Hour() int   { return int(t) / 60 }
func (t TimeOfDay) Minute() int { return int(t) % 60 }

func (t TimeOfDay) Valid() bool {
	return t >= 0 && t <= minutesPerDay
}

func (t TimeOfDay) Add(minutes int) TimeOfDay {
	return t + TimeOfDay(minutes)
}

// Aligned reports whether t sits on a multiple of step minutes.
func (t TimeOfDay) Aligned(step int) bool {
	return step > 0 && int(t)%step == 0
}

// Duration converts t into an offset from midnight.
func (t TimeOfDay) Duration() time.Duration {
	return time.Duration(t) * time.Minute
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// Interval is the half-open range [Start, End).
type Interval struct {
	Start TimeOfDay `json:"start"`
	End   TimeOfDay `json:"end"`
}

func NewInterval(start, end TimeOfDay) (Interval, error) {
	iv := Interval{Start: start, End: end}
	if err := iv.Validate(); err != nil {
		return Interval{}, err
	}
	return iv, nil
}

// ParseInterval builds an interval from two "HH:MM" strings.
func ParseInterval(start, end string) (Interval, error) {
	s, err := ParseTimeOfDay(start)
	if err != nil {
		return Interval{}, err
	}
	e, err := ParseTimeOfDay(end)
	if err != nil {
		return Interval{}, err
	}
	return NewInterval(s, e)
}

func (iv Interval) Validate() error {
	if !iv.Start.Valid() || !iv.End.Valid() {
		return ErrInvalidTime
	}
	if iv.Start >= iv.End {
		return ErrInvalidInterval
	}
	return nil
}

func (iv Interval) Minutes() int {
	return int(iv.End - iv.Start)
}

// Aligned reports whether both bounds sit on the step grid.
func (iv Interval) Aligned(step int) bool {
	return iv.Start.Aligned(step) && iv.End.Aligned(step)
}

// String renders the interval as HH:MM-HH:MM.
func (iv Interval) String() string {
	return iv.Start.String() + "-" + iv.End.String()
}

// Overlaps is true iff a.Start < b.End and b.Start < a.End.
// Touching endpoints do not overlap.
func Overlaps(a, b Interval) bool {
	return a.Start < b.End && b.Start < a.End
}

func Contains(outer, inner Interval) bool {
	return outer.Start <= inner.Start && inner.End <= outer.End
}

// OverlapsAny returns the first interval in set that overlaps iv.
func OverlapsAny(iv Interval, set []Interval) (Interval, bool) {
	for _, other := range set {
		if Overlaps(iv, other) {
			return other, true
		}
	}
	return Interval{}, false
}
