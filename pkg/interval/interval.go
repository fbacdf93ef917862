package interval

import (
	"fmt"
	"time"
)

const (
	// MinDurationMinutes is the shortest schedulable span.
	MinDurationMinutes = 1
	// MaxDurationMinutes caps a span at one week.
	MaxDurationMinutes = 10080
)

// Interval is a time span anchored at Start and extending for DurationMinutes.
// It is an ephemeral value type shared by conflict detection, slot search and
// recurrence expansion; it is never persisted on its own.
type Interval struct {
	Start           time.Time
	DurationMinutes int
}

// New creates a validated Interval.
func New(start time.Time, durationMinutes int) (Interval, error) {
	iv := Interval{Start: start, DurationMinutes: durationMinutes}
	if err := iv.Validate(); err != nil {
		return Interval{}, err
	}
	return iv, nil
}

// Validate checks the duration bounds.
func (iv Interval) Validate() error {
	if iv.DurationMinutes < MinDurationMinutes || iv.DurationMinutes > MaxDurationMinutes {
		return fmt.Errorf("duration %d minutes out of range [%d, %d]",
			iv.DurationMinutes, MinDurationMinutes, MaxDurationMinutes)
	}
	return nil
}

// End returns Start + duration.
func (iv Interval) End() time.Time {
	return iv.Start.Add(time.Duration(iv.DurationMinutes) * time.Minute)
}

// Overlaps reports whether two intervals share any time.
// Half-open semantics: touching endpoints do not overlap.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start.Before(other.End()) && iv.End().After(other.Start)
}

// Contains reports whether t falls within [Start, End).
func (iv Interval) Contains(t time.Time) bool {
	return !t.Before(iv.Start) && t.Before(iv.End())
}
