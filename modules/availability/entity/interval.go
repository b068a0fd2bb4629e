package entity

import (
	"time"

	"meetbook/core/errors"
)

// Interval is a half-open time range [Start, End). All availability and
// booking arithmetic is done on this value type; the invariant Start < End
// is enforced at construction.
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval validates and builds an interval. Times are normalized to UTC
// so instants round-trip exactly regardless of the caller's offset.
func NewInterval(start, end time.Time) (Interval, *errors.AppError) {
	if !start.Before(end) {
		return Interval{}, errors.NewAppError(errors.ErrInvalidRange, "start must be before end", nil)
	}
	return Interval{Start: start.UTC(), End: end.UTC()}, nil
}

func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// Contains reports whether inner lies entirely within i.
func (i Interval) Contains(inner Interval) bool {
	return !i.Start.After(inner.Start) && !inner.End.After(i.End)
}

// Overlaps reports whether the two half-open ranges share any instant.
// Touching endpoints do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}

// Subtract removes cut from i, assuming i contains cut, and returns the
// non-empty remainders: before = [i.Start, cut.Start), after = [cut.End, i.End).
// A remainder is nil when the cut touches that edge of i.
func (i Interval) Subtract(cut Interval) (before, after *Interval) {
	if i.Start.Before(cut.Start) {
		before = &Interval{Start: i.Start, End: cut.Start}
	}
	if cut.End.Before(i.End) {
		after = &Interval{Start: cut.End, End: i.End}
	}
	return before, after
}
