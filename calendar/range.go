package calendar

import (
	"fmt"
	"time"
)

// =============================================================================
// DATE RANGE - Closed interval of instants driving multi-month generation
// =============================================================================

// Representable calendar years. Dates outside are precondition violations.
const (
	MinYear = 1
	MaxYear = 9999
)

// DateRange is a closed interval [Start, End] of instants.
//
// Examples:
//   - Single day: Start == End == 2025-01-15
//   - First quarter: 2025-01-01 .. 2025-03-31
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange validates and builds a closed range.
func NewDateRange(start, end time.Time) (DateRange, error) {
	if end.Before(start) {
		return DateRange{}, fmt.Errorf("%w: %s > %s", ErrInvalidRange,
			start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	for _, t := range []time.Time{start, end} {
		if !representable(t) {
			return DateRange{}, fmt.Errorf("%w: %s", ErrDateOutOfRange, t.Format(time.RFC3339))
		}
	}
	return DateRange{Start: start, End: end}, nil
}

// SingleDay returns the range [t, t].
func SingleDay(t time.Time) DateRange {
	return DateRange{Start: t, End: t}
}

// Contains returns true if t is within [Start, End].
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// Equal reports whether both ranges denote the same instants.
func (r DateRange) Equal(other DateRange) bool {
	return r.Start.Equal(other.Start) && r.End.Equal(other.End)
}

// String returns a string representation of the range.
func (r DateRange) String() string {
	return "[" + r.Start.Format(time.RFC3339) + ", " + r.End.Format(time.RFC3339) + "]"
}

func representable(t time.Time) bool {
	y := t.UTC().Year()
	return y >= MinYear && y <= MaxYear
}
