/*
types.go - Grid value types produced by the generator

KEY CONCEPTS IN THIS FILE:
  - DayContext: One calendar day (instant + year/month/day in the config zone)
  - WeekContext: Seven consecutive days starting on the first weekday
  - MonthContext: The contiguous run of weeks covering one calendar month
  - Loadable: Anything with a stable string identity (weeks, months)

IDENTITY:
  MonthContext.ID()  "{year}-{month}"          e.g. "2025-1"
  WeekContext.ID()   "{year}-{month}-{index}"  e.g. "2025-1-0"
  DayContext.ID()    epoch seconds of the day's instant

  Weeks are tagged with the month that OWNS them, not the month of every
  day they contain, so the same physical week appears under two ids when it
  straddles a month boundary.

IMMUTABILITY:
  All values are created by the generator and never mutated afterwards.
  Generator slices are fresh per call; Cache hands out shared ones.
*/
package calendar

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DaysPerWeek is the length of every generated week.
const DaysPerWeek = 7

// =============================================================================
// DAY
// =============================================================================

// DayContext is a single day in a calendar grid.
type DayContext struct {
	Date  time.Time
	Year  int
	Month int // 1-12
	Day   int // 1-31

	// Weekday is 1-7 (1 = Sunday) in the configured zone.
	Weekday int
}

// ID returns the epoch offset of the day's instant in seconds, exact to the
// nanosecond.
func (d DayContext) ID() decimal.Decimal {
	return decimal.NewFromInt(d.Date.Unix()).Add(decimal.New(int64(d.Date.Nanosecond()), -9))
}

// UnixID returns the whole-second epoch offset of the day's instant.
func (d DayContext) UnixID() int64 {
	return d.Date.Unix()
}

// InMonth reports whether the day belongs to the given (year, month).
func (d DayContext) InMonth(year, month int) bool {
	return d.Year == year && d.Month == month
}

func (d DayContext) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// =============================================================================
// WEEK
// =============================================================================

// WeekContext is a 7-day window aligned to the configured first weekday.
//
// WeekIndex is the 0-based position inside the owning month when the week
// was produced by MonthContext, and the week-of-year number when produced
// standalone by WeekContext or WeekContexts.
type WeekContext struct {
	Year      int
	Month     int
	WeekIndex int
	Days      []DayContext
}

// ID returns "{year}-{month}-{weekIndex}".
func (w WeekContext) ID() string {
	return fmt.Sprintf("%d-%d-%d", w.Year, w.Month, w.WeekIndex)
}

// Start returns the first day's instant.
func (w WeekContext) Start() time.Time {
	if len(w.Days) == 0 {
		return time.Time{}
	}
	return w.Days[0].Date
}

// IndexOf returns the position of (year, month, day) within the week, or -1.
func (w WeekContext) IndexOf(year, month, day int) int {
	for i, d := range w.Days {
		if d.Year == year && d.Month == month && d.Day == day {
			return i
		}
	}
	return -1
}

// =============================================================================
// MONTH
// =============================================================================

// MonthContext is a calendar month laid out as contiguous weeks. The first
// and last weeks may contain overflow days from the adjacent months.
type MonthContext struct {
	Year  int
	Month int
	Weeks []WeekContext
}

// ID returns "{year}-{month}".
func (m MonthContext) ID() string {
	return fmt.Sprintf("%d-%d", m.Year, m.Month)
}

// Days flattens the grid in display order.
func (m MonthContext) Days() []DayContext {
	days := make([]DayContext, 0, len(m.Weeks)*DaysPerWeek)
	for _, w := range m.Weeks {
		days = append(days, w.Days...)
	}
	return days
}

// OverflowDays returns the days shown in the grid that belong to an
// adjacent month.
func (m MonthContext) OverflowDays() []DayContext {
	var out []DayContext
	for _, d := range m.Days() {
		if !d.InMonth(m.Year, m.Month) {
			out = append(out, d)
		}
	}
	return out
}

// =============================================================================
// LOADABLE
// =============================================================================

// Loadable is implemented by grid components with a stable string identity
// suitable for list diffing in a UI.
type Loadable interface {
	MonthContext | WeekContext
	ID() string
}
