/*
provider.go - Calendar capability interface and the Gregorian implementation

PURPOSE:
  The generation algorithm only needs a handful of calendar facts: how to
  split an instant into (year, month, day), where a month starts and ends,
  which weekday a date falls on, how to step by days and months, and the
  locale's weekday names. Provider captures exactly that, so the generator
  stays platform-independent and can be exercised with a fake in tests.

GREGORIAN:
  Backed by Go's time package, which implements the proleptic Gregorian
  calendar. All component extraction happens in the configured location,
  so the same instant can land on different days under different zones.

WEEK OF YEAR:
  The week containing January 1 is week 1 when it holds at least
  MinimumDaysInFirstWeek days of the new year. Otherwise week 1 starts on
  the following first weekday and the leading days belong to the last week
  of the previous year. With (first weekday Monday, 4 days) this is ISO 8601.
*/
package calendar

import (
	"time"
)

// Provider exposes the calendar facts the generator depends on.
type Provider interface {
	// Components splits t into year, month (1-12) and day (1-31).
	Components(t time.Time) (year, month, day int)

	// StartOfDay returns the first instant of t's calendar day.
	StartOfDay(t time.Time) time.Time

	// MonthInterval returns the start of t's month and the exclusive end
	// (the start of the following month).
	MonthInterval(t time.Time) (start, end time.Time)

	// Weekday returns 1-7 with 1 = Sunday.
	Weekday(t time.Time) int

	// AddDays and AddMonths step by calendar units, keeping wall-clock time.
	AddDays(t time.Time, n int) time.Time
	AddMonths(t time.Time, n int) time.Time

	// WeekOfYear returns the 1-based week number of t.
	WeekOfYear(t time.Time) int

	// StandaloneWeekdaySymbols returns the locale's names, Sunday first.
	StandaloneWeekdaySymbols(kind SymbolType) [7]string
}

// =============================================================================
// GREGORIAN PROVIDER
// =============================================================================

// Gregorian implements Provider for a Config.
type Gregorian struct {
	loc          *time.Location
	firstWeekday int
	minDays      int
	names        weekdayNames
}

// NewGregorian creates a Gregorian provider for cfg.
func NewGregorian(cfg Config) *Gregorian {
	return &Gregorian{
		loc:          cfg.Location(),
		firstWeekday: cfg.FirstWeekday(),
		minDays:      cfg.MinimumDaysInFirstWeek(),
		names:        namesFor(cfg.Tag()),
	}
}

func (g *Gregorian) Components(t time.Time) (int, int, int) {
	y, m, d := t.In(g.loc).Date()
	return y, int(m), d
}

func (g *Gregorian) StartOfDay(t time.Time) time.Time {
	y, m, d := t.In(g.loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, g.loc)
}

func (g *Gregorian) MonthInterval(t time.Time) (time.Time, time.Time) {
	y, m, _ := t.In(g.loc).Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, g.loc), time.Date(y, m+1, 1, 0, 0, 0, 0, g.loc)
}

func (g *Gregorian) Weekday(t time.Time) int {
	return int(t.In(g.loc).Weekday()) + 1
}

func (g *Gregorian) AddDays(t time.Time, n int) time.Time {
	lt := t.In(g.loc)
	y, m, d := lt.Date()
	return time.Date(y, m, d+n, lt.Hour(), lt.Minute(), lt.Second(), lt.Nanosecond(), g.loc)
}

// AddMonths clamps the day to the target month's length, so Jan 31 plus one
// month is the last day of February.
func (g *Gregorian) AddMonths(t time.Time, n int) time.Time {
	lt := t.In(g.loc)
	y, m, d := lt.Date()
	if last := daysIn(y, m+time.Month(n)); d > last {
		d = last
	}
	return time.Date(y, m+time.Month(n), d, lt.Hour(), lt.Minute(), lt.Second(), lt.Nanosecond(), g.loc)
}

func (g *Gregorian) WeekOfYear(t time.Time) int {
	y, m, d := g.Components(t)
	day := civilDay(y, time.Month(m), d)

	if day >= g.weekOneStart(y+1) {
		return 1
	}
	start := g.weekOneStart(y)
	if day < start {
		start = g.weekOneStart(y - 1)
	}
	return int((day-start)/DaysPerWeek) + 1
}

func (g *Gregorian) StandaloneWeekdaySymbols(kind SymbolType) [7]string {
	switch kind {
	case SymbolFull:
		return g.names.full
	case SymbolVeryShort:
		return g.names.veryShort
	default:
		return g.names.short
	}
}

// weekOneStart returns the civil day number on which week 1 of year begins.
func (g *Gregorian) weekOneStart(year int) int64 {
	jan1 := civilDay(year, time.January, 1)
	weekday := int(time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC).Weekday()) + 1
	offset := (weekday - g.firstWeekday + DaysPerWeek) % DaysPerWeek

	start := jan1 - int64(offset)
	if DaysPerWeek-offset < g.minDays {
		start += DaysPerWeek
	}
	return start
}

// =============================================================================
// TIME UTILITIES
// =============================================================================

// civilDay numbers calendar days independent of any zone offset or DST.
func civilDay(year int, month time.Month, day int) int64 {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Unix() / 86400
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
