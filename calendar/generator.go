/*
generator.go - Month/week/day grid generation

PURPOSE:
  Turns a date or closed date range into grid structures for a UI. This is
  the only place with real date arithmetic; everything else in the module
  is plumbing around it.

ALGORITHM (MonthContext):
  1. Find the calendar month containing the date and its [start, end) interval.
  2. Walk back from the month's first day to the most recent first weekday
     (0-6 days). That is the first window start.
  3. Emit consecutive 7-day windows, numbering them 0, 1, 2 ..., while the
     window start is before the month's exclusive end. The week holding the
     end boundary is emitted in full, including next-month days.
  4. Every week is tagged with the month's (year, month). Days keep their
     own (year, month, day).

RANGES:
  MonthContexts steps one calendar month at a time from the month of
  range.Start through the month of range.End. WeekContexts steps one
  window at a time from the window of range.Start through the window of
  range.End. Both return at least one element for a valid range.

YEAR ROLLOVER:
  Year is always re-derived from the provider, never incremented, so
  December/January boundaries need no special casing.

CONCURRENCY:
  Generator holds only immutable state and is safe for concurrent use.

SEE ALSO:
  - provider.go: Calendar facts the algorithm relies on
  - types.go: Output value types
*/
package calendar

import (
	"time"
)

// Generator produces calendar grids for a fixed Config.
type Generator struct {
	config   Config
	provider Provider
}

// NewGenerator creates a generator backed by the Gregorian provider.
func NewGenerator(cfg Config) *Generator {
	return &Generator{config: cfg, provider: NewGregorian(cfg)}
}

// NewGeneratorWithProvider creates a generator over an arbitrary provider.
// The config's first weekday drives window alignment.
func NewGeneratorWithProvider(cfg Config, p Provider) *Generator {
	return &Generator{config: cfg, provider: p}
}

// Config returns the generator's configuration.
func (g *Generator) Config() Config {
	return g.config
}

// =============================================================================
// SINGLE-DATE OPERATIONS
// =============================================================================

// DayContext decomposes date under the configured zone.
func (g *Generator) DayContext(date time.Time) DayContext {
	g.mustRepresent("DayContext", date)
	return g.day(date)
}

// WeekContext returns the window containing date, tagged with date's
// (year, month) and its week-of-year number.
func (g *Generator) WeekContext(date time.Time) WeekContext {
	g.mustRepresent("WeekContext", date)
	year, month, _ := g.provider.Components(date)

	return WeekContext{
		Year:      year,
		Month:     month,
		WeekIndex: g.provider.WeekOfYear(date),
		Days:      g.days(g.windowStart(date)),
	}
}

// MonthContext returns the grid for the calendar month containing date.
func (g *Generator) MonthContext(date time.Time) MonthContext {
	g.mustRepresent("MonthContext", date)
	year, month, _ := g.provider.Components(date)
	monthStart, monthEnd := g.provider.MonthInterval(date)

	var weeks []WeekContext
	index := 0
	for start := g.windowStart(monthStart); start.Before(monthEnd); index++ {
		weeks = append(weeks, WeekContext{
			Year:      year,
			Month:     month,
			WeekIndex: index,
			Days:      g.days(start),
		})

		next := g.nextWindow(start)
		if !next.After(start) {
			break
		}
		start = next
	}

	return MonthContext{Year: year, Month: month, Weeks: weeks}
}

// =============================================================================
// RANGE OPERATIONS
// =============================================================================

// MonthContexts returns one MonthContext per calendar month touched by r,
// in order.
func (g *Generator) MonthContexts(r DateRange) []MonthContext {
	g.mustRepresent("MonthContexts", r.Start)
	g.mustRepresent("MonthContexts", r.End)

	var months []MonthContext
	current, _ := g.provider.MonthInterval(r.Start)
	for !current.After(r.End) {
		months = append(months, g.MonthContext(current))

		next, _ := g.provider.MonthInterval(g.provider.AddMonths(current, 1))
		if !next.After(current) {
			break
		}
		current = next
	}
	return months
}

// WeekContexts returns every first-weekday aligned window touched by r, in
// order. Each week carries its week-of-year index.
func (g *Generator) WeekContexts(r DateRange) []WeekContext {
	g.mustRepresent("WeekContexts", r.Start)
	g.mustRepresent("WeekContexts", r.End)

	var weeks []WeekContext
	current := g.windowStart(r.Start)
	for !current.After(r.End) {
		weeks = append(weeks, g.WeekContext(current))

		next := g.nextWindow(current)
		if !next.After(current) {
			break
		}
		current = next
	}
	return weeks
}

// Symbols returns weekday names rotated to the configured first weekday.
func (g *Generator) Symbols(kind SymbolType) []string {
	return rotateSymbols(g.provider.StandaloneWeekdaySymbols(kind), g.config.FirstWeekday())
}

// =============================================================================
// HELPERS
// =============================================================================

// windowStart returns the start of the day on or before date whose weekday
// equals the configured first weekday.
func (g *Generator) windowStart(date time.Time) time.Time {
	day := g.provider.StartOfDay(date)
	back := (g.provider.Weekday(day) - g.config.FirstWeekday() + DaysPerWeek) % DaysPerWeek
	return g.provider.StartOfDay(g.provider.AddDays(day, -back))
}

// nextWindow returns the start of the window after start. Re-anchoring on
// StartOfDay keeps later windows at midnight when start fell in a DST gap.
func (g *Generator) nextWindow(start time.Time) time.Time {
	return g.provider.StartOfDay(g.provider.AddDays(start, DaysPerWeek))
}

// days returns the 7 consecutive days starting at start.
func (g *Generator) days(start time.Time) []DayContext {
	days := make([]DayContext, 0, DaysPerWeek)
	for offset := 0; offset < DaysPerWeek; offset++ {
		days = append(days, g.day(g.provider.StartOfDay(g.provider.AddDays(start, offset))))
	}
	return days
}

func (g *Generator) day(date time.Time) DayContext {
	year, month, day := g.provider.Components(date)
	return DayContext{Date: date, Year: year, Month: month, Day: day, Weekday: g.provider.Weekday(date)}
}

func (g *Generator) mustRepresent(op string, date time.Time) {
	if !representable(date) {
		panic(&PreconditionError{Op: op, Date: date})
	}
}
