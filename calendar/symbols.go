package calendar

import (
	"fmt"
	"strings"
)

// =============================================================================
// WEEKDAY SYMBOLS - Header labels rotated to the first weekday
// =============================================================================

// SymbolType selects the granularity of weekday names. The zero value is
// SymbolShort, the default for grid headers.
type SymbolType int

const (
	SymbolShort     SymbolType = iota // "Sun", "Mon", ...
	SymbolFull                        // "Sunday", "Monday", ...
	SymbolVeryShort                   // "S", "M", ...
)

func (t SymbolType) String() string {
	switch t {
	case SymbolFull:
		return "full"
	case SymbolVeryShort:
		return "very_short"
	default:
		return "short"
	}
}

// ParseSymbolType parses "full", "short" or "very_short". Empty input yields
// SymbolShort.
func ParseSymbolType(s string) (SymbolType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "short":
		return SymbolShort, nil
	case "full":
		return SymbolFull, nil
	case "very_short", "veryshort", "very-short":
		return SymbolVeryShort, nil
	}
	return SymbolShort, fmt.Errorf("%w: %q", ErrInvalidSymbolType, s)
}

// WeekdaySymbols returns the 7 standalone weekday names for cfg's locale with
// index 0 equal to cfg's first weekday.
func WeekdaySymbols(cfg Config, kind SymbolType) []string {
	return rotateSymbols(NewGregorian(cfg).StandaloneWeekdaySymbols(kind), cfg.FirstWeekday())
}

// rotateSymbols shifts a Sunday-first name set left by firstWeekday-1.
func rotateSymbols(names [7]string, firstWeekday int) []string {
	offset := ((firstWeekday-1)%DaysPerWeek + DaysPerWeek) % DaysPerWeek
	out := make([]string, 0, DaysPerWeek)
	out = append(out, names[offset:]...)
	return append(out, names[:offset]...)
}
