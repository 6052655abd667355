/*
errors.go - Centralized error types for the calendar engine

PURPOSE:
  All error types in one place for consistency and discoverability.
  Outer layers (api, factory, store) wrap these with additional context.

ERROR CATEGORIES:
  1. Configuration errors - Rejected at NewConfig time
  2. Range errors - Malformed closed date ranges
  3. Precondition violations - Dates the calendar cannot represent
  4. Store errors - Profile persistence failures

USAGE:
  cfg, err := calendar.NewConfig(9, "UTC", "en-US")
  if errors.Is(err, calendar.ErrInvalidFirstWeekday) {
      // reject the request
  }

SEE ALSO:
  - config.go: Produces ConfigError
  - generator.go: Panics with PreconditionError
  - api/handlers.go: Maps these to HTTP status codes
*/
package calendar

import (
	"errors"
	"fmt"
	"time"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidFirstWeekday is returned when the first weekday is outside 1-7.
	ErrInvalidFirstWeekday = errors.New("first weekday must be between 1 and 7")

	// ErrUnknownTimeZone is returned when an IANA identifier cannot be resolved
	// and no fallback zone was configured.
	ErrUnknownTimeZone = errors.New("unknown time zone")

	// ErrInvalidLocale is returned when a locale identifier is not a valid BCP 47 tag.
	ErrInvalidLocale = errors.New("invalid locale")

	// ErrInvalidMinimumDays is returned when minimum days in first week is outside 1-7.
	ErrInvalidMinimumDays = errors.New("minimum days in first week must be between 1 and 7")

	// ErrInvalidRange is returned when a closed range ends before it starts.
	ErrInvalidRange = errors.New("invalid range: end before start")

	// ErrDateOutOfRange is returned when a date falls outside the representable years.
	ErrDateOutOfRange = errors.New("date outside representable calendar years")

	// ErrInvalidSymbolType is returned for an unknown weekday symbol selector.
	ErrInvalidSymbolType = errors.New("invalid weekday symbol type")

	// ErrProfileNotFound is returned when a referenced calendar profile doesn't exist.
	ErrProfileNotFound = errors.New("profile not found")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// ConfigError describes which configuration field was rejected.
type ConfigError struct {
	Field string
	Value any
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid calendar config: %s=%v: %v", e.Field, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// PreconditionError is raised (via panic) when the generator is handed a date
// the calendar cannot represent. It indicates a malformed input, not a
// transient failure, so there is no recovery path inside the engine.
type PreconditionError struct {
	Op   string
	Date time.Time
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: %s is outside years %d-%d", e.Op, e.Date.Format(time.RFC3339), MinYear, MaxYear)
}

func (e *PreconditionError) Unwrap() error {
	return ErrDateOutOfRange
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid caller input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidFirstWeekday) ||
		errors.Is(err, ErrUnknownTimeZone) ||
		errors.Is(err, ErrInvalidLocale) ||
		errors.Is(err, ErrInvalidMinimumDays) ||
		errors.Is(err, ErrInvalidRange) ||
		errors.Is(err, ErrDateOutOfRange) ||
		errors.Is(err, ErrInvalidSymbolType)
}

// IsNotFound returns true if the error indicates a missing resource.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrProfileNotFound)
}
