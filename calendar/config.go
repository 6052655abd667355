/*
Package calendar provides the calendar grid generation engine.

PURPOSE:
  Produces month/week/day grid structures aligned to a configurable first
  weekday, time zone and locale, for consumption by UI layers. Every output
  is a deterministic function of (Config, input dates), so generators are
  safe to share between goroutines and results are safe to memoize.

KEY CONCEPTS IN THIS FILE (config.go):
  - Config: Immutable calendar configuration (first weekday, zone, locale)
  - Option: Functional options for the optional knobs
  - LocaleFirstWeekday: The locale's conventional first weekday

WEEKDAY NUMBERING:
  Weekdays are numbered 1-7 with 1 = Sunday, 2 = Monday ... 7 = Saturday.
  A first weekday of 2 therefore produces Monday-start weeks.

TIME ZONE FALLBACK:
  An unresolvable IANA identifier is rejected with ErrUnknownTimeZone.
  Callers that want platform-style leniency pass WithTimeZoneFallback(loc);
  the substitution is then visible through Config.FellBack().

USAGE:
  cfg, err := calendar.NewConfig(2, "Europe/Berlin", "de-DE")
  if err != nil {
      return err
  }
  gen := calendar.NewGenerator(cfg)

SEE ALSO:
  - generator.go: Grid generation
  - provider.go: Gregorian calendar provider
  - locale.go: Locale conventions and weekday names
*/
package calendar

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// =============================================================================
// CONFIG - Immutable calendar configuration
// =============================================================================

// DefaultLocale is used when a config is built with an empty locale.
const DefaultLocale = "en-US"

// Config is an immutable calendar configuration. Build it with NewConfig.
type Config struct {
	firstWeekday int
	minDays      int
	timeZone     string
	locale       string
	loc          *time.Location
	tag          language.Tag
	fellBack     bool
}

// Option customizes NewConfig.
type Option func(*configOptions)

type configOptions struct {
	fallback *time.Location
	minDays  int
}

// WithTimeZoneFallback substitutes loc when the time zone cannot be resolved.
// Pass time.Local for the platform default.
func WithTimeZoneFallback(loc *time.Location) Option {
	return func(o *configOptions) { o.fallback = loc }
}

// WithMinimumDaysInFirstWeek overrides the locale's week-of-year rule.
func WithMinimumDaysInFirstWeek(n int) Option {
	return func(o *configOptions) { o.minDays = n }
}

// NewConfig validates and builds a Config.
//
// An empty timeZone means UTC and an empty locale means DefaultLocale.
func NewConfig(firstWeekday int, timeZone, locale string, opts ...Option) (Config, error) {
	var o configOptions
	for _, opt := range opts {
		opt(&o)
	}

	if firstWeekday < 1 || firstWeekday > 7 {
		return Config{}, &ConfigError{Field: "first_weekday", Value: firstWeekday, Err: ErrInvalidFirstWeekday}
	}

	tag, err := parseLocale(locale)
	if err != nil {
		return Config{}, &ConfigError{Field: "locale", Value: locale, Err: fmt.Errorf("%w: %v", ErrInvalidLocale, err)}
	}

	cfg := Config{
		firstWeekday: firstWeekday,
		locale:       tag.String(),
		tag:          tag,
	}

	loc, err := time.LoadLocation(timeZone)
	switch {
	case err == nil:
		cfg.loc = loc
	case o.fallback != nil:
		cfg.loc = o.fallback
		cfg.fellBack = true
	default:
		return Config{}, &ConfigError{Field: "time_zone", Value: timeZone, Err: fmt.Errorf("%w: %v", ErrUnknownTimeZone, err)}
	}
	cfg.timeZone = cfg.loc.String()

	cfg.minDays = o.minDays
	if cfg.minDays == 0 {
		cfg.minDays = localeMinimumDays(tag)
	}
	if cfg.minDays < 1 || cfg.minDays > 7 {
		return Config{}, &ConfigError{Field: "minimum_days_in_first_week", Value: cfg.minDays, Err: ErrInvalidMinimumDays}
	}

	return cfg, nil
}

// MustNewConfig is like NewConfig but panics on error. Intended for presets
// and tests with literal arguments.
func MustNewConfig(firstWeekday int, timeZone, locale string, opts ...Option) Config {
	cfg, err := NewConfig(firstWeekday, timeZone, locale, opts...)
	if err != nil {
		panic(err)
	}
	return cfg
}

// DefaultConfig is a Sunday-start, UTC, en-US configuration.
func DefaultConfig() Config {
	return MustNewConfig(1, "UTC", DefaultLocale)
}

func parseLocale(locale string) (language.Tag, error) {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		locale = DefaultLocale
	}
	// Accept platform style identifiers such as en_US.
	return language.Parse(strings.ReplaceAll(locale, "_", "-"))
}

// Accessors
func (c Config) FirstWeekday() int { return c.firstWeekday }
func (c Config) MinimumDaysInFirstWeek() int { return c.minDays }
func (c Config) TimeZone() string { return c.timeZone }
func (c Config) Locale() string { return c.locale }
func (c Config) Tag() language.Tag { return c.tag }
func (c Config) FellBack() bool { return c.fellBack }
func (c Config) IsZero() bool { return c.loc == nil }

// Location returns the resolved time zone. A zero Config reports UTC.
func (c Config) Location() *time.Location {
	if c.loc == nil {
		return time.UTC
	}
	return c.loc
}

// Fingerprint is a stable textual identity of the configuration. Two configs
// with equal fingerprints generate identical grids.
func (c Config) Fingerprint() string {
	return fmt.Sprintf("gregorian|fw=%d|md=%d|tz=%s|loc=%s", c.firstWeekday, c.minDays, c.timeZone, c.locale)
}

func (c Config) String() string {
	return c.Fingerprint()
}

// LocaleFirstWeekday returns the conventional first weekday (1-7) for a
// locale identifier, e.g. 1 for en-US and 2 for de-DE.
func LocaleFirstWeekday(locale string) (int, error) {
	tag, err := parseLocale(locale)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidLocale, err)
	}
	return localeFirstWeekday(tag), nil
}
