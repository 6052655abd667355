/*
Package factory provides JSON/YAML to calendar profile conversion.

PURPOSE:
  Converts profile definitions into calendar.Profile values validated
  through calendar.NewConfig. This enables calendar setup without code
  changes: operators keep a profiles.yaml next to the server, and the API
  accepts the same shape as JSON.

SCHEMA (YAML, JSON is accepted too):
  profiles:
    - id: us-office
      name: US Office
      first_weekday: sunday      # or 1..7 (1 = Sunday); omit for locale default
      time_zone: America/New_York
      locale: en-US
    - id: iso
      name: ISO Weeks
      first_weekday: 2
      time_zone: UTC
      locale: en-GB
      minimum_days_in_first_week: 4

KEY FEATURES:
  - Weekday names or numbers for first_weekday
  - Missing first_weekday resolved explicitly from the locale convention
  - Single profile, bare list, or {profiles: [...]} documents

USAGE:
  f := factory.NewProfileFactory()
  profiles, err := f.ParseProfiles(data)

SEE ALSO:
  - calendar/profile.go: Profile type definition
  - presets.go: Ready-made profiles
*/
package factory

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/warp/calendar-engine/calendar"
	"gopkg.in/yaml.v3"
)

// =============================================================================
// SCHEMA TYPES
// =============================================================================

// ProfileJSON is the document representation of a profile.
type ProfileJSON struct {
	ID           string   `json:"id" yaml:"id"`
	Name         string   `json:"name" yaml:"name"`
	FirstWeekday *Weekday `json:"first_weekday,omitempty" yaml:"first_weekday,omitempty"`
	TimeZone     string   `json:"time_zone" yaml:"time_zone"`
	Locale       string   `json:"locale" yaml:"locale"`
	MinimumDays  int      `json:"minimum_days_in_first_week,omitempty" yaml:"minimum_days_in_first_week,omitempty"`
}

type profileDocument struct {
	Profiles []ProfileJSON `yaml:"profiles"`
}

// Weekday is a 1-7 weekday (1 = Sunday) that also accepts English names.
type Weekday int

var weekdayNames = map[string]Weekday{
	"sunday": 1, "sun": 1,
	"monday": 2, "mon": 2,
	"tuesday": 3, "tue": 3,
	"wednesday": 4, "wed": 4,
	"thursday": 5, "thu": 5,
	"friday": 6, "fri": 6,
	"saturday": 7, "sat": 7,
}

// ParseWeekday parses "monday", "Mon" or "2".
func ParseWeekday(s string) (Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if w, ok := weekdayNames[s]; ok {
		return w, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", calendar.ErrInvalidFirstWeekday, s)
	}
	return Weekday(n), nil
}

func (w *Weekday) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := ParseWeekday(node.Value)
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}

func (w *Weekday) UnmarshalJSON(data []byte) error {
	parsed, err := ParseWeekday(strings.Trim(string(data), `"`))
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}

// =============================================================================
// PROFILE FACTORY
// =============================================================================

// ProfileFactory converts profile documents to calendar profiles.
type ProfileFactory struct {
	// TimeZoneFallback, when set, replaces unresolvable zones instead of
	// rejecting the profile.
	TimeZoneFallback *time.Location
}

// NewProfileFactory creates a new profile factory.
func NewProfileFactory() *ProfileFactory {
	return &ProfileFactory{}
}

// ParseProfile parses a single JSON or YAML profile.
func (f *ProfileFactory) ParseProfile(data []byte) (calendar.Profile, calendar.Config, error) {
	var pj ProfileJSON
	if err := yaml.Unmarshal(data, &pj); err != nil {
		return calendar.Profile{}, calendar.Config{}, fmt.Errorf("failed to parse profile: %w", err)
	}
	return f.FromJSON(pj)
}

// ParseProfiles parses a document holding one or many profiles.
func (f *ProfileFactory) ParseProfiles(data []byte) ([]calendar.Profile, error) {
	var raw []ProfileJSON

	var doc profileDocument
	if err := yaml.Unmarshal(data, &doc); err == nil && len(doc.Profiles) > 0 {
		raw = doc.Profiles
	} else if err := yaml.Unmarshal(data, &raw); err != nil {
		var single ProfileJSON
		if err := yaml.Unmarshal(data, &single); err != nil {
			return nil, fmt.Errorf("failed to parse profiles: %w", err)
		}
		raw = []ProfileJSON{single}
	}

	seen := make(map[string]bool)
	profiles := make([]calendar.Profile, 0, len(raw))
	for i, pj := range raw {
		p, _, err := f.FromJSON(pj)
		if err != nil {
			return nil, fmt.Errorf("profile %d (%s): %w", i, pj.ID, err)
		}
		if seen[pj.ID] {
			return nil, fmt.Errorf("profile %d: duplicate id %q", i, pj.ID)
		}
		seen[pj.ID] = true
		profiles = append(profiles, p)
	}
	return profiles, nil
}

// FromJSON validates pj and converts it to a Profile and its Config.
func (f *ProfileFactory) FromJSON(pj ProfileJSON) (calendar.Profile, calendar.Config, error) {
	if strings.TrimSpace(pj.ID) == "" {
		return calendar.Profile{}, calendar.Config{}, fmt.Errorf("profile id is required")
	}

	firstWeekday, err := resolveFirstWeekday(pj)
	if err != nil {
		return calendar.Profile{}, calendar.Config{}, err
	}

	profile := calendar.Profile{
		ID:                     calendar.ProfileID(pj.ID),
		Name:                   pj.Name,
		FirstWeekday:           firstWeekday,
		TimeZone:               pj.TimeZone,
		Locale:                 pj.Locale,
		MinimumDaysInFirstWeek: pj.MinimumDays,
	}
	if profile.Name == "" {
		profile.Name = pj.ID
	}

	var opts []calendar.Option
	if f.TimeZoneFallback != nil {
		opts = append(opts, calendar.WithTimeZoneFallback(f.TimeZoneFallback))
	}
	cfg, err := profile.Config(opts...)
	if err != nil {
		return calendar.Profile{}, calendar.Config{}, err
	}

	// Store the normalized forms so lookups are stable.
	profile.TimeZone = cfg.TimeZone()
	profile.Locale = cfg.Locale()
	return profile, cfg, nil
}

// ToJSON converts a Profile to ProfileJSON.
func (f *ProfileFactory) ToJSON(p calendar.Profile) ProfileJSON {
	fw := Weekday(p.FirstWeekday)
	return ProfileJSON{
		ID:           string(p.ID),
		Name:         p.Name,
		FirstWeekday: &fw,
		TimeZone:     p.TimeZone,
		Locale:       p.Locale,
		MinimumDays:  p.MinimumDaysInFirstWeek,
	}
}

func resolveFirstWeekday(pj ProfileJSON) (int, error) {
	if pj.FirstWeekday != nil {
		return int(*pj.FirstWeekday), nil
	}
	return calendar.LocaleFirstWeekday(pj.Locale)
}
