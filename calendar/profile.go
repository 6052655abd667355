/*
profile.go - Named calendar configurations and their persistence interface

PURPOSE:
  A Profile is a stored, named Config ("US office", "ISO weeks", ...) that
  API callers reference by id instead of repeating first weekday, zone and
  locale on every request. Only configurations are stored; generated grids
  are never persisted.

IMPLEMENTATIONS:
  - store/sqlite/sqlite.go: SQLite
  - calendar/store/memory.go: In-memory for testing

SEE ALSO:
  - factory/profile.go: Profiles from JSON/YAML documents
  - api/handlers.go: /api/profiles endpoints
*/
package calendar

import (
	"context"
	"time"
)

// ProfileID identifies a stored profile.
type ProfileID string

// Profile is a named calendar configuration.
type Profile struct {
	ID                     ProfileID
	Name                   string
	FirstWeekday           int
	TimeZone               string
	Locale                 string
	MinimumDaysInFirstWeek int // 0 = locale default
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// Config validates the profile and builds its Config.
func (p Profile) Config(opts ...Option) (Config, error) {
	if p.MinimumDaysInFirstWeek != 0 {
		opts = append(opts, WithMinimumDaysInFirstWeek(p.MinimumDaysInFirstWeek))
	}
	return NewConfig(p.FirstWeekday, p.TimeZone, p.Locale, opts...)
}

// ProfileStore persists profiles.
type ProfileStore interface {
	// SaveProfile inserts or replaces a profile by ID.
	SaveProfile(ctx context.Context, p Profile) error

	// GetProfile returns nil, nil when the profile doesn't exist.
	GetProfile(ctx context.Context, id ProfileID) (*Profile, error)

	// ListProfiles returns all profiles ordered by name.
	ListProfiles(ctx context.Context) ([]Profile, error)

	// DeleteProfile removes a profile. Deleting a missing profile returns
	// ErrProfileNotFound.
	DeleteProfile(ctx context.Context, id ProfileID) error
}
