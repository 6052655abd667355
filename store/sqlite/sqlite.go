/*
Package sqlite provides a SQLite-backed implementation of calendar.ProfileStore.

PURPOSE:
  Persists named calendar profiles (first weekday, time zone, locale, week
  numbering rule) so API callers can reference them by id. Generated grids
  are never stored; they are recomputed or served from calendar.Cache.

KEY TABLES:
  profiles: One row per profile, upserted by id

CONCURRENCY:
  Uses sync.RWMutex around the handle and a single open connection, which
  also keeps ":memory:" databases alive across calls.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging) for better concurrency:
  - Multiple readers don't block
  - Single writer at a time
  - Better crash recovery

USAGE:
  store, err := sqlite.New("./data/calendar.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

MIGRATION:
  Schema is auto-migrated on New().

SEE ALSO:
  - calendar/profile.go: Interface definition
  - calendar/store/memory.go: In-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/warp/calendar-engine/calendar"
)

// Store implements calendar.ProfileStore using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

var _ calendar.ProfileStore = (*Store)(nil)

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS profiles (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		first_weekday INTEGER NOT NULL CHECK (first_weekday BETWEEN 1 AND 7),
		time_zone TEXT NOT NULL,
		locale TEXT NOT NULL,
		minimum_days INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_profiles_name
		ON profiles(name);
	`
	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// PROFILE STORE
// =============================================================================

// SaveProfile inserts or updates a profile. CreatedAt is kept on update.
func (s *Store) SaveProfile(ctx context.Context, p calendar.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		INSERT INTO profiles (id, name, first_weekday, time_zone, locale, minimum_days, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			first_weekday = excluded.first_weekday,
			time_zone = excluded.time_zone,
			locale = excluded.locale,
			minimum_days = excluded.minimum_days,
			updated_at = excluded.updated_at
	`

	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.ExecContext(ctx, query,
		string(p.ID), p.Name, p.FirstWeekday, p.TimeZone, p.Locale,
		p.MinimumDaysInFirstWeek, now, now,
	)
	if err != nil {
		return fmt.Errorf("save profile %s: %w", p.ID, err)
	}
	return nil
}

// GetProfile retrieves a profile by ID. Returns nil, nil if absent.
func (s *Store) GetProfile(ctx context.Context, id calendar.ProfileID) (*calendar.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx,
		"SELECT id, name, first_weekday, time_zone, locale, minimum_days, created_at, updated_at FROM profiles WHERE id = ?",
		string(id),
	)
	p, err := scanProfile(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListProfiles returns all profiles ordered by name.
func (s *Store) ListProfiles(ctx context.Context) ([]calendar.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, first_weekday, time_zone, locale, minimum_days, created_at, updated_at FROM profiles ORDER BY name, id",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	profiles := []calendar.Profile{}
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

// DeleteProfile removes a profile.
func (s *Store) DeleteProfile(ctx context.Context, id calendar.ProfileID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, "DELETE FROM profiles WHERE id = ?", string(id))
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", calendar.ErrProfileNotFound, id)
	}
	return nil
}

// Reset removes all profiles.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, "DELETE FROM profiles")
	return err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProfile(row scanner) (calendar.Profile, error) {
	var p calendar.Profile
	var id, createdAt, updatedAt string
	if err := row.Scan(&id, &p.Name, &p.FirstWeekday, &p.TimeZone, &p.Locale,
		&p.MinimumDaysInFirstWeek, &createdAt, &updatedAt); err != nil {
		return calendar.Profile{}, err
	}
	p.ID = calendar.ProfileID(id)
	p.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	p.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return p, nil
}
