/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the calendar value types from the external contract.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - Request bodies reuse factory.ProfileJSON

TYPES:
  Grid:
    DayDTO, WeekDTO, MonthDTO, StatusDTO

  Config:
    ConfigDTO, SymbolsDTO

  Profiles:
    ProfileDTO (wraps factory.ProfileJSON)

IDENTITY:
  Month and week ids are strings ("2025-1", "2025-1-0"); day ids are the
  epoch offset in seconds, emitted as a JSON number.

SEE ALSO:
  - handlers.go: Uses these types
  - factory/profile.go: ProfileJSON type
*/
package api

import (
	"encoding/json"
	"time"

	"github.com/warp/calendar-engine/calendar"
	"github.com/warp/calendar-engine/factory"
)

// =============================================================================
// GRID TYPES
// =============================================================================

// DayDTO represents a day cell.
type DayDTO struct {
	ID       json.Number `json:"id"`
	Date     string      `json:"date"`
	Year     int         `json:"year"`
	Month    int         `json:"month"`
	Day      int         `json:"day"`
	Weekday  int         `json:"weekday"`
	Overflow bool        `json:"overflow,omitempty"`
}

// WeekDTO represents a week row.
type WeekDTO struct {
	ID        string   `json:"id"`
	Year      int      `json:"year"`
	Month     int      `json:"month"`
	WeekIndex int      `json:"week_index"`
	Days      []DayDTO `json:"days"`
}

// MonthDTO represents a month grid.
type MonthDTO struct {
	ID    string    `json:"id"`
	Year  int       `json:"year"`
	Month int       `json:"month"`
	Weeks []WeekDTO `json:"weeks"`
}

// StatusDTO mirrors calendar.LoadStatus plus the header symbols.
type StatusDTO[T any] struct {
	Status  string    `json:"status"`
	Data    []T       `json:"data"`
	Symbols []string  `json:"symbols"`
	Config  ConfigDTO `json:"config"`
}

// ConfigDTO echoes the effective configuration.
type ConfigDTO struct {
	FirstWeekday int    `json:"first_weekday"`
	TimeZone     string `json:"time_zone"`
	Locale       string `json:"locale"`
	MinimumDays  int    `json:"minimum_days_in_first_week"`
	FellBack     bool   `json:"time_zone_fell_back,omitempty"`
}

// SymbolsDTO is the /api/symbols response.
type SymbolsDTO struct {
	Type    string    `json:"type"`
	Symbols []string  `json:"symbols"`
	Config  ConfigDTO `json:"config"`
}

// =============================================================================
// PROFILE TYPES
// =============================================================================

// ProfileDTO represents a stored profile.
type ProfileDTO struct {
	factory.ProfileJSON
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// =============================================================================
// CONVERSIONS
// =============================================================================

func toConfigDTO(cfg calendar.Config) ConfigDTO {
	return ConfigDTO{
		FirstWeekday: cfg.FirstWeekday(),
		TimeZone:     cfg.TimeZone(),
		Locale:       cfg.Locale(),
		MinimumDays:  cfg.MinimumDaysInFirstWeek(),
		FellBack:     cfg.FellBack(),
	}
}

func toDayDTO(d calendar.DayContext, year, month int) DayDTO {
	return DayDTO{
		ID:       json.Number(d.ID().String()),
		Date:     d.Date.Format(time.RFC3339),
		Year:     d.Year,
		Month:    d.Month,
		Day:      d.Day,
		Weekday:  d.Weekday,
		Overflow: !d.InMonth(year, month),
	}
}

func toWeekDTO(w calendar.WeekContext) WeekDTO {
	days := make([]DayDTO, len(w.Days))
	for i, d := range w.Days {
		days[i] = toDayDTO(d, w.Year, w.Month)
	}
	return WeekDTO{ID: w.ID(), Year: w.Year, Month: w.Month, WeekIndex: w.WeekIndex, Days: days}
}

func toMonthDTO(m calendar.MonthContext) MonthDTO {
	weeks := make([]WeekDTO, len(m.Weeks))
	for i, w := range m.Weeks {
		weeks[i] = toWeekDTO(w)
	}
	return MonthDTO{ID: m.ID(), Year: m.Year, Month: m.Month, Weeks: weeks}
}

func toStatusDTO[T calendar.Loadable, D any](status calendar.LoadStatus[T], convert func(T) D, symbols []string, cfg calendar.Config) StatusDTO[D] {
	items := status.Data()
	data := make([]D, len(items))
	for i, item := range items {
		data[i] = convert(item)
	}
	return StatusDTO[D]{
		Status:  status.String(),
		Data:    data,
		Symbols: symbols,
		Config:  toConfigDTO(cfg),
	}
}

func toProfileDTO(f *factory.ProfileFactory, p calendar.Profile) ProfileDTO {
	dto := ProfileDTO{ProfileJSON: f.ToJSON(p)}
	if !p.CreatedAt.IsZero() {
		dto.CreatedAt = p.CreatedAt.Format(time.RFC3339)
	}
	if !p.UpdatedAt.IsZero() {
		dto.UpdatedAt = p.UpdatedAt.Format(time.RFC3339)
	}
	return dto
}
