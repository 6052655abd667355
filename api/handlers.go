/*
handlers.go - HTTP API handlers for the calendar engine

PURPOSE:
  Exposes grid generation via a REST API. Handles HTTP request/response,
  JSON serialization, and delegates to the calendar package.

ENDPOINTS:
  Grids:
    GET    /api/day?date=              Day context
    GET    /api/week?date=             Week context (week-of-year index)
    GET    /api/month?date=            Month grid
    GET    /api/months?start=&end=     Month grids for a closed range
    GET    /api/weeks?start=&end=      Week rows for a closed range
    GET    /api/symbols?type=          Rotated weekday symbols

  Profiles:
    GET    /api/profiles               List profiles
    POST   /api/profiles               Create or update a profile
    GET    /api/profiles/{id}          Get profile
    DELETE /api/profiles/{id}          Delete profile

CALENDAR SELECTION:
  Every grid endpoint takes either ?profile={id} or the explicit trio
  ?first_weekday=&tz=&locale=. A missing first_weekday resolves to the
  locale's convention. symbols=full|short|very_short picks header labels.

DATES:
  YYYY-MM-DD is read as midnight in the configured zone; anything else
  must be RFC 3339.

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Invalid config, date, range or symbol type
  - 404: Profile not found
  - 500: Internal errors

CACHING:
  Range endpoints are memoized in calendar.Cache; the cache key is sent as
  a strong ETag and If-None-Match short-circuits with 304.

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/warp/calendar-engine/calendar"
	"github.com/warp/calendar-engine/factory"
)

// MaxRangeMonths bounds the span of range requests.
const MaxRangeMonths = 240

var errRangeTooLarge = fmt.Errorf("%w: range spans more than %d months", calendar.ErrInvalidRange, MaxRangeMonths)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store          calendar.ProfileStore
	ProfileFactory *factory.ProfileFactory
	Cache          *calendar.Cache

	// TimeZoneFallback replaces unresolvable zones in query parameters
	// when set; otherwise they are rejected with 400.
	TimeZoneFallback *time.Location
}

// NewHandler creates a new handler with the given store and cache.
func NewHandler(store calendar.ProfileStore, cache *calendar.Cache) *Handler {
	if cache == nil {
		cache = calendar.NewCache(0)
	}
	return &Handler{
		Store:          store,
		ProfileFactory: factory.NewProfileFactory(),
		Cache:          cache,
	}
}

// SeedProfiles saves profiles that don't exist yet.
func (h *Handler) SeedProfiles(ctx context.Context, profiles []calendar.Profile) (int, error) {
	seeded := 0
	for _, p := range profiles {
		existing, err := h.Store.GetProfile(ctx, p.ID)
		if err != nil {
			return seeded, err
		}
		if existing != nil {
			continue
		}
		if _, _, err := h.ProfileFactory.FromJSON(h.ProfileFactory.ToJSON(p)); err != nil {
			return seeded, fmt.Errorf("seed profile %s: %w", p.ID, err)
		}
		if err := h.Store.SaveProfile(ctx, p); err != nil {
			return seeded, err
		}
		seeded++
	}
	return seeded, nil
}

// =============================================================================
// GRID ENDPOINTS
// =============================================================================

// GetDay returns the day context for a date.
// GET /api/day?date=2025-01-15
func (h *Handler) GetDay(w http.ResponseWriter, r *http.Request) {
	cfg, date, ok := h.configAndDate(w, r)
	if !ok {
		return
	}
	day := calendar.NewGenerator(cfg).DayContext(date)
	writeJSON(w, http.StatusOK, toDayDTO(day, day.Year, day.Month))
}

// GetWeek returns the week containing a date.
// GET /api/week?date=2025-01-15
func (h *Handler) GetWeek(w http.ResponseWriter, r *http.Request) {
	cfg, date, ok := h.configAndDate(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toWeekDTO(calendar.NewGenerator(cfg).WeekContext(date)))
}

// GetMonth returns the month grid containing a date.
// GET /api/month?date=2025-01-15
func (h *Handler) GetMonth(w http.ResponseWriter, r *http.Request) {
	cfg, date, ok := h.configAndDate(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toMonthDTO(calendar.NewGenerator(cfg).MonthContext(date)))
}

// ListMonths returns month grids for a closed range.
// GET /api/months?start=2025-01-01&end=2025-03-31
func (h *Handler) ListMonths(w http.ResponseWriter, r *http.Request) {
	cfg, rng, kind, ok := h.configRangeAndSymbols(w, r)
	if !ok {
		return
	}

	gen := calendar.NewGenerator(cfg)
	months, etag := h.Cache.Months(gen, rng)
	if notModified(w, r, etag) {
		return
	}
	writeJSON(w, http.StatusOK, toStatusDTO(calendar.Loaded(months), toMonthDTO, gen.Symbols(kind), cfg))
}

// ListWeeks returns week rows for a closed range.
// GET /api/weeks?start=2025-01-06&end=2025-01-19
func (h *Handler) ListWeeks(w http.ResponseWriter, r *http.Request) {
	cfg, rng, kind, ok := h.configRangeAndSymbols(w, r)
	if !ok {
		return
	}

	gen := calendar.NewGenerator(cfg)
	weeks, etag := h.Cache.Weeks(gen, rng)
	if notModified(w, r, etag) {
		return
	}
	writeJSON(w, http.StatusOK, toStatusDTO(calendar.Loaded(weeks), toWeekDTO, gen.Symbols(kind), cfg))
}

// GetSymbols returns weekday symbols rotated to the first weekday.
// GET /api/symbols?type=full
func (h *Handler) GetSymbols(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.resolveConfig(r)
	if err != nil {
		writeDomainError(w, "Invalid calendar configuration", err)
		return
	}
	kind, err := calendar.ParseSymbolType(r.URL.Query().Get("type"))
	if err != nil {
		writeDomainError(w, "Invalid symbol type", err)
		return
	}
	writeJSON(w, http.StatusOK, SymbolsDTO{
		Type:    kind.String(),
		Symbols: calendar.WeekdaySymbols(cfg, kind),
		Config:  toConfigDTO(cfg),
	})
}

// Health reports liveness and cache counters.
// GET /api/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	hits, misses := h.Cache.Stats()
	writeJSON(w, http.StatusOK, map[string]any{
		"status":       "ok",
		"cache_size":   h.Cache.Len(),
		"cache_hits":   hits,
		"cache_misses": misses,
	})
}

// =============================================================================
// PROFILE ENDPOINTS
// =============================================================================

// ListProfiles returns all profiles.
// GET /api/profiles
func (h *Handler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.Store.ListProfiles(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list profiles", err)
		return
	}

	dtos := make([]ProfileDTO, 0, len(profiles))
	for _, p := range profiles {
		dtos = append(dtos, toProfileDTO(h.ProfileFactory, p))
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetProfile returns a single profile.
// GET /api/profiles/{id}
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	id := calendar.ProfileID(chi.URLParam(r, "id"))

	p, err := h.Store.GetProfile(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get profile", err)
		return
	}
	if p == nil {
		writeError(w, http.StatusNotFound, "Profile not found", nil)
		return
	}
	writeJSON(w, http.StatusOK, toProfileDTO(h.ProfileFactory, *p))
}

// SaveProfile creates or updates a profile.
// POST /api/profiles
func (h *Handler) SaveProfile(w http.ResponseWriter, r *http.Request) {
	var req factory.ProfileJSON
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	profile, _, err := h.ProfileFactory.FromJSON(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid profile", err)
		return
	}

	ctx := r.Context()
	if err := h.Store.SaveProfile(ctx, profile); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save profile", err)
		return
	}

	saved, err := h.Store.GetProfile(ctx, profile.ID)
	if err != nil || saved == nil {
		writeError(w, http.StatusInternalServerError, "Failed to reload profile", err)
		return
	}
	writeJSON(w, http.StatusCreated, toProfileDTO(h.ProfileFactory, *saved))
}

// DeleteProfile removes a profile.
// DELETE /api/profiles/{id}
func (h *Handler) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	id := calendar.ProfileID(chi.URLParam(r, "id"))

	if err := h.Store.DeleteProfile(r.Context(), id); err != nil {
		writeDomainError(w, "Failed to delete profile", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// REQUEST PARSING
// =============================================================================

// resolveConfig builds the calendar config from ?profile= or explicit params.
func (h *Handler) resolveConfig(r *http.Request) (calendar.Config, error) {
	q := r.URL.Query()

	var opts []calendar.Option
	if h.TimeZoneFallback != nil {
		opts = append(opts, calendar.WithTimeZoneFallback(h.TimeZoneFallback))
	}

	if id := q.Get("profile"); id != "" {
		p, err := h.Store.GetProfile(r.Context(), calendar.ProfileID(id))
		if err != nil {
			return calendar.Config{}, err
		}
		if p == nil {
			return calendar.Config{}, fmt.Errorf("%w: %s", calendar.ErrProfileNotFound, id)
		}
		return p.Config(opts...)
	}

	locale := q.Get("locale")
	var firstWeekday int
	if raw := q.Get("first_weekday"); raw != "" {
		wd, err := factory.ParseWeekday(raw)
		if err != nil {
			return calendar.Config{}, err
		}
		firstWeekday = int(wd)
	} else {
		wd, err := calendar.LocaleFirstWeekday(locale)
		if err != nil {
			return calendar.Config{}, err
		}
		firstWeekday = wd
	}

	tz := q.Get("tz")
	if tz == "" {
		tz = "UTC"
	}
	return calendar.NewConfig(firstWeekday, tz, locale, opts...)
}

func (h *Handler) configAndDate(w http.ResponseWriter, r *http.Request) (calendar.Config, time.Time, bool) {
	cfg, err := h.resolveConfig(r)
	if err != nil {
		writeDomainError(w, "Invalid calendar configuration", err)
		return calendar.Config{}, time.Time{}, false
	}
	date, err := parseDate(r.URL.Query().Get("date"), cfg.Location())
	if err != nil {
		writeDomainError(w, "Invalid date", err)
		return calendar.Config{}, time.Time{}, false
	}
	return cfg, date, true
}

func (h *Handler) configRangeAndSymbols(w http.ResponseWriter, r *http.Request) (calendar.Config, calendar.DateRange, calendar.SymbolType, bool) {
	q := r.URL.Query()

	cfg, err := h.resolveConfig(r)
	if err != nil {
		writeDomainError(w, "Invalid calendar configuration", err)
		return calendar.Config{}, calendar.DateRange{}, 0, false
	}

	kind, err := calendar.ParseSymbolType(q.Get("symbols"))
	if err != nil {
		writeDomainError(w, "Invalid symbol type", err)
		return calendar.Config{}, calendar.DateRange{}, 0, false
	}

	start, err := parseDate(q.Get("start"), cfg.Location())
	if err != nil {
		writeDomainError(w, "Invalid start date", err)
		return calendar.Config{}, calendar.DateRange{}, 0, false
	}
	end := start
	if raw := q.Get("end"); raw != "" {
		if end, err = parseDate(raw, cfg.Location()); err != nil {
			writeDomainError(w, "Invalid end date", err)
			return calendar.Config{}, calendar.DateRange{}, 0, false
		}
	}

	rng, err := calendar.NewDateRange(start, end)
	if err != nil {
		writeDomainError(w, "Invalid range", err)
		return calendar.Config{}, calendar.DateRange{}, 0, false
	}
	if monthsBetween(rng) > MaxRangeMonths {
		writeDomainError(w, "Invalid range", errRangeTooLarge)
		return calendar.Config{}, calendar.DateRange{}, 0, false
	}
	return cfg, rng, kind, true
}

func parseDate(raw string, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("%w: date is required", calendar.ErrInvalidRange)
	}

	t, err := time.ParseInLocation("2006-01-02", raw, loc)
	if err != nil {
		t, err = time.Parse(time.RFC3339, raw)
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is neither YYYY-MM-DD nor RFC 3339", calendar.ErrInvalidRange, raw)
	}
	if _, err := calendar.NewDateRange(t, t); err != nil {
		return time.Time{}, err
	}
	return t, nil
}

func monthsBetween(r calendar.DateRange) int {
	return (r.End.Year()-r.Start.Year())*12 + int(r.End.Month()) - int(r.Start.Month())
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func notModified(w http.ResponseWriter, r *http.Request, key string) bool {
	etag := `"` + key + `"`
	w.Header().Set("ETag", etag)
	if match := r.Header.Get("If-None-Match"); match != "" && match == etag {
		w.WriteHeader(http.StatusNotModified)
		return true
	}
	return false
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("[API] Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

// writeDomainError maps calendar errors to HTTP status codes.
func writeDomainError(w http.ResponseWriter, message string, err error) {
	switch {
	case calendar.IsNotFound(err):
		writeError(w, http.StatusNotFound, message, err)
	case calendar.IsClientError(err):
		writeError(w, http.StatusBadRequest, message, err)
	default:
		writeError(w, http.StatusInternalServerError, message, err)
	}
}
