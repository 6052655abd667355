/*
scheduler.go - Background cache warmer

PURPOSE:
  Periodically pre-generates the grids calendar frontends ask for most:
  the previous, current and next month of every stored profile. Requests
  for those ranges are then served from calendar.Cache.

DESIGN:
  - Runs a background goroutine with configurable interval
  - Warms month grids and week rows for each profile
  - Ranges are built exactly as the API parses YYYY-MM-DD dates, so cache
    keys match incoming requests
  - Profiles whose config no longer validates are logged and skipped

CONFIGURATION:
  - Interval: How often to warm (default: 1 hour)
  - Enabled: Whether the warmer is active (default: true)

USAGE:
  warmer := NewCacheWarmer(store, cache)
  warmer.Start()
  // ... later
  warmer.Stop()

SEE ALSO:
  - handlers.go: ListMonths / ListWeeks read from the same cache
  - calendar/cache.go: Cache keys
*/
package api

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/warp/calendar-engine/calendar"
)

// CacheWarmer pre-generates grids for stored profiles.
type CacheWarmer struct {
	Store    calendar.ProfileStore
	Cache    *calendar.Cache
	Interval time.Duration
	Enabled  bool

	// Now is the clock; tests override it.
	Now func() time.Time

	ticker *time.Ticker
	stop   chan struct{}
	wg     sync.WaitGroup
	mu     sync.Mutex
}

// NewCacheWarmer creates a new warmer.
func NewCacheWarmer(store calendar.ProfileStore, cache *calendar.Cache) *CacheWarmer {
	return &CacheWarmer{
		Store:    store,
		Cache:    cache,
		Interval: 1 * time.Hour,
		Enabled:  true,
		Now:      time.Now,
	}
}

// Start begins the warmer.
func (cw *CacheWarmer) Start() {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	if !cw.Enabled || cw.Interval <= 0 {
		log.Println("[Warmer] Disabled, not starting")
		return
	}
	if cw.ticker != nil {
		return
	}

	// Stop closes the channel, so each run gets a fresh one.
	cw.stop = make(chan struct{})
	cw.ticker = time.NewTicker(cw.Interval)
	cw.wg.Add(1)

	go cw.run()

	log.Printf("[Warmer] Started with interval: %v", cw.Interval)
}

// Stop stops the warmer and waits for an in-flight pass.
func (cw *CacheWarmer) Stop() {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	if cw.ticker != nil {
		cw.ticker.Stop()
		close(cw.stop)
		cw.wg.Wait()
		cw.ticker = nil
		log.Println("[Warmer] Stopped")
	}
}

func (cw *CacheWarmer) run() {
	defer cw.wg.Done()

	// Run immediately on start
	cw.warm()

	ticks, stop := cw.ticker.C, cw.stop
	for {
		select {
		case <-ticks:
			cw.warm()
		case <-stop:
			return
		}
	}
}

func (cw *CacheWarmer) warm() {
	n, err := cw.WarmOnce(context.Background())
	if err != nil {
		log.Printf("[Warmer] Error: %v", err)
		return
	}
	log.Printf("[Warmer] Warmed %d profiles", n)
}

// WarmOnce warms every stored profile and returns how many were warmed.
func (cw *CacheWarmer) WarmOnce(ctx context.Context) (int, error) {
	profiles, err := cw.Store.ListProfiles(ctx)
	if err != nil {
		return 0, err
	}

	warmed := 0
	for _, p := range profiles {
		if err := ctx.Err(); err != nil {
			return warmed, err
		}

		cfg, err := p.Config()
		if err != nil {
			log.Printf("[Warmer] Skipping profile %s: %v", p.ID, err)
			continue
		}

		rng, err := WarmRange(cw.Now(), cfg.Location())
		if err != nil {
			log.Printf("[Warmer] Skipping profile %s: %v", p.ID, err)
			continue
		}

		gen := calendar.NewGenerator(cfg)
		cw.Cache.Months(gen, rng)
		cw.Cache.Weeks(gen, rng)
		warmed++
	}
	return warmed, nil
}

// WarmRange returns midnight on the first day of the month before now
// through midnight on the last day of the month after, in loc.
func WarmRange(now time.Time, loc *time.Location) (calendar.DateRange, error) {
	local := now.In(loc)
	start := time.Date(local.Year(), local.Month()-1, 1, 0, 0, 0, 0, loc)
	end := time.Date(local.Year(), local.Month()+2, 0, 0, 0, 0, 0, loc)
	return calendar.NewDateRange(start, end)
}
