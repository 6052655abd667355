package api_test

import (
	"context"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/calendar-engine/api"
	"github.com/warp/calendar-engine/calendar"
)

func TestWarmRange(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 2025-01-01T03:00Z is still December 31 in New York.
	r, err := api.WarmRange(time.Date(2025, time.January, 1, 3, 0, 0, 0, time.UTC), ny)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, time.November, 1, 0, 0, 0, 0, ny), r.Start)
	assert.Equal(t, time.Date(2025, time.January, 31, 0, 0, 0, 0, ny), r.End)
}

func TestCacheWarmer_WarmOnceServesRequestsFromCache(t *testing.T) {
	h, router := newTestAPI(t)
	warmer := api.NewCacheWarmer(h.Store, h.Cache)
	warmer.Now = func() time.Time { return time.Date(2025, time.February, 10, 12, 0, 0, 0, time.UTC) }

	// WHEN: Warming all profiles
	n, err := warmer.WarmOnce(context.Background())
	require.NoError(t, err)

	// THEN: Months and weeks are cached per profile
	assert.Equal(t, 4, n)
	assert.Equal(t, 8, h.Cache.Len())

	// AND: A matching request is a cache hit
	hitsBefore, _ := h.Cache.Stats()
	rec := get(t, router, "/api/months", url.Values{
		"profile": {"us"},
		"start":   {"2025-01-01"},
		"end":     {"2025-03-31"},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	hitsAfter, _ := h.Cache.Stats()
	assert.Equal(t, hitsBefore+1, hitsAfter)
}

func TestCacheWarmer_SkipsInvalidProfiles(t *testing.T) {
	h, _ := newTestAPI(t)
	ctx := context.Background()
	require.NoError(t, h.Store.SaveProfile(ctx, calendar.Profile{ID: "broken", Name: "Broken", FirstWeekday: 1, TimeZone: "Nowhere/Land"}))

	warmer := api.NewCacheWarmer(h.Store, h.Cache)
	n, err := warmer.WarmOnce(ctx)

	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestCacheWarmer_StartStop(t *testing.T) {
	h, _ := newTestAPI(t)
	warmer := api.NewCacheWarmer(h.Store, h.Cache)
	warmer.Interval = time.Hour

	warmer.Start()
	assert.Eventually(t, func() bool { return h.Cache.Len() == 8 }, 2*time.Second, 10*time.Millisecond)
	warmer.Stop()

	// Disabled warmers never run.
	idle := api.NewCacheWarmer(h.Store, calendar.NewCache(0))
	idle.Enabled = false
	idle.Start()
	idle.Stop()
	assert.Equal(t, 0, idle.Cache.Len())
}

func TestCacheWarmer_Restart(t *testing.T) {
	h, _ := newTestAPI(t)
	warmer := api.NewCacheWarmer(h.Store, h.Cache)
	warmer.Interval = 10 * time.Millisecond

	// GIVEN: A warmer that ran and was stopped
	warmer.Start()
	assert.Eventually(t, func() bool { return h.Cache.Len() == 8 }, 2*time.Second, 5*time.Millisecond)
	warmer.Stop()

	// WHEN: Started again
	hitsBefore, _ := h.Cache.Stats()
	warmer.Start()

	// THEN: It keeps warming on every tick, not just once
	assert.Eventually(t, func() bool {
		hits, _ := h.Cache.Stats()
		return hits >= hitsBefore+3*8
	}, 2*time.Second, 5*time.Millisecond)

	// AND: A second Stop shuts it down cleanly
	assert.NotPanics(t, warmer.Stop)
	assert.NotPanics(t, warmer.Stop)
}
