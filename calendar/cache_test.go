package calendar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/calendar-engine/calendar"
)

func TestCache_MemoizesMonths(t *testing.T) {
	cache := calendar.NewCache(4)
	g := calendar.NewGenerator(calendar.DefaultConfig())
	r, err := calendar.NewDateRange(utcDate(2025, time.January, 1), utcDate(2025, time.March, 31))
	require.NoError(t, err)

	first, key1 := cache.Months(g, r)
	second, key2 := cache.Months(g, r)

	assert.Equal(t, key1, key2)
	assert.Len(t, key1, 64)
	assert.Equal(t, g.MonthContexts(r), first)
	assert.Equal(t, first, second)

	hits, misses := cache.Stats()
	assert.Equal(t, uint64(1), hits)
	assert.Equal(t, uint64(1), misses)
	assert.Equal(t, 1, cache.Len())
}

func TestCacheKey_DependsOnAllInputs(t *testing.T) {
	sunday := calendar.MustNewConfig(1, "UTC", "en-US")
	monday := calendar.MustNewConfig(2, "UTC", "en-US")
	r := calendar.SingleDay(utcDate(2025, time.January, 15))
	other := calendar.SingleDay(utcDate(2025, time.January, 16))

	base := calendar.CacheKey(sunday, calendar.KindMonths, r)

	assert.Equal(t, base, calendar.CacheKey(sunday, calendar.KindMonths, r))
	assert.NotEqual(t, base, calendar.CacheKey(monday, calendar.KindMonths, r))
	assert.NotEqual(t, base, calendar.CacheKey(sunday, calendar.KindWeeks, r))
	assert.NotEqual(t, base, calendar.CacheKey(sunday, calendar.KindMonths, other))
}

func TestCache_WeeksAndMonthsDoNotCollide(t *testing.T) {
	cache := calendar.NewCache(0)
	g := calendar.NewGenerator(calendar.DefaultConfig())
	r := calendar.SingleDay(utcDate(2025, time.January, 15))

	months, mKey := cache.Months(g, r)
	weeks, wKey := cache.Weeks(g, r)

	assert.NotEqual(t, mKey, wKey)
	assert.Len(t, months, 1)
	assert.Len(t, weeks, 1)
	assert.Equal(t, 2, cache.Len())
}

func TestCache_EvictsOldest(t *testing.T) {
	cache := calendar.NewCache(2)
	g := calendar.NewGenerator(calendar.DefaultConfig())

	for day := 1; day <= 3; day++ {
		cache.Months(g, calendar.SingleDay(utcDate(2025, time.January, day)))
	}
	assert.Equal(t, 2, cache.Len())

	// Day 1 was evicted, day 3 is still cached.
	cache.Months(g, calendar.SingleDay(utcDate(2025, time.January, 3)))
	hits, _ := cache.Stats()
	assert.Equal(t, uint64(1), hits)

	cache.Months(g, calendar.SingleDay(utcDate(2025, time.January, 1)))
	hits, misses := cache.Stats()
	assert.Equal(t, uint64(1), hits)
	assert.Equal(t, uint64(4), misses)
}
