package sqlite_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/calendar-engine/calendar"
	"github.com/warp/calendar-engine/store/sqlite"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func newTestStore(t *testing.T) *sqlite.Store {
	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func isoProfile() calendar.Profile {
	return calendar.Profile{
		ID:                     "iso",
		Name:                   "ISO 8601",
		FirstWeekday:           2,
		TimeZone:               "UTC",
		Locale:                 "en-GB",
		MinimumDaysInFirstWeek: 4,
	}
}

// =============================================================================
// PROFILE TESTS
// =============================================================================

func TestStore_SaveAndGetProfile(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveProfile(ctx, isoProfile()))

	got, err := store.GetProfile(ctx, "iso")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "ISO 8601", got.Name)
	assert.Equal(t, 2, got.FirstWeekday)
	assert.Equal(t, "en-GB", got.Locale)
	assert.Equal(t, 4, got.MinimumDaysInFirstWeek)
	assert.False(t, got.CreatedAt.IsZero())

	cfg, err := got.Config()
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.MinimumDaysInFirstWeek())
}

func TestStore_GetMissingProfile(t *testing.T) {
	store := newTestStore(t)

	got, err := store.GetProfile(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_UpsertKeepsCreatedAt(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveProfile(ctx, isoProfile()))
	first, err := store.GetProfile(ctx, "iso")
	require.NoError(t, err)

	updated := isoProfile()
	updated.TimeZone = "Europe/London"
	require.NoError(t, store.SaveProfile(ctx, updated))

	second, err := store.GetProfile(ctx, "iso")
	require.NoError(t, err)
	assert.Equal(t, "Europe/London", second.TimeZone)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)

	profiles, err := store.ListProfiles(ctx)
	require.NoError(t, err)
	assert.Len(t, profiles, 1)
}

func TestStore_ListOrderedByName(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	empty, err := store.ListProfiles(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)

	require.NoError(t, store.SaveProfile(ctx, calendar.Profile{ID: "b", Name: "Zulu", FirstWeekday: 1, TimeZone: "UTC", Locale: "en-US"}))
	require.NoError(t, store.SaveProfile(ctx, calendar.Profile{ID: "a", Name: "Alpha", FirstWeekday: 2, TimeZone: "UTC", Locale: "en-GB"}))

	profiles, err := store.ListProfiles(ctx)
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, "Alpha", profiles[0].Name)
	assert.Equal(t, "Zulu", profiles[1].Name)
}

func TestStore_RejectsInvalidFirstWeekday(t *testing.T) {
	store := newTestStore(t)

	p := isoProfile()
	p.FirstWeekday = 9
	assert.Error(t, store.SaveProfile(context.Background(), p))
}

func TestStore_DeleteProfile(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.SaveProfile(ctx, isoProfile()))

	require.NoError(t, store.DeleteProfile(ctx, "iso"))

	err := store.DeleteProfile(ctx, "iso")
	assert.ErrorIs(t, err, calendar.ErrProfileNotFound)
	assert.True(t, calendar.IsNotFound(err))
}

func TestStore_Reset(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.SaveProfile(ctx, isoProfile()))

	require.NoError(t, store.Reset(ctx))

	profiles, err := store.ListProfiles(ctx)
	require.NoError(t, err)
	assert.Empty(t, profiles)
}
