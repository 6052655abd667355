package calendar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/calendar-engine/calendar"
)

func TestNewConfig_Valid(t *testing.T) {
	cfg, err := calendar.NewConfig(2, "Europe/Berlin", "de_DE")
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.FirstWeekday())
	assert.Equal(t, "Europe/Berlin", cfg.TimeZone())
	assert.Equal(t, "de-DE", cfg.Locale())
	assert.Equal(t, 4, cfg.MinimumDaysInFirstWeek())
	assert.False(t, cfg.FellBack())
	assert.False(t, cfg.IsZero())
}

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := calendar.NewConfig(1, "", "")
	require.NoError(t, err)

	assert.Equal(t, "UTC", cfg.TimeZone())
	assert.Equal(t, calendar.DefaultLocale, cfg.Locale())
	assert.Equal(t, 1, cfg.MinimumDaysInFirstWeek())
	assert.Equal(t, calendar.DefaultConfig().Fingerprint(), cfg.Fingerprint())
}

func TestNewConfig_RejectsFirstWeekdayOutOfRange(t *testing.T) {
	for _, fw := range []int{0, -1, 8} {
		_, err := calendar.NewConfig(fw, "UTC", "en-US")

		assert.ErrorIs(t, err, calendar.ErrInvalidFirstWeekday, "first weekday %d", fw)
		var cfgErr *calendar.ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, "first_weekday", cfgErr.Field)
		assert.True(t, calendar.IsClientError(err))
	}
}

func TestNewConfig_UnknownTimeZone(t *testing.T) {
	t.Run("rejected by default", func(t *testing.T) {
		_, err := calendar.NewConfig(1, "Mars/Olympus_Mons", "en-US")
		assert.ErrorIs(t, err, calendar.ErrUnknownTimeZone)
	})

	t.Run("fallback substitutes and reports", func(t *testing.T) {
		cfg, err := calendar.NewConfig(1, "Mars/Olympus_Mons", "en-US", calendar.WithTimeZoneFallback(time.UTC))
		require.NoError(t, err)

		assert.True(t, cfg.FellBack())
		assert.Equal(t, time.UTC, cfg.Location())
		assert.Equal(t, "UTC", cfg.TimeZone())
	})
}

func TestNewConfig_InvalidLocale(t *testing.T) {
	_, err := calendar.NewConfig(1, "UTC", "not a locale!")
	assert.ErrorIs(t, err, calendar.ErrInvalidLocale)
}

func TestNewConfig_MinimumDays(t *testing.T) {
	cfg, err := calendar.NewConfig(2, "UTC", "en-US", calendar.WithMinimumDaysInFirstWeek(4))
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.MinimumDaysInFirstWeek())

	_, err = calendar.NewConfig(2, "UTC", "en-US", calendar.WithMinimumDaysInFirstWeek(9))
	assert.ErrorIs(t, err, calendar.ErrInvalidMinimumDays)
}

func TestConfig_FingerprintDistinguishesConfigs(t *testing.T) {
	a := calendar.MustNewConfig(1, "UTC", "en-US")
	b := calendar.MustNewConfig(2, "UTC", "en-US")
	c := calendar.MustNewConfig(1, "Asia/Tokyo", "en-US")

	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
	assert.Equal(t, a.Fingerprint(), calendar.MustNewConfig(1, "UTC", "en_US").Fingerprint())
}

func TestConfig_ZeroValue(t *testing.T) {
	var cfg calendar.Config
	assert.True(t, cfg.IsZero())
	assert.Equal(t, time.UTC, cfg.Location())
}

func TestMustNewConfig_Panics(t *testing.T) {
	assert.Panics(t, func() { calendar.MustNewConfig(0, "UTC", "en-US") })
}

func TestLocaleFirstWeekday(t *testing.T) {
	tests := []struct {
		locale string
		want   int
	}{
		{"en-US", 1},
		{"ja-JP", 1},
		{"de-DE", 2},
		{"en-GB", 2},
		{"fr", 2},
		{"ar-EG", 7},
		{"", 1},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			got, err := calendar.LocaleFirstWeekday(tt.locale)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := calendar.LocaleFirstWeekday("not a locale!")
	assert.ErrorIs(t, err, calendar.ErrInvalidLocale)
}
