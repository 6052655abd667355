package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultOptions() options {
	return options{month: "2025-01", count: 1, timeZone: "UTC", locale: "en-US", symbols: "short"}
}

func TestRun_SingleMonth(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, run(&out, defaultOptions(), time.Now(), 80, false))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "January 2025", strings.TrimSpace(lines[0]))
	assert.Equal(t, "Sun Mon Tue Wed Thu Fri Sat", lines[1])
	assert.Equal(t, " 29  30  31   1   2   3   4", lines[2])
	assert.Equal(t, " 26  27  28  29  30  31   1", lines[6])
	assert.NotContains(t, out.String(), "\x1b[")
}

func TestRun_MondayStartFromName(t *testing.T) {
	var out bytes.Buffer
	opts := defaultOptions()
	opts.firstWeekday = "monday"
	opts.symbols = "very_short"

	require.NoError(t, run(&out, opts, time.Now(), 80, false))

	lines := strings.Split(out.String(), "\n")
	assert.Equal(t, " M  T  W  T  F  S  S", lines[1])
	assert.Equal(t, "30 31  1  2  3  4  5", lines[2])
}

func TestRun_MonthsSideBySide(t *testing.T) {
	var out bytes.Buffer
	opts := defaultOptions()
	opts.count = 3

	require.NoError(t, run(&out, opts, time.Now(), 80, false))

	lines := strings.Split(out.String(), "\n")
	assert.Contains(t, lines[0], "January 2025")
	assert.Contains(t, lines[0], "February 2025")
	assert.NotContains(t, lines[0], "March 2025")
	assert.Contains(t, out.String(), "March 2025")
}

func TestRun_DimsOverflowDays(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, run(&out, defaultOptions(), time.Now(), 40, true))

	assert.Contains(t, out.String(), "\x1b[2m 29\x1b[0m")
	assert.NotContains(t, out.String(), "\x1b[2m 15\x1b[0m")
}

func TestRun_DefaultsToCurrentMonth(t *testing.T) {
	var out bytes.Buffer
	opts := defaultOptions()
	opts.month = ""

	require.NoError(t, run(&out, opts, time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC), 80, false))

	assert.Contains(t, out.String(), "March 2026")
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*options)
	}{
		{"bad month", func(o *options) { o.month = "2025/01" }},
		{"zero count", func(o *options) { o.count = 0 }},
		{"bad symbols", func(o *options) { o.symbols = "tiny" }},
		{"bad weekday", func(o *options) { o.firstWeekday = "funday" }},
		{"bad zone", func(o *options) { o.timeZone = "Nowhere/Land" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := defaultOptions()
			tt.modify(&opts)
			assert.Error(t, run(&bytes.Buffer{}, opts, time.Now(), 80, false))
		})
	}
}
