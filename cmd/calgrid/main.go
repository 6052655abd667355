/*
main.go - calgrid command-line month grid printer

PURPOSE:
  Prints one or more month grids to stdout using the same generator the
  server uses. Handy for eyeballing first-weekday and time zone settings.

COMMAND-LINE FLAGS:
  -month          First month to print, YYYY-MM (default: current month)
  -count          Number of months (default: 3)
  -first-weekday  1-7 or a weekday name (default: locale convention)
  -tz             IANA time zone (default: UTC)
  -locale         BCP 47 locale (default: en-US)
  -symbols        full, short or very_short (default: short)

OUTPUT:
  Months are laid out side by side, as many per row as the terminal width
  allows. Days outside the month are dimmed when stdout is a terminal.

EXAMPLES:
  calgrid -month=2025-01 -count=12 -first-weekday=monday -locale=de-DE
*/
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"
	_ "time/tzdata"
	"unicode/utf8"

	"github.com/warp/calendar-engine/calendar"
	"github.com/warp/calendar-engine/factory"
	"golang.org/x/term"
)

const (
	defaultWidth = 80
	monthGap     = 3
)

type options struct {
	month        string
	count        int
	firstWeekday string
	timeZone     string
	locale       string
	symbols      string
}

func main() {
	var opts options
	flag.StringVar(&opts.month, "month", "", "First month to print (YYYY-MM)")
	flag.IntVar(&opts.count, "count", 3, "Number of months")
	flag.StringVar(&opts.firstWeekday, "first-weekday", "", "First weekday, 1-7 or name (default: locale)")
	flag.StringVar(&opts.timeZone, "tz", "UTC", "IANA time zone")
	flag.StringVar(&opts.locale, "locale", "en-US", "BCP 47 locale")
	flag.StringVar(&opts.symbols, "symbols", "short", "Weekday symbols: full, short, very_short")
	flag.Parse()

	fd := int(os.Stdout.Fd())
	width := defaultWidth
	isTTY := term.IsTerminal(fd)
	if isTTY {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			width = w
		}
	}

	if err := run(os.Stdout, opts, time.Now(), width, isTTY); err != nil {
		log.SetFlags(0)
		log.Fatalf("calgrid: %v", err)
	}
}

func run(w io.Writer, opts options, now time.Time, width int, dim bool) error {
	cfg, err := buildConfig(opts)
	if err != nil {
		return err
	}
	if opts.count < 1 {
		return fmt.Errorf("count must be at least 1")
	}

	kind, err := calendar.ParseSymbolType(opts.symbols)
	if err != nil {
		return err
	}

	start, err := firstMonth(opts.month, now, cfg.Location())
	if err != nil {
		return err
	}
	end := time.Date(start.Year(), start.Month()+time.Month(opts.count), 0, 0, 0, 0, 0, start.Location())
	rng, err := calendar.NewDateRange(start, end)
	if err != nil {
		return err
	}

	gen := calendar.NewGenerator(cfg)
	_, err = io.WriteString(w, render(gen.MonthContexts(rng), gen.Symbols(kind), width, dim))
	return err
}

func buildConfig(opts options) (calendar.Config, error) {
	var firstWeekday int
	if opts.firstWeekday != "" {
		wd, err := factory.ParseWeekday(opts.firstWeekday)
		if err != nil {
			return calendar.Config{}, err
		}
		firstWeekday = int(wd)
	} else {
		wd, err := calendar.LocaleFirstWeekday(opts.locale)
		if err != nil {
			return calendar.Config{}, err
		}
		firstWeekday = wd
	}
	return calendar.NewConfig(firstWeekday, opts.timeZone, opts.locale)
}

func firstMonth(raw string, now time.Time, loc *time.Location) (time.Time, error) {
	if raw == "" {
		local := now.In(loc)
		return time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc), nil
	}
	t, err := time.ParseInLocation("2006-01", raw, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid -month %q: want YYYY-MM", raw)
	}
	return t, nil
}

// =============================================================================
// RENDERING
// =============================================================================

func render(months []calendar.MonthContext, symbols []string, width int, dim bool) string {
	cell := 2
	for _, s := range symbols {
		if n := utf8.RuneCountInString(s); n > cell {
			cell = n
		}
	}
	blockWidth := calendar.DaysPerWeek*(cell+1) - 1

	perRow := (width + monthGap) / (blockWidth + monthGap)
	if perRow < 1 {
		perRow = 1
	}

	var b strings.Builder
	for i := 0; i < len(months); i += perRow {
		row := months[i:min(i+perRow, len(months))]
		if i > 0 {
			b.WriteString("\n")
		}
		writeRow(&b, row, symbols, cell, blockWidth, dim)
	}
	return b.String()
}

func writeRow(b *strings.Builder, row []calendar.MonthContext, symbols []string, cell, blockWidth int, dim bool) {
	blocks := make([][]string, len(row))
	height := 0
	for i, m := range row {
		blocks[i] = monthLines(m, symbols, cell, blockWidth, dim)
		height = max(height, len(blocks[i]))
	}

	gap := strings.Repeat(" ", monthGap)
	blank := strings.Repeat(" ", blockWidth)
	for line := 0; line < height; line++ {
		parts := make([]string, len(blocks))
		for i, lines := range blocks {
			parts[i] = blank
			if line < len(lines) {
				parts[i] = lines[line]
			}
		}
		b.WriteString(strings.TrimRight(strings.Join(parts, gap), " "))
		b.WriteString("\n")
	}
}

// monthLines renders one month as a title, header and week rows, every
// line padded to blockWidth visible columns.
func monthLines(m calendar.MonthContext, symbols []string, cell, blockWidth int, dim bool) []string {
	lines := []string{center(fmt.Sprintf("%s %d", time.Month(m.Month), m.Year), blockWidth)}

	header := make([]string, len(symbols))
	for i, s := range symbols {
		header[i] = padLeft(s, cell)
	}
	lines = append(lines, strings.Join(header, " "))

	for _, week := range m.Weeks {
		cells := make([]string, len(week.Days))
		for i, d := range week.Days {
			c := padLeft(fmt.Sprint(d.Day), cell)
			if dim && !d.InMonth(m.Year, m.Month) {
				c = "\x1b[2m" + c + "\x1b[0m"
			}
			cells[i] = c
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	return lines
}

func padLeft(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return strings.Repeat(" ", width-n) + s
	}
	return s
}

func center(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}
