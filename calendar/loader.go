/*
loader.go - Recompute-on-range-change wrapper around the generator

PURPOSE:
  UI layers hold a date range and want (status, symbols) to render. Loader
  runs a single generation pass each time the range identity changes and
  exposes Loading until that pass finishes, then swaps in Loaded with the
  full result. There are no partial results.

DESIGN:
  - SetRange is a no-op when the range is unchanged
  - Each pass runs in its own goroutine and always runs to completion
  - A pass started for an older range never overwrites a newer result
  - onLoaded fires once per pass that lands, after the status is swapped

USAGE:
  loader := calendar.NewMonthLoader(gen, calendar.SymbolShort, func(months []calendar.MonthContext) {
      selected = months[len(months)-1]
  })
  loader.SetRange(r)
  loader.Wait()
  render(loader.Status(), loader.Symbols())
*/
package calendar

import (
	"sync"
)

// Loader tracks the generation status for one range at a time.
type Loader[T Loadable] struct {
	generate func(DateRange) []T
	symbols  []string
	onLoaded func([]T)

	mu      sync.Mutex
	status  LoadStatus[T]
	current *DateRange
	seq     uint64
	wg      sync.WaitGroup
}

// NewMonthLoader creates a loader producing month grids.
func NewMonthLoader(g *Generator, kind SymbolType, onLoaded func([]MonthContext)) *Loader[MonthContext] {
	return newLoader(g.MonthContexts, g.Symbols(kind), onLoaded)
}

// NewWeekLoader creates a loader producing standalone weeks.
func NewWeekLoader(g *Generator, kind SymbolType, onLoaded func([]WeekContext)) *Loader[WeekContext] {
	return newLoader(g.WeekContexts, g.Symbols(kind), onLoaded)
}

func newLoader[T Loadable](generate func(DateRange) []T, symbols []string, onLoaded func([]T)) *Loader[T] {
	return &Loader[T]{
		generate: generate,
		symbols:  symbols,
		onLoaded: onLoaded,
		status:   Loading[T](),
	}
}

// SetRange triggers a generation pass if r differs from the current range.
// It returns false when nothing changed.
func (l *Loader[T]) SetRange(r DateRange) bool {
	l.mu.Lock()
	if l.current != nil && l.current.Equal(r) {
		l.mu.Unlock()
		return false
	}
	l.current = &r
	l.seq++
	seq := l.seq
	l.status = Loading[T]()
	l.wg.Add(1)
	l.mu.Unlock()

	go l.run(seq, r)
	return true
}

func (l *Loader[T]) run(seq uint64, r DateRange) {
	defer l.wg.Done()

	items := l.generate(r)

	l.mu.Lock()
	if seq != l.seq {
		l.mu.Unlock()
		return
	}
	l.status = Loaded(items)
	l.mu.Unlock()

	if l.onLoaded != nil {
		l.onLoaded(items)
	}
}

// Load sets the range and blocks until the result is available.
func (l *Loader[T]) Load(r DateRange) LoadStatus[T] {
	l.SetRange(r)
	l.Wait()
	return l.Status()
}

// Wait blocks until no pass is in flight.
func (l *Loader[T]) Wait() {
	l.wg.Wait()
}

// Status returns the current status.
func (l *Loader[T]) Status() LoadStatus[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.status
}

// Range returns the range of the latest pass, if any.
func (l *Loader[T]) Range() (DateRange, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.current == nil {
		return DateRange{}, false
	}
	return *l.current, true
}

// Symbols returns the header symbols, rotated to the first weekday.
func (l *Loader[T]) Symbols() []string {
	out := make([]string, len(l.symbols))
	copy(out, l.symbols)
	return out
}
