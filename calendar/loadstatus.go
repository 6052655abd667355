package calendar

// =============================================================================
// LOAD STATUS - Loading | Loaded(items)
// =============================================================================

// LoadStatus is the state of an asynchronous generation pass. The zero value
// is Loading.
type LoadStatus[T Loadable] struct {
	loaded bool
	items  []T
}

// Loading returns the in-flight status.
func Loading[T Loadable]() LoadStatus[T] {
	return LoadStatus[T]{}
}

// Loaded returns a completed status carrying items.
func Loaded[T Loadable](items []T) LoadStatus[T] {
	if items == nil {
		items = []T{}
	}
	return LoadStatus[T]{loaded: true, items: items}
}

func (s LoadStatus[T]) IsLoading() bool { return !s.loaded }
func (s LoadStatus[T]) IsLoaded() bool  { return s.loaded }

// Data returns the loaded items, or an empty slice while loading.
func (s LoadStatus[T]) Data() []T {
	if !s.loaded {
		return []T{}
	}
	return s.items
}

func (s LoadStatus[T]) String() string {
	if s.loaded {
		return "loaded"
	}
	return "loading"
}
