package filters

import "sync"

// View keeps a filtered projection of a source collection up to date.
// Loads are tokenized: Begin hands out a token and Accept applies a result only
// for the latest token of an open view, so a slow load that was superseded or
// that finishes after Close is dropped.
type View[T any] struct {
	mu      sync.RWMutex
	source  []T
	query   Query[T]
	result  []T
	gen     uint64
	load    uint64
	closed  bool
	onApply func([]T)
}

// NewView creates an empty view filtered by q.
func NewView[T any](q Query[T]) *View[T] {
	v := &View[T]{query: q}
	v.recompute()
	return v
}

// OnApply registers fn to receive every recomputed result.
func (v *View[T]) OnApply(fn func([]T)) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.onApply = fn
}

// SetSource replaces the source and recomputes.
func (v *View[T]) SetSource(items []T) {
	v.mu.Lock()
	v.source = append([]T(nil), items...)
	v.recompute()
	fn, result := v.onApply, v.result
	v.mu.Unlock()
	notify(fn, result)
}

// SetQuery replaces the query and recomputes.
func (v *View[T]) SetQuery(q Query[T]) {
	v.mu.Lock()
	v.query = q
	v.recompute()
	fn, result := v.onApply, v.result
	v.mu.Unlock()
	notify(fn, result)
}

// Begin starts a load and returns its token. Earlier tokens become stale.
func (v *View[T]) Begin() uint64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.load++
	return v.load
}

// Accept installs items as the source if token is still current.
// It reports whether the items were applied.
func (v *View[T]) Accept(token uint64, items []T) bool {
	v.mu.Lock()
	if v.closed || token != v.load {
		v.mu.Unlock()
		return false
	}
	v.source = append([]T(nil), items...)
	v.recompute()
	fn, result := v.onApply, v.result
	v.mu.Unlock()
	notify(fn, result)
	return true
}

// Close detaches the view. Pending loads are dropped when they finish.
func (v *View[T]) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closed = true
	v.onApply = nil
}

// Items returns the current filtered result.
func (v *View[T]) Items() []T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return append([]T(nil), v.result...)
}

// Source returns the unfiltered collection.
func (v *View[T]) Source() []T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return append([]T(nil), v.source...)
}

// Generation counts the recomputations so far.
func (v *View[T]) Generation() uint64 {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.gen
}

func (v *View[T]) recompute() {
	v.result = Apply(v.source, v.query)
	v.gen++
}

func notify[T any](fn func([]T), result []T) {
	if fn != nil {
		fn(append([]T(nil), result...))
	}
}
