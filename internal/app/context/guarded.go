package appctx

import "sync"

// Guarded is a value shared by the workers of one request, such as the
// running outcome of a bulk update.
type Guarded[T any] struct {
	mu  sync.Mutex
	val T
}

// Guard wraps val.
func Guard[T any](val T) *Guarded[T] {
	return &Guarded[T]{val: val}
}

// Do calls fn with exclusive access to the value.
func (g *Guarded[T]) Do(fn func(*T)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	fn(&g.val)
}

// Load returns a copy of the value.
func (g *Guarded[T]) Load() T {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.val
}
