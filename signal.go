package tern

import "reflect"

// Signal is a reactive storage cell. Reads from inside an effect register
// that effect as a dependent; writes notify all dependents. The zero value
// is not usable; create signals with NewSignal.
type Signal[T any] struct {
	rt     *Runtime
	id     sigID
	value  T
	equals func(a, b T) bool
}

// NewSignal creates a signal holding initial. Writes of a structurally
// identical value are dropped without notifying dependents.
func NewSignal[T any](rt *Runtime, initial T, opts ...SignalOption[T]) *Signal[T] {
	s := &Signal[T]{
		rt:     rt,
		id:     rt.registerSignal(),
		value:  initial,
		equals: func(a, b T) bool { return reflect.DeepEqual(a, b) },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SignalOption configures a signal at creation.
type SignalOption[T any] func(*Signal[T])

// WithEquals overrides the structural-equality check used to suppress
// redundant writes.
func WithEquals[T any](eq func(a, b T) bool) SignalOption[T] {
	return func(s *Signal[T]) { s.equals = eq }
}

// Get returns the current value and registers the active computation, if
// any, as a dependent.
func (s *Signal[T]) Get() T {
	s.rt.track(s.id)
	return s.value
}

// Peek returns the current value without registering a dependency.
func (s *Signal[T]) Peek() T {
	return s.value
}

// Set replaces the value. Identical values are a no-op; otherwise every
// dependent computation is scheduled (and run, unless a batch is open).
func (s *Signal[T]) Set(v T) {
	if s.equals(s.value, v) {
		return
	}
	s.value = v
	s.rt.notify(s.id)
}

// Update applies fn to the current value and stores the result, with the
// same no-op and notification semantics as Set.
func (s *Signal[T]) Update(fn func(T) T) {
	s.Set(fn(s.value))
}

// Version returns the signal's monotonically increasing write counter.
func (s *Signal[T]) Version() uint64 {
	if rec := s.rt.signals[s.id]; rec != nil {
		return rec.version
	}
	return 0
}
