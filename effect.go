package tern

// Effect is a computation that re-runs whenever any signal it read during
// its last run changes. Dependencies are dynamic: each run clears the old
// subscription set and records a fresh one from the reads it performs.
type Effect struct {
	rt   *Runtime
	comp *computation
}

// CreateEffect wraps fn as a computation, runs it once immediately, and
// re-runs it on changes to its dependencies. The effect registers under the
// current owner scope and stops permanently when that scope is disposed.
//
// A panic inside fn propagates to whoever triggered the write; the graph
// never swallows it.
func (rt *Runtime) CreateEffect(fn func()) *Effect {
	c := &computation{
		id:      rt.nextComp,
		fn:      fn,
		sources: make(map[sigID]struct{}),
	}
	rt.nextComp++
	rt.comps[c.id] = c
	rt.owner.register(c)

	rt.run(c)
	return &Effect{rt: rt, comp: c}
}

// Dispose removes the effect from the graph without waiting for its owner
// scope. Idempotent.
func (e *Effect) Dispose() {
	e.rt.dispose(e.comp)
}

// Memo is a derived value: a computation whose result is itself a signal.
// Reading a memo from an effect subscribes the effect to the derived value,
// which only notifies when the computed result actually changes.
type Memo[T any] struct {
	out *Signal[T]
}

// CreateMemo computes fn reactively: fn re-runs when its dependencies
// change, and the memo's readers are notified only when the computed value
// differs from the previous one.
func CreateMemo[T any](rt *Runtime, fn func() T) *Memo[T] {
	m := &Memo[T]{}
	rt.CreateEffect(func() {
		v := fn()
		if m.out == nil {
			m.out = NewSignal(rt, v)
			return
		}
		m.out.Set(v)
	})
	return m
}

// Get returns the memo's current value, tracking it as a dependency of the
// active computation.
func (m *Memo[T]) Get() T {
	return m.out.Get()
}

// Peek returns the memo's current value without tracking.
func (m *Memo[T]) Peek() T {
	return m.out.Peek()
}
