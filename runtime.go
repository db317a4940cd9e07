package tern

import "github.com/tern-tui/tern/internal/debug"

// compID and sigID index the runtime's registries. Signals and computations
// reference each other by ID rather than by pointer, so disposal is a matter
// of deleting registry entries.
type compID int
type sigID int

// computation is the runtime-side record of an effect or memo: its body, the
// signals it read during its last run, and the owner that controls its
// lifetime.
type computation struct {
	id      compID
	fn      func()
	sources map[sigID]struct{}
	owner   *Owner
	running bool
}

// sigRecord is the runtime-side record of a signal: its version counter and
// the computations subscribed to it. The typed value lives in Signal[T].
type sigRecord struct {
	version uint64
	subs    map[compID]struct{}
}

// Runtime owns a signal graph: every signal, computation, and owner scope
// created against it. All operations are single-threaded; the runtime is
// driven synchronously by signal writes.
type Runtime struct {
	signals map[sigID]*sigRecord
	comps   map[compID]*computation

	nextSig  sigID
	nextComp compID

	// active is the computation currently collecting dependencies, or zero.
	active compID

	batchDepth int
	pending    []compID
	pendingSet map[compID]struct{}
	flushing   bool

	root  *Owner
	owner *Owner // scope new computations register under
}

// NewRuntime creates an empty signal graph with a root owner scope.
func NewRuntime() *Runtime {
	rt := &Runtime{
		signals:    make(map[sigID]*sigRecord),
		comps:      make(map[compID]*computation),
		nextSig:    1,
		nextComp:   1,
		pendingSet: make(map[compID]struct{}),
	}
	rt.root = &Owner{rt: rt}
	rt.owner = rt.root
	return rt
}

// Root returns the runtime's root owner scope. Disposing it tears down
// every computation in the graph.
func (rt *Runtime) Root() *Owner {
	return rt.root
}

// registerSignal allocates a registry slot for a new signal.
func (rt *Runtime) registerSignal() sigID {
	id := rt.nextSig
	rt.nextSig++
	rt.signals[id] = &sigRecord{subs: make(map[compID]struct{})}
	return id
}

// track records the active computation, if any, as a subscriber of sig.
func (rt *Runtime) track(sig sigID) {
	if rt.active == 0 {
		return
	}
	rec := rt.signals[sig]
	if rec == nil {
		return
	}
	rec.subs[rt.active] = struct{}{}
	if comp := rt.comps[rt.active]; comp != nil {
		comp.sources[sig] = struct{}{}
	}
}

// notify bumps the signal's version and schedules its subscribers. A write
// from a computation to one of its own sources is a same-tick cycle and
// panics with ErrCyclicDependency.
func (rt *Runtime) notify(sig sigID) {
	rec := rt.signals[sig]
	if rec == nil {
		return
	}
	rec.version++

	if rt.active != 0 {
		if _, cyclic := rec.subs[rt.active]; cyclic {
			panic(ErrCyclicDependency)
		}
	}

	for id := range rec.subs {
		rt.schedule(id)
	}
	if rt.batchDepth == 0 {
		rt.flush()
	}
}

// schedule queues a computation for the next flush, deduplicating repeat
// notifications within a batch.
func (rt *Runtime) schedule(id compID) {
	if _, queued := rt.pendingSet[id]; queued {
		return
	}
	rt.pendingSet[id] = struct{}{}
	rt.pending = append(rt.pending, id)
}

// flush runs queued computations in scheduling order. Computations that
// write signals while running extend the same queue.
func (rt *Runtime) flush() {
	if rt.flushing {
		return
	}
	rt.flushing = true
	defer func() { rt.flushing = false }()

	for len(rt.pending) > 0 {
		id := rt.pending[0]
		rt.pending = rt.pending[1:]
		delete(rt.pendingSet, id)
		if comp := rt.comps[id]; comp != nil {
			rt.run(comp)
		}
	}
}

// run executes one computation: its old subscriptions are cleared first so
// the dependency set is rebuilt from exactly the signals this run reads.
func (rt *Runtime) run(c *computation) {
	rt.clearSources(c)

	prev := rt.active
	rt.active = c.id
	c.running = true
	defer func() {
		c.running = false
		rt.active = prev
	}()
	c.fn()
}

// clearSources removes the computation from every signal it subscribed to.
func (rt *Runtime) clearSources(c *computation) {
	for sig := range c.sources {
		if rec := rt.signals[sig]; rec != nil {
			delete(rec.subs, c.id)
		}
	}
	clear(c.sources)
}

// dispose removes a computation from the graph entirely. It is never
// invoked again, even if still queued.
func (rt *Runtime) dispose(c *computation) {
	rt.clearSources(c)
	delete(rt.comps, c.id)
	debug.Log("runtime: disposed computation %d", c.id)
}

// Batch defers effect execution until fn returns, so any number of signal
// writes inside fn propagate as a single pass. Nested batches flatten into
// the outermost one.
func (rt *Runtime) Batch(fn func()) {
	rt.batchDepth++
	defer func() { rt.batchDepth-- }()
	fn()
	// Flush only on a normal return. A panic inside fn propagates to the
	// writer with the queue left intact.
	if rt.batchDepth == 1 {
		rt.flush()
	}
}

// Untrack runs fn without registering any signal reads as dependencies of
// the active computation.
func (rt *Runtime) Untrack(fn func()) {
	prev := rt.active
	rt.active = 0
	defer func() { rt.active = prev }()
	fn()
}
