package tern

import "github.com/tern-tui/tern/internal/debug"

// Owner is a disposable scope for computations. Every effect and memo
// registers under the owner current at its creation; disposing an owner
// disposes its children and unsubscribes every descendant computation from
// every signal, guaranteeing none of them run again.
type Owner struct {
	rt       *Runtime
	parent   *Owner
	children []*Owner
	comps    []*computation
	cleanups []func()
	disposed bool
}

// Child creates a nested owner scope.
func (o *Owner) Child() *Owner {
	child := &Owner{rt: o.rt, parent: o}
	o.children = append(o.children, child)
	return child
}

// Run executes fn with this owner as the registration scope for any
// computations fn creates.
func (o *Owner) Run(fn func()) {
	prev := o.rt.owner
	o.rt.owner = o
	defer func() { o.rt.owner = prev }()
	fn()
}

// OnCleanup registers fn to run when this owner is disposed. Cleanups run
// in reverse registration order, children before parents.
func (o *Owner) OnCleanup(fn func()) {
	o.cleanups = append(o.cleanups, fn)
}

// Dispose tears down this scope: child scopes first, then this scope's
// computations and cleanups. Dispose is idempotent.
func (o *Owner) Dispose() {
	if o.disposed {
		return
	}
	o.disposed = true

	children := o.children
	o.children = nil
	for _, child := range children {
		child.Dispose()
	}

	for _, comp := range o.comps {
		o.rt.dispose(comp)
	}
	o.comps = nil

	for i := len(o.cleanups) - 1; i >= 0; i-- {
		o.cleanups[i]()
	}
	o.cleanups = nil

	if o.parent != nil {
		for i, child := range o.parent.children {
			if child == o {
				o.parent.children = append(o.parent.children[:i], o.parent.children[i+1:]...)
				break
			}
		}
	}
	debug.Log("owner: disposed scope")
}

// Disposed reports whether the scope has been torn down.
func (o *Owner) Disposed() bool {
	return o.disposed
}

// register attaches a computation to this owner.
func (o *Owner) register(c *computation) {
	if o.disposed {
		panic(ErrOwnerDisposed)
	}
	c.owner = o
	o.comps = append(o.comps, c)
}
