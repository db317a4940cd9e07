package tern

import "errors"

// ErrCyclicDependency reports a same-tick self-referential signal write: a
// computation wrote to a signal it subscribed to during its current run.
// The write fails fast instead of looping.
var ErrCyclicDependency = errors.New("tern: cyclic dependency: computation wrote to its own source signal")

// ErrOwnerDisposed reports an attempt to register a computation under an
// owner scope that has already been disposed.
var ErrOwnerDisposed = errors.New("tern: owner scope already disposed")
