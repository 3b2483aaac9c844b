package observation

import "sync/atomic"

// Registry is the coordination point between "is instrumentation active" and
// "what is active". It owns one Config for its whole lifetime and tracks
// which observation is current at a given point in execution.
//
// A registry is either real or the NOOP singleton; the variant is fixed at
// construction.
type Registry struct {
	noop    bool
	config  Config
	current atomic.Pointer[Observation]
}

// NOOP is the shared inert registry. Registrations on its config are
// accepted but never stored, enablement checks always answer false, and the
// current observation is permanently the shared NoOp. Instrumented code can
// use it unchanged when instrumentation must be fully disabled at zero cost.
var NOOP = &Registry{noop: true, config: Config{noop: true}}

// NewRegistry creates an empty real registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// IsNoOp reports whether r is the NOOP singleton. Identity, not
// configuration: an empty real registry is not no-op.
func (r *Registry) IsNoOp() bool {
	return r == NOOP
}

// Config returns the registry's configuration. The same instance is returned
// on every call for the registry's lifetime.
func (r *Registry) Config() *Config {
	return &r.config
}

// Current returns the observation most recently set current, or nil if none
// is set. On NOOP it is always the shared NoOp observation.
//
// The slot is a plain shared value with no scoping: no ordering is promised
// between SetCurrent on one goroutine and Current on another. Callers wanting
// goroutine- or task-local semantics must confine the registry or supply
// their own propagation.
func (r *Registry) Current() Observation {
	if r.noop {
		return NoOp
	}
	p := r.current.Load()
	if p == nil {
		return nil
	}
	return *p
}

// SetCurrent overwrites the current-observation slot. Passing nil clears it.
// Callers managing scopes must save and restore the previous value
// themselves; the registry keeps no stack. On NOOP this does nothing.
func (r *Registry) SetCurrent(obs Observation) {
	if r.noop {
		return
	}
	if obs == nil {
		r.current.Store(nil)
		return
	}
	r.current.Store(&obs)
}
