// Package observation provides the registry that gates and configures
// cross-cutting instrumentation. A Registry decides, per creation attempt,
// whether a real observation is materialized or the shared no-op stands in,
// and holds the handlers, predicates, and tags providers every materialized
// observation is wired to.
//
// Registration happens at any time without locking out readers; the
// enablement check and collaborator fan-out on the hot path read immutable
// copy-on-write snapshots and never block.
package observation

import "time"

// Tag is a single key-value pair describing an observation.
type Tag struct {
	Key   string
	Value string
}

// Context carries the state of one observation through its lifecycle.
// Handlers and tags providers receive the same *Context instance the
// observation owns; fields are not synchronized, so a context must only be
// mutated from the goroutine driving the observation.
type Context struct {
	// ID uniquely identifies the observation (UUIDv7).
	ID string

	// Name is the technical name the observation was created with.
	Name string

	// ContextualName is the human-readable name, set per instance
	// (e.g. an RPC procedure). Empty until set.
	ContextualName string

	// Tags accumulates instance tags and tags-provider contributions.
	Tags []Tag

	// Err holds the error reported via Observation.Error, if any.
	Err error

	// Started and Duration bracket the observation's lifetime. Started is
	// set by Start, Duration by Stop.
	Started  time.Time
	Duration time.Duration

	// Data is scratch space for handlers that need to carry state between
	// lifecycle callbacks (e.g. an open trace span).
	Data map[string]any
}

// Observation is one unit of instrumented work. Implementations are either
// real (wired to the registry's handlers) or the shared NoOp.
type Observation interface {
	// Start begins the observation: tags providers contribute their tags,
	// then handlers receive OnStart. Returns the observation for chaining.
	Start() Observation
	// Stop ends the observation and fans out OnStop.
	Stop()
	// Error records err on the context and fans out OnError.
	Error(err error)
	// ContextualName sets the human-readable name. Returns the observation
	// for chaining.
	ContextualName(name string) Observation
	// Tag appends an instance tag. Returns the observation for chaining.
	Tag(key, value string) Observation
	// Context returns the observation's context.
	Context() *Context
	// OpenScope marks the observation current on its registry until the
	// returned Scope is closed.
	OpenScope() Scope
}

// Scope restores the previously current observation when closed. Scopes must
// be closed in reverse order of opening on any one registry.
type Scope interface {
	Close()
}

// Handler is notified about an observation's lifecycle. Handlers attached to
// an observation are the snapshot taken at creation time; handlers registered
// later see only later observations.
//
// A panic in a handler propagates to the caller driving the lifecycle.
// Handlers wanting isolation must recover internally.
type Handler interface {
	OnStart(c *Context)
	OnStop(c *Context)
	OnError(c *Context)
}

// Predicate decides whether an observation with the given technical name and
// context should be enabled. ctx may be nil. Predicates are assumed
// side-effect-free; evaluation order and count are not part of the contract.
type Predicate func(name string, ctx *Context) bool

// TagsProvider contributes tags to every observation created through a
// registry. Providers run when the observation starts.
type TagsProvider interface {
	Tags(c *Context) []Tag
}
