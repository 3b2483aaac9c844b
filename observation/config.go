package observation

import "sync/atomic"

// Config holds the collaborators registered on a Registry: handlers,
// enablement predicates, and tags providers. All three collections are
// append-only copy-on-write: each registration publishes a new backing slice
// atomically, so hot-path readers iterate a stable snapshot without locks
// and never observe a partial entry.
type Config struct {
	noop bool

	handlers   atomic.Pointer[[]Handler]
	predicates atomic.Pointer[[]Predicate]
	providers  atomic.Pointer[[]TagsProvider]
}

// appendCOW publishes old+[v] as a fresh slice. The CAS loop keeps concurrent
// registrations lock-free without dropping entries; readers holding the old
// snapshot are unaffected.
func appendCOW[T any](p *atomic.Pointer[[]T], v T) {
	for {
		old := p.Load()
		var prev []T
		if old != nil {
			prev = *old
		}
		next := make([]T, len(prev)+1)
		copy(next, prev)
		next[len(prev)] = v
		if p.CompareAndSwap(old, &next) {
			return
		}
	}
}

func snapshot[T any](p *atomic.Pointer[[]T]) []T {
	if s := p.Load(); s != nil {
		return *s
	}
	return nil
}

// ObservationHandler registers a handler. Duplicates are kept; registering
// the same handler twice yields two notifications per lifecycle event.
// Returns the config for chained registration.
func (c *Config) ObservationHandler(h Handler) *Config {
	if c.noop {
		return c
	}
	appendCOW(&c.handlers, h)
	return c
}

// ObservationPredicate registers an enablement predicate. Returns the config
// for chained registration.
func (c *Config) ObservationPredicate(p Predicate) *Config {
	if c.noop {
		return c
	}
	appendCOW(&c.predicates, p)
	return c
}

// TagsProvider registers a tags provider. Returns the config for chained
// registration.
func (c *Config) TagsProvider(tp TagsProvider) *Config {
	if c.noop {
		return c
	}
	appendCOW(&c.providers, tp)
	return c
}

// IsObservationEnabled reports whether an observation with the given name and
// context should be created. All registered predicates must agree, in
// registration order; with none registered the answer is true. ctx may be
// nil. A predicate panic propagates to the caller.
//
// On the NOOP registry's config this is always false.
func (c *Config) IsObservationEnabled(name string, ctx *Context) bool {
	if c.noop {
		return false
	}
	for _, p := range snapshot(&c.predicates) {
		if !p(name, ctx) {
			return false
		}
	}
	return true
}

// Handlers returns the current handler snapshot in registration order.
// The returned slice must not be mutated.
func (c *Config) Handlers() []Handler {
	return snapshot(&c.handlers)
}

// TagsProviders returns the current tags-provider snapshot in registration
// order. The returned slice must not be mutated.
func (c *Config) TagsProviders() []TagsProvider {
	return snapshot(&c.providers)
}
