package observation

import (
	"time"

	"github.com/google/uuid"
)

// New creates a not-started observation for the given technical name. When
// the registry is nil, is NOOP, or any registered predicate rejects the name,
// the shared NoOp is returned instead and the caller pays nothing further.
// Otherwise the observation is wired to the handler and tags-provider
// snapshots current at this moment; collaborators registered later do not
// see it.
func New(name string, reg *Registry) Observation {
	return NewContext(name, nil, reg)
}

// NewContext is New with a caller-supplied context, for callers that want to
// pre-populate tags or data before the enablement check. ctx may be nil.
func NewContext(name string, ctx *Context, reg *Registry) Observation {
	if reg == nil || reg.IsNoOp() {
		return NoOp
	}
	if !reg.Config().IsObservationEnabled(name, ctx) {
		return NoOp
	}
	if ctx == nil {
		ctx = &Context{}
	}
	ctx.ID = uuid.Must(uuid.NewV7()).String()
	ctx.Name = name
	if ctx.Data == nil {
		ctx.Data = make(map[string]any)
	}
	return &simpleObservation{
		ctx:       ctx,
		registry:  reg,
		handlers:  reg.Config().Handlers(),
		providers: reg.Config().TagsProviders(),
	}
}

// Start is shorthand for New(name, reg).Start().
func Start(name string, reg *Registry) Observation {
	return New(name, reg).Start()
}

type simpleObservation struct {
	ctx       *Context
	registry  *Registry
	handlers  []Handler
	providers []TagsProvider
}

func (o *simpleObservation) Start() Observation {
	o.ctx.Started = time.Now()
	for _, tp := range o.providers {
		o.ctx.Tags = append(o.ctx.Tags, tp.Tags(o.ctx)...)
	}
	for _, h := range o.handlers {
		h.OnStart(o.ctx)
	}
	return o
}

func (o *simpleObservation) Stop() {
	if !o.ctx.Started.IsZero() {
		o.ctx.Duration = time.Since(o.ctx.Started)
	}
	for _, h := range o.handlers {
		h.OnStop(o.ctx)
	}
}

func (o *simpleObservation) Error(err error) {
	o.ctx.Err = err
	for _, h := range o.handlers {
		h.OnError(o.ctx)
	}
}

func (o *simpleObservation) ContextualName(name string) Observation {
	o.ctx.ContextualName = name
	return o
}

func (o *simpleObservation) Tag(key, value string) Observation {
	o.ctx.Tags = append(o.ctx.Tags, Tag{Key: key, Value: value})
	return o
}

func (o *simpleObservation) Context() *Context {
	return o.ctx
}

// OpenScope marks the observation current on its registry. The returned
// scope restores whatever was current before; nesting works as long as
// scopes close in reverse order.
func (o *simpleObservation) OpenScope() Scope {
	prev := o.registry.Current()
	o.registry.SetCurrent(o)
	return &scope{registry: o.registry, previous: prev}
}

type scope struct {
	registry *Registry
	previous Observation
}

func (s *scope) Close() {
	s.registry.SetCurrent(s.previous)
}
