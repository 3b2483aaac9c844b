package observation

// NoOp is the shared inert observation. Every lifecycle call is discarded;
// chaining methods return NoOp itself.
var NoOp Observation = noopObservation{}

var noopContext = &Context{}

type noopObservation struct{}

func (noopObservation) Start() Observation { return NoOp }

func (noopObservation) Stop() {}

func (noopObservation) Error(error) {}

func (noopObservation) ContextualName(string) Observation { return NoOp }

func (noopObservation) Tag(string, string) Observation { return NoOp }

func (noopObservation) Context() *Context { return noopContext }

func (noopObservation) OpenScope() Scope { return noopScope{} }

type noopScope struct{}

func (noopScope) Close() {}

// NoOpHandler discards all lifecycle events with zero overhead.
type NoOpHandler struct{}

func (NoOpHandler) OnStart(*Context) {}
func (NoOpHandler) OnStop(*Context)  {}
func (NoOpHandler) OnError(*Context) {}
