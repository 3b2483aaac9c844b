package observation

// MultiHandler fans lifecycle events out to multiple handlers in order.
type MultiHandler struct {
	handlers []Handler
}

// NewMultiHandler creates a MultiHandler that forwards events to all
// non-nil handlers.
func NewMultiHandler(handlers ...Handler) *MultiHandler {
	filtered := make([]Handler, 0, len(handlers))
	for _, h := range handlers {
		if h != nil {
			filtered = append(filtered, h)
		}
	}
	return &MultiHandler{handlers: filtered}
}

func (m *MultiHandler) OnStart(c *Context) {
	for _, h := range m.handlers {
		h.OnStart(c)
	}
}

func (m *MultiHandler) OnStop(c *Context) {
	for _, h := range m.handlers {
		h.OnStop(c)
	}
}

func (m *MultiHandler) OnError(c *Context) {
	for _, h := range m.handlers {
		h.OnError(c)
	}
}
