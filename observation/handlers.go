package observation

import (
	"fmt"
	"log/slog"
	"sync"
)

var (
	namedHandlers = map[string]Handler{
		"noop": NoOpHandler{},
		"slog": NewSlogHandler(slog.Default()),
	}
	namedMutex sync.RWMutex
)

// GetHandler returns a registered handler by name. This enables
// configuration-driven handler selection: configurations can refer to
// handlers as strings resolved at runtime.
// Pre-registered handlers: "noop" (NoOpHandler) and "slog" (default logger).
func GetHandler(name string) (Handler, error) {
	namedMutex.RLock()
	defer namedMutex.RUnlock()

	h, exists := namedHandlers[name]
	if !exists {
		return nil, fmt.Errorf("unknown handler: %s", name)
	}
	return h, nil
}

// RegisterHandler adds or replaces a named handler in the global registry.
func RegisterHandler(name string, handler Handler) {
	namedMutex.Lock()
	defer namedMutex.Unlock()

	namedHandlers[name] = handler
}
