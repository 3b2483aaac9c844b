package observation

import (
	"context"
	"log/slog"
)

// SlogHandler emits observation lifecycle events to a slog.Logger. Start and
// stop log at debug and info respectively, errors at error level. Tags are
// flattened as top-level slog attributes.
type SlogHandler struct {
	logger *slog.Logger
}

// NewSlogHandler creates a SlogHandler that emits to the given logger.
func NewSlogHandler(logger *slog.Logger) *SlogHandler {
	return &SlogHandler{logger: logger}
}

func (h *SlogHandler) OnStart(c *Context) {
	h.logger.LogAttrs(context.Background(), slog.LevelDebug, "observation.start", h.attrs(c)...)
}

func (h *SlogHandler) OnStop(c *Context) {
	attrs := append(h.attrs(c), slog.Duration("duration", c.Duration))
	h.logger.LogAttrs(context.Background(), slog.LevelInfo, "observation.stop", attrs...)
}

func (h *SlogHandler) OnError(c *Context) {
	attrs := append(h.attrs(c), slog.Any("error", c.Err))
	h.logger.LogAttrs(context.Background(), slog.LevelError, "observation.error", attrs...)
}

func (h *SlogHandler) attrs(c *Context) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(c.Tags)+2)
	attrs = append(attrs, slog.String("id", c.ID), slog.String("name", c.Name))
	if c.ContextualName != "" {
		attrs = append(attrs, slog.String("contextual_name", c.ContextualName))
	}
	for _, t := range c.Tags {
		attrs = append(attrs, slog.String(t.Key, t.Value))
	}
	return attrs
}
