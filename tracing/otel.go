// Package tracing bridges observations to OpenTelemetry spans. One span is
// opened per observation: observation tags become span attributes, reported
// errors are recorded on the span, and Stop ends it.
package tracing

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tailored-agentic-units/observation/observation"
)

const scopeName = "github.com/tailored-agentic-units/observation/tracing"

// spanKey indexes the open span in the observation's Data scratch space.
const spanKey = "tracing.span"

// OTelHandler maps observation lifecycles to OpenTelemetry spans.
type OTelHandler struct {
	tracer trace.Tracer
}

// NewOTelHandler creates a handler that starts spans from the given provider.
func NewOTelHandler(tp trace.TracerProvider) *OTelHandler {
	return &OTelHandler{tracer: tp.Tracer(scopeName)}
}

func (h *OTelHandler) OnStart(c *observation.Context) {
	name := c.ContextualName
	if name == "" {
		name = c.Name
	}
	_, span := h.tracer.Start(context.Background(), name)
	span.SetAttributes(attribute.String("observation.id", c.ID))
	if c.Data == nil {
		c.Data = make(map[string]any)
	}
	c.Data[spanKey] = span
}

func (h *OTelHandler) OnStop(c *observation.Context) {
	span, ok := c.Data[spanKey].(trace.Span)
	if !ok {
		return
	}
	for _, t := range c.Tags {
		span.SetAttributes(attribute.String(t.Key, t.Value))
	}
	span.End()
}

func (h *OTelHandler) OnError(c *observation.Context) {
	span, ok := c.Data[spanKey].(trace.Span)
	if !ok {
		return
	}
	span.RecordError(c.Err)
	span.SetStatus(codes.Error, c.Err.Error())
}
