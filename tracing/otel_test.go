package tracing_test

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/tailored-agentic-units/observation/observation"
	"github.com/tailored-agentic-units/observation/tracing"
)

func newTraced(t *testing.T) (*observation.Registry, *tracetest.InMemoryExporter) {
	t.Helper()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	reg := observation.NewRegistry()
	reg.Config().ObservationHandler(tracing.NewOTelHandler(tp))
	return reg, exporter
}

func TestOTelHandler_SpanPerObservation(t *testing.T) {
	reg, exporter := newTraced(t)

	obs := observation.New("db.query", reg).ContextualName("SELECT users").Tag("db.system", "postgres")
	obs.Start()
	obs.Stop()

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("exported %d spans, want 1", len(spans))
	}

	span := spans[0]
	if span.Name != "SELECT users" {
		t.Errorf("span name = %q, want contextual name", span.Name)
	}

	attrs := make(map[string]string, len(span.Attributes))
	for _, kv := range span.Attributes {
		attrs[string(kv.Key)] = kv.Value.AsString()
	}
	if attrs["db.system"] != "postgres" {
		t.Errorf("span attributes = %v, want db.system=postgres", attrs)
	}
	if attrs["observation.id"] == "" {
		t.Error("span is missing the observation.id attribute")
	}
}

func TestOTelHandler_ErrorRecorded(t *testing.T) {
	reg, exporter := newTraced(t)

	obs := observation.Start("op", reg)
	obs.Error(errors.New("boom"))
	obs.Stop()

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("exported %d spans, want 1", len(spans))
	}

	span := spans[0]
	if span.Status.Code != codes.Error {
		t.Errorf("span status = %v, want Error", span.Status.Code)
	}
	if len(span.Events) == 0 {
		t.Error("span has no events, want a recorded error")
	}
}

func TestOTelHandler_NameFallsBackToTechnicalName(t *testing.T) {
	reg, exporter := newTraced(t)

	observation.Start("plain", reg).Stop()

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("exported %d spans, want 1", len(spans))
	}
	if spans[0].Name != "plain" {
		t.Errorf("span name = %q, want technical name fallback", spans[0].Name)
	}
}
