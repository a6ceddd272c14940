package telemetry

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestSetupWithExporterRecordsSpans(t *testing.T) {
	ctx := context.Background()
	exporter := tracetest.NewInMemoryExporter()

	shutdown, err := SetupWithExporter(ctx, exporter)
	if err != nil {
		t.Fatalf("SetupWithExporter: %v", err)
	}
	defer shutdown(ctx)

	_, span := Tracer("test").Start(ctx, "unit")
	span.End()

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("recorded %d spans, want 1", len(spans))
	}
	if spans[0].Name != "unit" {
		t.Errorf("span name = %q, want unit", spans[0].Name)
	}
	if got := spans[0].InstrumentationScope.Name; got != "dungeonescape/test" {
		t.Errorf("scope = %q, want dungeonescape/test", got)
	}
}

func TestDisable(t *testing.T) {
	Disable()
	_, span := Tracer("test").Start(context.Background(), "noop")
	defer span.End()
	if span.SpanContext().IsValid() {
		t.Error("no-op tracer produced a valid span context")
	}
}
