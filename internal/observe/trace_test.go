package observe

import (
	"context"
	"testing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestCallID_NoSpan(t *testing.T) {
	if id := CallID(context.Background()); id != "" {
		t.Errorf("CallID without span = %q, want empty", id)
	}
}

func TestCallID_WithSpan(t *testing.T) {
	tp := sdktrace.NewTracerProvider()
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	ctx, span := tp.Tracer(tracerName).Start(context.Background(), "test")
	defer span.End()

	if id := CallID(ctx); id == "" {
		t.Error("CallID with active span is empty")
	}
}

func TestLogger_WithSpanAddsTraceAttrs(t *testing.T) {
	tp := sdktrace.NewTracerProvider()
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	ctx, span := tp.Tracer(tracerName).Start(context.Background(), "test")
	defer span.End()

	if l := Logger(ctx); l == nil {
		t.Fatal("Logger returned nil")
	}
	if l := Logger(context.Background()); l == nil {
		t.Fatal("Logger without span returned nil")
	}
}
