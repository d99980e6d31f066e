package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Tracer is the uritemplate tracer instance.
// Uses the global OTel tracer provider.
var tracer = otel.Tracer("uritemplate")

// SpanManager handles trace span lifecycle.
// Use NewSpanManager() for OTel tracing or NoopSpanManager{} when disabled.
type SpanManager interface {
	// StartExpandSpan starts a span for a template expansion.
	// Returns the context with span and the span itself.
	StartExpandSpan(ctx context.Context, template string) (context.Context, trace.Span)

	// StartExtractSpan starts a span for a URI extraction.
	StartExtractSpan(ctx context.Context, template string) (context.Context, trace.Span)

	// EndSpanWithError completes a span, optionally recording an error.
	EndSpanWithError(span trace.Span, err error)

	// AddSpanEvent adds an event to the current span in context.
	AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue)
}

// otelSpanManager implements SpanManager using OpenTelemetry.
type otelSpanManager struct{}

// NewSpanManager returns a SpanManager that uses OpenTelemetry.
//
// The span manager uses the global OTel tracer provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetTracerProvider(yourProvider)
func NewSpanManager() SpanManager {
	return &otelSpanManager{}
}

// StartExpandSpan starts a span for a template expansion.
func (m *otelSpanManager) StartExpandSpan(ctx context.Context, template string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "uritemplate.expand",
		trace.WithAttributes(
			attribute.String("template", template),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// StartExtractSpan starts a span for a URI extraction.
func (m *otelSpanManager) StartExtractSpan(ctx context.Context, template string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "uritemplate.extract",
		trace.WithAttributes(
			attribute.String("template", template),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSpanWithError completes a span, optionally recording an error.
func (m *otelSpanManager) EndSpanWithError(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// AddSpanEvent adds an event to the current span.
func (m *otelSpanManager) AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	span := trace.SpanFromContext(ctx)
	if span == nil || !span.IsRecording() {
		return
	}
	span.AddEvent(name, trace.WithAttributes(attrs...))
}

// Convenience functions that operate on the global tracer.
// These are useful for simple cases where you don't need the interface.

// StartExpandSpan starts a span for a template expansion.
// Uses the global OTel tracer.
func StartExpandSpan(ctx context.Context, template string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "uritemplate.expand",
		trace.WithAttributes(
			attribute.String("template", template),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// StartExtractSpan starts a span for a URI extraction.
// Uses the global OTel tracer.
func StartExtractSpan(ctx context.Context, template string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "uritemplate.extract",
		trace.WithAttributes(
			attribute.String("template", template),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSpanWithError completes a span, optionally recording an error.
func EndSpanWithError(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// AddSpanEvent adds an event to the current span in context.
func AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	span := trace.SpanFromContext(ctx)
	if span == nil || !span.IsRecording() {
		return
	}
	span.AddEvent(name, trace.WithAttributes(attrs...))
}
