package observability

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/randalmurphal/uritemplate/pkg/uritemplate"
)

// Instrumented wraps a Template with structured logging, metrics, and tracing.
// All instruments default to no-ops; enable them with options.
//
// Example:
//
//	tmpl := uritemplate.New("/users/{user}")
//	inst := observability.Instrument(tmpl,
//	    observability.WithLogger(logger),
//	    observability.WithMetrics(observability.NewMetricsRecorder()),
//	    observability.WithSpans(observability.NewSpanManager()),
//	)
//	uri, err := inst.Expand(ctx, vars)
type Instrumented struct {
	tmpl    uritemplate.Template
	logger  *slog.Logger
	metrics MetricsRecorder
	spans   SpanManager
}

// InstrumentOption configures an Instrumented template.
type InstrumentOption func(*Instrumented)

// WithLogger sets the logger. The logger is enriched with the template
// string, so every record carries a template field.
func WithLogger(logger *slog.Logger) InstrumentOption {
	return func(in *Instrumented) {
		in.logger = logger
	}
}

// WithMetrics sets the metrics recorder.
func WithMetrics(m MetricsRecorder) InstrumentOption {
	return func(in *Instrumented) {
		in.metrics = m
	}
}

// WithSpans sets the span manager.
func WithSpans(sm SpanManager) InstrumentOption {
	return func(in *Instrumented) {
		in.spans = sm
	}
}

// Instrument wraps a template with the given observability options.
func Instrument(tmpl uritemplate.Template, opts ...InstrumentOption) *Instrumented {
	in := &Instrumented{
		tmpl:    tmpl,
		metrics: NoopMetrics{},
		spans:   NoopSpanManager{},
	}
	for _, opt := range opts {
		opt(in)
	}
	in.logger = EnrichLogger(in.logger, tmpl.String())
	return in
}

// Template returns the wrapped template.
func (in *Instrumented) Template() uritemplate.Template {
	return in.tmpl
}

// Expand expands the template with metrics, tracing, and logging around it.
func (in *Instrumented) Expand(ctx context.Context, vars uritemplate.Values) (string, error) {
	ctx, span := in.spans.StartExpandSpan(ctx, in.tmpl.String())

	start := time.Now()
	uri, err := in.tmpl.Expand(vars)
	duration := time.Since(start)

	in.metrics.RecordExpand(ctx, duration, err)
	in.spans.EndSpanWithError(span, err)

	if err != nil {
		LogExpandError(in.logger, err)
		return uri, err
	}
	LogExpandComplete(in.logger, uri, float64(duration.Microseconds()))
	return uri, nil
}

// Extract matches a URI against the template with metrics, tracing, and
// logging around it. A URI that does not match is an expected outcome:
// it is recorded as a miss, not a span failure.
func (in *Instrumented) Extract(ctx context.Context, uri string) (map[string]string, error) {
	ctx, span := in.spans.StartExtractSpan(ctx, in.tmpl.String())

	start := time.Now()
	vars, err := in.tmpl.Extract(uri)
	duration := time.Since(start)

	in.metrics.RecordExtract(ctx, duration, err == nil)

	switch {
	case err == nil:
		in.spans.AddSpanEvent(ctx, "variables_extracted",
			attribute.Int("count", len(vars)),
		)
		in.spans.EndSpanWithError(span, nil)
		LogExtractComplete(in.logger, uri, len(vars), float64(duration.Microseconds()))
	case errors.Is(err, uritemplate.ErrNoMatch):
		in.spans.EndSpanWithError(span, nil)
		LogExtractMiss(in.logger, uri)
	default:
		in.spans.EndSpanWithError(span, err)
		LogExtractError(in.logger, uri, err)
	}

	return vars, err
}
