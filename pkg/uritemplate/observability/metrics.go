package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records template operation metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordExpand records a template expansion with its duration and error status.
	RecordExpand(ctx context.Context, duration time.Duration, err error)

	// RecordExtract records an extraction attempt and whether the URI matched.
	RecordExtract(ctx context.Context, duration time.Duration, matched bool)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	expandCount    metric.Int64Counter
	expandLatency  metric.Float64Histogram
	expandErrors   metric.Int64Counter
	extractCount   metric.Int64Counter
	extractLatency metric.Float64Histogram
	extractMisses  metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("uritemplate")

	expandCount, err := meter.Int64Counter("uritemplate.expand.count",
		metric.WithDescription("Number of template expansions"),
	)
	if err != nil {
		return nil, err
	}

	expandLatency, err := meter.Float64Histogram("uritemplate.expand.latency_us",
		metric.WithDescription("Template expansion latency in microseconds"),
		metric.WithUnit("us"),
	)
	if err != nil {
		return nil, err
	}

	expandErrors, err := meter.Int64Counter("uritemplate.expand.errors",
		metric.WithDescription("Number of failed expansions"),
	)
	if err != nil {
		return nil, err
	}

	extractCount, err := meter.Int64Counter("uritemplate.extract.count",
		metric.WithDescription("Number of extraction attempts"),
	)
	if err != nil {
		return nil, err
	}

	extractLatency, err := meter.Float64Histogram("uritemplate.extract.latency_us",
		metric.WithDescription("Extraction latency in microseconds"),
		metric.WithUnit("us"),
	)
	if err != nil {
		return nil, err
	}

	extractMisses, err := meter.Int64Counter("uritemplate.extract.misses",
		metric.WithDescription("Number of extraction attempts that did not match"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		expandCount:    expandCount,
		expandLatency:  expandLatency,
		expandErrors:   expandErrors,
		extractCount:   extractCount,
		extractLatency: extractLatency,
		extractMisses:  extractMisses,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordExpand records a template expansion.
func (m *otelMetrics) RecordExpand(ctx context.Context, duration time.Duration, err error) {
	attrs := []attribute.KeyValue{
		attribute.Bool("success", err == nil),
	}

	m.expandCount.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.expandLatency.Record(ctx, float64(duration.Microseconds()), metric.WithAttributes(attrs...))

	if err != nil {
		m.expandErrors.Add(ctx, 1)
	}
}

// RecordExtract records an extraction attempt.
func (m *otelMetrics) RecordExtract(ctx context.Context, duration time.Duration, matched bool) {
	attrs := []attribute.KeyValue{
		attribute.Bool("matched", matched),
	}

	m.extractCount.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.extractLatency.Record(ctx, float64(duration.Microseconds()), metric.WithAttributes(attrs...))

	if !matched {
		m.extractMisses.Add(ctx, 1)
	}
}
