// Package observability provides production-grade observability features
// for uritemplate: structured logging, metrics, and distributed tracing.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger adds template context to a logger.
// Returns a new logger with a template field.
//
// Example:
//
//	enriched := EnrichLogger(logger, "/users/{user}")
//	enriched.Info("resolving") // includes template
func EnrichLogger(logger *slog.Logger, template string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.String("template", template),
	)
}

// LogExpandComplete logs a successful template expansion.
func LogExpandComplete(logger *slog.Logger, uri string, durationUs float64) {
	if logger == nil {
		return
	}
	logger.Debug("template expanded",
		slog.String("uri", uri),
		slog.Float64("duration_us", durationUs),
	)
}

// LogExpandError logs an expansion failure.
func LogExpandError(logger *slog.Logger, err error) {
	if logger == nil {
		return
	}
	logger.Error("template expansion failed",
		slog.String("error", err.Error()),
	)
}

// LogExtractComplete logs a URI that matched the template.
func LogExtractComplete(logger *slog.Logger, uri string, varCount int, durationUs float64) {
	if logger == nil {
		return
	}
	logger.Debug("uri matched template",
		slog.String("uri", uri),
		slog.Int("variables", varCount),
		slog.Float64("duration_us", durationUs),
	)
}

// LogExtractMiss logs a URI that did not match the template (non-fatal).
func LogExtractMiss(logger *slog.Logger, uri string) {
	if logger == nil {
		return
	}
	logger.Debug("uri did not match template",
		slog.String("uri", uri),
	)
}

// LogExtractError logs an extraction failure other than a simple miss.
func LogExtractError(logger *slog.Logger, uri string, err error) {
	if logger == nil {
		return
	}
	logger.Error("extraction failed",
		slog.String("uri", uri),
		slog.String("error", err.Error()),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time in microseconds.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	durationUs := done()
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Microseconds())
	}
}
