// Package observe provides observability primitives for the support bot:
// OpenTelemetry metrics, tracing helpers, and trace-aware structured logging.
//
// Metrics are recorded through the OpenTelemetry Metrics API. A Prometheus
// exporter bridge is available via [InitProvider] so that metrics can be
// scraped via the standard /metrics endpoint. A package-level default
// [Metrics] instance ([DefaultMetrics]) is provided for convenience; tests
// should use [NewMetrics] with a custom [metric.MeterProvider] to avoid
// cross-test pollution.
package observe

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// meterName is the instrumentation scope name used for all bot metrics.
const meterName = "github.com/ashikjoy21/abc-customer-care"

// Metrics holds all OpenTelemetry metric instruments for the bot core.
// All fields are safe for concurrent use — the underlying OTel types handle
// their own synchronisation.
type Metrics struct {
	// --- Latency histograms per pipeline stage ---

	// NormalizeDuration tracks transcript normalization latency.
	NormalizeDuration metric.Float64Histogram

	// EnhanceDuration tracks transcript enhancement latency.
	EnhanceDuration metric.Float64Histogram

	// ClassifyDuration tracks issue classification latency.
	ClassifyDuration metric.Float64Histogram

	// PrioritizeDuration tracks step prioritization latency.
	PrioritizeDuration metric.Float64Histogram

	// --- Counters ---

	// SilenceDrops counts utterances rejected as silence artifacts.
	SilenceDrops metric.Int64Counter

	// FilteredUtterances counts utterances that had denylisted tokens removed.
	FilteredUtterances metric.Int64Counter

	// Classifications counts classification calls. Use with attributes:
	//   attribute.String("issue", ...), attribute.Bool("used_history", ...)
	Classifications metric.Int64Counter

	// StepOutcomes counts reported step outcomes. Use with attributes:
	//   attribute.String("step", ...), attribute.String("status", ...)
	StepOutcomes metric.Int64Counter

	// Escalations counts escalated calls. Use with attribute:
	//   attribute.String("reason", ...)
	Escalations metric.Int64Counter

	// --- Gauges ---

	// ActiveCalls tracks the number of in-flight support calls.
	ActiveCalls metric.Int64UpDownCounter
}

// latencyBuckets defines histogram bucket boundaries (in seconds). The
// pipeline stages are pure in-memory text processing, so the buckets sit well
// below typical network latencies.
var latencyBuckets = []float64{
	0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5,
}

// NewMetrics creates a fully initialised [Metrics] struct using the given
// [metric.MeterProvider]. Returns an error if any instrument creation fails.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	// Histograms.
	if met.NormalizeDuration, err = m.Float64Histogram("abc.normalize.duration",
		metric.WithDescription("Latency of transcript normalization."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}
	if met.EnhanceDuration, err = m.Float64Histogram("abc.enhance.duration",
		metric.WithDescription("Latency of transcript enhancement."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}
	if met.ClassifyDuration, err = m.Float64Histogram("abc.classify.duration",
		metric.WithDescription("Latency of issue classification."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}
	if met.PrioritizeDuration, err = m.Float64Histogram("abc.prioritize.duration",
		metric.WithDescription("Latency of step prioritization."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}

	// Counters.
	if met.SilenceDrops, err = m.Int64Counter("abc.normalize.silence_drops",
		metric.WithDescription("Total utterances rejected as silence artifacts."),
	); err != nil {
		return nil, err
	}
	if met.FilteredUtterances, err = m.Int64Counter("abc.normalize.filtered",
		metric.WithDescription("Total utterances with denylisted tokens removed."),
	); err != nil {
		return nil, err
	}
	if met.Classifications, err = m.Int64Counter("abc.classify.results",
		metric.WithDescription("Total classifications by issue and history usage."),
	); err != nil {
		return nil, err
	}
	if met.StepOutcomes, err = m.Int64Counter("abc.steps.outcomes",
		metric.WithDescription("Total reported step outcomes by step and status."),
	); err != nil {
		return nil, err
	}
	if met.Escalations, err = m.Int64Counter("abc.escalations",
		metric.WithDescription("Total escalated calls by reason."),
	); err != nil {
		return nil, err
	}

	// Gauges (UpDownCounters).
	if met.ActiveCalls, err = m.Int64UpDownCounter("abc.active_calls",
		metric.WithDescription("Number of in-flight support calls."),
	); err != nil {
		return nil, err
	}

	return met, nil
}

// defaultMetrics is the lazily-initialised package-level Metrics instance.
var (
	defaultMetrics     *Metrics
	defaultMetricsOnce sync.Once
)

// DefaultMetrics returns the package-level [Metrics] instance, creating it on
// first call using [otel.GetMeterProvider]. Subsequent calls return the same
// pointer. Panics if instrument creation fails (should not happen with the
// global provider).
func DefaultMetrics() *Metrics {
	defaultMetricsOnce.Do(func() {
		var err error
		defaultMetrics, err = NewMetrics(otel.GetMeterProvider())
		if err != nil {
			panic("observe: failed to create default metrics: " + err.Error())
		}
	})
	return defaultMetrics
}

// Attr is a convenience alias for [attribute.String] to reduce verbosity at
// call sites.
func Attr(key, value string) attribute.KeyValue {
	return attribute.String(key, value)
}

// RecordClassification records one classification result with the standard
// attribute set.
func (m *Metrics) RecordClassification(ctx context.Context, issue string, usedHistory bool) {
	m.Classifications.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("issue", issue),
			attribute.Bool("used_history", usedHistory),
		),
	)
}

// RecordStepOutcome records one reported step outcome.
func (m *Metrics) RecordStepOutcome(ctx context.Context, stepID string, succeeded bool) {
	status := "failed"
	if succeeded {
		status = "succeeded"
	}
	m.StepOutcomes.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("step", stepID),
			attribute.String("status", status),
		),
	)
}

// RecordEscalation records one escalated call.
func (m *Metrics) RecordEscalation(ctx context.Context, reason string) {
	m.Escalations.Add(ctx, 1,
		metric.WithAttributes(attribute.String("reason", reason)),
	)
}
