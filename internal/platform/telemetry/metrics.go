package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/metric"
)

// Metrics holds the service's instruments. A nil *Metrics records nothing.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter

	// ValidationFailures counts range violations by level and kind.
	ValidationFailures metric.Int64Counter
	// BulkItems counts bulk writes by operation and outcome.
	BulkItems metric.Int64Counter
}

// NewMetrics registers every instrument on a meter named after the service.
func NewMetrics(mp metric.MeterProvider, serviceName string) (*Metrics, error) {
	meter := mp.Meter(serviceName)
	var m Metrics

	histograms := []struct {
		dst        *metric.Float64Histogram
		name, desc string
	}{
		{&m.ServerRequestDuration, "http.server.request.duration", "Duration of incoming HTTP requests"},
		{&m.ClientRequestDuration, "http.client.request.duration", "Duration of platform API calls"},
	}
	for _, h := range histograms {
		inst, err := meter.Float64Histogram(h.name, metric.WithDescription(h.desc), metric.WithUnit("s"))
		if err != nil {
			return nil, fmt.Errorf("creating %s: %w", h.name, err)
		}
		*h.dst = inst
	}

	counters := []struct {
		dst              *metric.Int64Counter
		name, desc, unit string
	}{
		{&m.ServerRequestTotal, "http.server.request.total", "Incoming HTTP requests", "{request}"},
		{&m.ClientRequestTotal, "http.client.request.total", "Platform API calls", "{request}"},
		{&m.ValidationFailures, "schedule.validation.failures", "Date range violations found while evaluating or saving schedules", "{violation}"},
		{&m.BulkItems, "schedule.bulk.items", "Entities touched by bulk schedule operations", "{item}"},
	}
	for _, c := range counters {
		inst, err := meter.Int64Counter(c.name, metric.WithDescription(c.desc), metric.WithUnit(c.unit))
		if err != nil {
			return nil, fmt.Errorf("creating %s: %w", c.name, err)
		}
		*c.dst = inst
	}

	return &m, nil
}

// RecordValidationFailure counts one violation.
func (m *Metrics) RecordValidationFailure(ctx context.Context, level, kind string) {
	if m == nil {
		return
	}
	m.ValidationFailures.Add(ctx, 1, metric.WithAttributes(AttrLevel.String(level), AttrErrorKind.String(kind)))
}

// RecordBulkItem counts one bulk write.
func (m *Metrics) RecordBulkItem(ctx context.Context, operation, outcome string) {
	if m == nil {
		return
	}
	m.BulkItems.Add(ctx, 1, metric.WithAttributes(AttrOperation.String(operation), AttrOutcome.String(outcome)))
}
