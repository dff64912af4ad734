// Package telemetry sets up OpenTelemetry tracing and metrics. Development
// profiles print to stdout; deployed profiles ship OTLP over HTTP.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"

	"github.com/jsamuelsen11/assignment-schedule-service/internal/platform/config"
)

// Exporter names accepted in telemetry.exporter.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

// Metric attribute keys.
var (
	AttrHTTPMethod  = attribute.Key("http.method")
	AttrHTTPStatus  = attribute.Key("http.status_code")
	AttrHTTPRoute   = attribute.Key("http.route")
	AttrPeerService = attribute.Key("peer.service")
	AttrResult      = attribute.Key("result")
	AttrLevel       = attribute.Key("schedule.level")
	AttrErrorKind   = attribute.Key("schedule.error_kind")
	AttrOperation   = attribute.Key("schedule.bulk_operation")
	AttrOutcome     = attribute.Key("schedule.outcome")
)

var (
	ErrUnsupportedExporter = errors.New("unsupported exporter")
	ErrMissingEndpoint     = errors.New("otlp exporter requires an endpoint")
)

// Providers owns the SDK providers installed by Setup. A disabled setup has
// nil providers and nil Metrics, which every recorder treats as a no-op.
type Providers struct {
	Tracer  *sdktrace.TracerProvider
	Meter   *sdkmetric.MeterProvider
	Metrics *Metrics
}

// Setup builds both providers from cfg, installs them as the otel globals
// along with W3C trace-context and baggage propagation, and registers the
// service instruments.
func Setup(ctx context.Context, cfg config.TelemetryConfig) (*Providers, error) {
	if !cfg.Enabled {
		return &Providers{}, nil
	}

	exp, err := newExporters(ctx, cfg.Exporter, cfg.Endpoint)
	if err != nil {
		return nil, err
	}

	res, err := resource.Merge(resource.Default(),
		resource.NewWithAttributes(semconv.SchemaURL, semconv.ServiceName(cfg.ServiceName)))
	if err != nil {
		return nil, fmt.Errorf("building resource: %w", err)
	}

	p := &Providers{
		Tracer: sdktrace.NewTracerProvider(sdktrace.WithBatcher(exp.spans), sdktrace.WithResource(res)),
		Meter: sdkmetric.NewMeterProvider(
			sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp.metrics)),
			sdkmetric.WithResource(res),
		),
	}
	if p.Metrics, err = NewMetrics(p.Meter, cfg.ServiceName); err != nil {
		return nil, errors.Join(err, p.Shutdown(ctx))
	}

	otel.SetTracerProvider(p.Tracer)
	otel.SetMeterProvider(p.Meter)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return p, nil
}

// Shutdown flushes and stops whatever providers were created.
func (p *Providers) Shutdown(ctx context.Context) error {
	var errs []error
	if p.Tracer != nil {
		if err := p.Tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer: %w", err))
		}
	}
	if p.Meter != nil {
		if err := p.Meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter: %w", err))
		}
	}
	return errors.Join(errs...)
}

type exporters struct {
	spans   sdktrace.SpanExporter
	metrics sdkmetric.Exporter
}

func newExporters(ctx context.Context, kind, endpoint string) (exporters, error) {
	var (
		exp exporters
		err error
	)
	switch kind {
	case ExporterStdout:
		if exp.spans, err = stdouttrace.New(stdouttrace.WithPrettyPrint()); err != nil {
			return exp, fmt.Errorf("stdout span exporter: %w", err)
		}
		if exp.metrics, err = stdoutmetric.New(); err != nil {
			return exp, fmt.Errorf("stdout metric exporter: %w", err)
		}
	case ExporterOTLP:
		host, insecure, perr := collector(endpoint)
		if perr != nil {
			return exp, perr
		}
		traceOpts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(host)}
		metricOpts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(host)}
		if insecure {
			traceOpts = append(traceOpts, otlptracehttp.WithInsecure())
			metricOpts = append(metricOpts, otlpmetrichttp.WithInsecure())
		}
		if exp.spans, err = otlptracehttp.New(ctx, traceOpts...); err != nil {
			return exp, fmt.Errorf("otlp span exporter: %w", err)
		}
		if exp.metrics, err = otlpmetrichttp.New(ctx, metricOpts...); err != nil {
			return exp, fmt.Errorf("otlp metric exporter: %w", err)
		}
	default:
		return exp, fmt.Errorf("%w: %q", ErrUnsupportedExporter, kind)
	}
	return exp, nil
}

// collector splits an OTLP endpoint such as "http://otel-collector:4318"
// into host:port and whether TLS is off. A bare host:port is taken as plain
// HTTP.
func collector(endpoint string) (host string, insecure bool, err error) {
	if endpoint == "" {
		return "", false, ErrMissingEndpoint
	}
	u, perr := url.Parse(endpoint)
	if perr != nil || u.Host == "" {
		return endpoint, true, nil
	}
	return u.Host, u.Scheme != "https", nil
}
