package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/assignment-schedule-service/internal/platform/telemetry"
)

const tracerName = "github.com/jsamuelsen11/assignment-schedule-service/internal/adapters/http/middleware"

type otelSettings struct {
	provider   trace.TracerProvider
	propagator propagation.TextMapPropagator
}

// OTelOption overrides the otel globals OpenTelemetry uses by default.
type OTelOption func(*otelSettings)

// WithTracerProvider traces through tp instead of the global provider.
func WithTracerProvider(tp trace.TracerProvider) OTelOption {
	return func(s *otelSettings) { s.provider = tp }
}

// WithPropagator reads inbound trace context with p instead of the global
// propagator.
func WithPropagator(p propagation.TextMapPropagator) OTelOption {
	return func(s *otelSettings) { s.propagator = p }
}

// OpenTelemetry opens a server span per request, continuing any inbound W3C
// trace, and records the request duration and count on metrics (skipped
// when nil).
//
// Span names and metric labels use the chi route pattern once routing has
// matched, so every project's schedule shares one series. Requests that
// match nothing are labeled with their raw path.
func OpenTelemetry(metrics *telemetry.Metrics, opts ...OTelOption) func(http.Handler) http.Handler {
	s := otelSettings{}
	for _, opt := range opts {
		opt(&s)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			provider, propagator := s.provider, s.propagator
			if provider == nil {
				provider = otel.GetTracerProvider()
			}
			if propagator == nil {
				propagator = otel.GetTextMapPropagator()
			}

			ctx := propagator.Extract(r.Context(), propagation.HeaderCarrier(r.Header))
			ctx, span := provider.Tracer(tracerName).Start(ctx, "HTTP "+r.Method,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.method", r.Method),
					attribute.String("http.target", r.URL.Path),
				),
			)
			defer span.End()

			rec := newStatusRecorder(w)
			next.ServeHTTP(rec, r.WithContext(ctx))

			route := routePattern(r)
			span.SetName("HTTP " + r.Method + " " + route)
			span.SetAttributes(
				telemetry.AttrHTTPRoute.String(route),
				attribute.Int("http.status_code", rec.status),
				attribute.Int64("http.response_size", rec.size),
			)
			if rec.status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, strconv.Itoa(rec.status)+" "+http.StatusText(rec.status))
			}

			if metrics == nil {
				return
			}
			result := "success"
			if rec.status >= http.StatusBadRequest {
				result = "error"
			}
			attrs := metric.WithAttributes(
				telemetry.AttrHTTPMethod.String(r.Method),
				telemetry.AttrHTTPRoute.String(route),
				telemetry.AttrHTTPStatus.Int(rec.status),
				telemetry.AttrResult.String(result),
			)
			metrics.ServerRequestDuration.Record(ctx, time.Since(start).Seconds(), attrs)
			metrics.ServerRequestTotal.Add(ctx, 1, attrs)
		})
	}
}

// routePattern is the matched chi route, or the raw path.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return r.URL.Path
}
