package httpclient

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/assignment-schedule-service/internal/platform/telemetry"
)

const tracerName = "github.com/jsamuelsen11/assignment-schedule-service/internal/platform/httpclient"

type idKey string

const (
	requestIDKey     idKey = "X-Request-ID"
	correlationIDKey idKey = "X-Correlation-ID"
)

// WithRequestID makes outbound calls on ctx send id as X-Request-ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// WithCorrelationID makes outbound calls on ctx send id as X-Correlation-ID.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey, id)
}

// propagate copies the inbound IDs onto req. The key doubles as the header.
func propagate(ctx context.Context, req *http.Request) {
	for _, key := range [...]idKey{requestIDKey, correlationIDKey} {
		if id, _ := ctx.Value(key).(string); id != "" {
			req.Header.Set(string(key), id)
		}
	}
}

// startSpan opens the client span for req and injects its trace context
// into the outbound headers.
func (c *Client) startSpan(ctx context.Context, req *http.Request) (context.Context, trace.Span) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "HTTP "+req.Method+" "+c.serviceName,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("peer.service", c.serviceName),
			attribute.String("http.method", req.Method),
			attribute.String("http.url", req.URL.Redacted()),
		),
	)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))
	return ctx, span
}

func endSpan(span trace.Span, resp *http.Response, err error) {
	if resp != nil {
		span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	}
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// outcome labels a finished call for the client metrics. Breaker rejections
// are circuit_open so they stay visible next to real failures.
func outcome(resp *http.Response, err error) string {
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return "circuit_open"
	case err != nil, resp == nil, resp.StatusCode >= http.StatusBadRequest:
		return "error"
	default:
		return "success"
	}
}

// record measures the call from outside the breaker.
func (c *Client) record(ctx context.Context, method string, began time.Time, resp *http.Response, err error) {
	if c.metrics == nil {
		return
	}

	var status int
	if resp != nil {
		status = resp.StatusCode
	}
	set := metric.WithAttributes(
		telemetry.AttrPeerService.String(c.serviceName),
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrResult.String(outcome(resp, err)),
	)
	c.metrics.ClientRequestTotal.Add(ctx, 1, set)
	c.metrics.ClientRequestDuration.Record(ctx, time.Since(began).Seconds(), set)
}
