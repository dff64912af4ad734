// Package httpclient is the outbound HTTP client used to reach the platform
// API. Every call passes through a circuit breaker, an optional rate limiter,
// header propagation, a client span and a retry loop, in that order:
//
//	Breaker → Limiter → Propagation → Span → Retry → net/http
//
// Construction:
//
//	client := httpclient.New(&cfg.Client, "platform-api", metrics, logger)
//
// The inbound request and correlation IDs reach outbound calls through the
// context:
//
//	ctx = httpclient.WithRequestID(ctx, "req-123")
//	ctx = httpclient.WithCorrelationID(ctx, "corr-456")
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/assignment-schedule-service/internal/platform/config"
	"github.com/jsamuelsen11/assignment-schedule-service/internal/platform/telemetry"
)

// StatusError is returned by Do when every attempt ended in a retryable
// status. The last response is returned alongside it with its body open.
type StatusError struct {
	Service    string
	StatusCode int
	Attempts   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s answered HTTP %d after %d attempt(s)", e.Service, e.StatusCode, e.Attempts)
}

// Client calls one downstream service. It is safe for concurrent use.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	serviceName string
	breaker     *gobreaker.CircuitBreaker[*http.Response]
	limiter     *rate.Limiter // nil disables limiting
	retry       retryPolicy
	metrics     *telemetry.Metrics
}

// New builds a Client for serviceName from cfg. metrics may be nil.
func New(cfg *config.ClientConfig, serviceName string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	maxFailures := cfg.CircuitBreaker.MaxFailures

	breaker := gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        serviceName,
		MaxRequests: clampUint32(cfg.CircuitBreaker.HalfOpenLimit),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= maxFailures
		},
		// Caller cancellation does not count against the downstream.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	var limiter *rate.Limiter
	if rl := cfg.RateLimit; rl.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(rl.RequestsPerSecond), max(rl.BurstSize, 1))
	}

	return &Client{
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		baseURL:     cfg.BaseURL,
		serviceName: serviceName,
		breaker:     breaker,
		limiter:     limiter,
		retry:       newRetryPolicy(cfg.Retry),
		metrics:     metrics,
	}
}

// Do sends req. A non-nil response always has an open body the caller must
// close; that includes the *StatusError case. Breaker rejections, rate limit
// waits that hit the deadline and transport failures return a nil response.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, fmt.Errorf("%s rate limit: %w", c.serviceName, err)
			}
		}

		propagate(ctx, req)

		spanCtx, span := c.startSpan(ctx, req)
		defer span.End()

		resp, err := c.send(spanCtx, req.WithContext(spanCtx))
		endSpan(span, resp, err)
		return resp, err
	})
	c.record(ctx, req.Method, start, resp, err)

	return resp, err
}

// BaseURL is the configured root of the downstream API.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Name identifies the downstream in health reports (e.g., "platform-api").
func (c *Client) Name() string {
	return c.serviceName
}

// HealthCheck maps the circuit breaker state to a health result without a
// network call. Closed is healthy. Half-open reports degraded and open
// reports failing.
func (c *Client) HealthCheck(_ context.Context) error {
	switch state := c.breaker.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", c.serviceName)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", c.serviceName)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", c.serviceName, state)
	}
}

func clampUint32(v int) uint32 {
	switch {
	case v <= 0:
		return 0
	case v > math.MaxUint32:
		return math.MaxUint32
	default:
		return uint32(v)
	}
}
