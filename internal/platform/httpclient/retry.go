package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/jsamuelsen11/assignment-schedule-service/internal/platform/config"
	"github.com/jsamuelsen11/assignment-schedule-service/internal/platform/logging"
)

// jitter spreads each delay over ±25% of its nominal value.
const jitter = 0.25

// retryPolicy decides whether and when an attempt is repeated. Only
// idempotent methods are retried; a range write is a PUT, so replaying it
// cannot apply a date twice.
type retryPolicy struct {
	attempts   int
	initial    time.Duration
	ceiling    time.Duration
	multiplier float64
}

func newRetryPolicy(cfg config.RetryConfig) retryPolicy {
	return retryPolicy{
		attempts:   max(cfg.MaxAttempts, 1),
		initial:    cfg.InitialInterval,
		ceiling:    cfg.MaxInterval,
		multiplier: cfg.Multiplier,
	}
}

// attemptsFor is the number of tries a request with the given method gets.
func (p retryPolicy) attemptsFor(method string) int {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodPut, http.MethodDelete:
		return p.attempts
	default:
		return 1
	}
}

// delay is the wait before retry n (1 is the first retry). A Retry-After
// header in seconds wins over the computed backoff but never exceeds the
// ceiling.
func (p retryPolicy) delay(n int, resp *http.Response) time.Duration {
	if d, ok := retryAfter(resp); ok {
		return min(d, p.ceiling)
	}

	d := float64(p.initial) * math.Pow(p.multiplier, float64(n-1))
	d = math.Min(d, float64(p.ceiling))
	d += d * jitter * (2*rand.Float64() - 1)
	return time.Duration(max(d, 0))
}

func retryAfter(resp *http.Response) (time.Duration, bool) {
	if resp == nil {
		return 0, false
	}
	secs, err := strconv.Atoi(resp.Header.Get("Retry-After"))
	if err != nil || secs < 0 {
		return 0, false
	}
	return time.Duration(secs) * time.Second, true
}

// retryableStatus reports statuses worth another attempt: throttling and
// server errors other than 501.
func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests ||
		(code >= http.StatusInternalServerError && code != http.StatusNotImplemented)
}

// retryableErr reports transport errors worth another attempt. The caller
// canceling or running out of time is final.
func retryableErr(err error) bool {
	return err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// send runs the retry loop. The request body is buffered once and replayed
// on every attempt.
func (c *Client) send(ctx context.Context, req *http.Request) (*http.Response, error) {
	payload, err := snapshotBody(req)
	if err != nil {
		return nil, err
	}

	attempts := c.retry.attemptsFor(req.Method)
	var (
		resp    *http.Response
		lastErr error
	)
	for n := range attempts {
		if n > 0 {
			if err := c.pause(ctx, req, n, attempts, resp, lastErr); err != nil {
				return nil, err
			}
			discard(resp)
			resp = nil
		}

		if payload != nil {
			req.Body = io.NopCloser(bytes.NewReader(payload))
			req.ContentLength = int64(len(payload))
		}

		resp, lastErr = c.httpClient.Do(req)
		switch {
		case lastErr != nil:
			resp = nil
			if !retryableErr(lastErr) {
				return nil, lastErr
			}
		case !retryableStatus(resp.StatusCode):
			return resp, nil
		default:
			lastErr = &StatusError{Service: c.serviceName, StatusCode: resp.StatusCode, Attempts: n + 1}
		}
	}

	return resp, lastErr
}

// pause logs the upcoming retry and sleeps for its delay.
func (c *Client) pause(ctx context.Context, req *http.Request, n, attempts int, resp *http.Response, lastErr error) error {
	wait := c.retry.delay(n, resp)

	logging.FromContext(ctx).WarnContext(ctx, "retrying platform request",
		slog.String("operation", "httpclient.Do"),
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.String("peer_service", c.serviceName),
		slog.Int("attempt", n+1),
		slog.Int("max_attempts", attempts),
		slog.Duration("backoff", wait),
		slog.Any("error", lastErr),
	)

	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		discard(resp)
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func snapshotBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}
	defer func() { _ = req.Body.Close() }()

	b, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("buffering %s body: %w", req.Method, err)
	}
	return b, nil
}

// discard drains and closes resp so the connection can be reused.
func discard(resp *http.Response) {
	if resp == nil {
		return
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
