package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"slices"

	"github.com/jsamuelsen11/assignment-schedule-service/internal/platform/httpclient"
)

// Requester owns the request lifecycle shared by ACL clients: building the
// request, JSON encoding, execution through httpclient.Client, status
// checks, error translation and JSON decoding.
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewRequester creates a Requester backed by the given HTTP client and logger.
func NewRequester(client *httpclient.Client, logger *slog.Logger) *Requester {
	return &Requester{client: client, logger: logger}
}

// Do sends method to path relative to the client's base URL.
//
// reqBody is JSON encoded when non-nil. The response status must be one of
// wantStatus (200 when none given); any other status goes through
// TranslateHTTPError. respBody, when non-nil, receives the decoded body. An
// empty body leaves respBody untouched.
func (r *Requester) Do(ctx context.Context, method, path string, reqBody, respBody any, wantStatus ...int) error {
	if len(wantStatus) == 0 {
		wantStatus = []int{http.StatusOK}
	}

	var body io.Reader = http.NoBody
	if reqBody != nil {
		b, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("marshaling %s body for %s: %w", method, path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.client.BaseURL()+path, body)
	if err != nil {
		return fmt.Errorf("creating %s request for %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return r.execute(req, wantStatus, respBody)
}

// BaseURL returns the base URL from the underlying HTTP client.
func (r *Requester) BaseURL() string {
	return r.client.BaseURL()
}

func (r *Requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}

// execute sends req, checks the status and decodes the body. resp.Body is
// always closed.
func (r *Requester) execute(req *http.Request, wantStatus []int, respBody any) error {
	ctx := req.Context()

	resp, err := r.client.Do(ctx, req)
	if err != nil {
		// Retries exhausted on a retryable status still hand back the
		// response; translate it instead of surfacing the retry error.
		if resp != nil {
			defer r.closeBody(ctx, resp)
			if !slices.Contains(wantStatus, resp.StatusCode) {
				return TranslateHTTPError(resp)
			}
		}
		r.logger.ErrorContext(ctx, "platform request failed",
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, translateTransport(err))
	}
	defer r.closeBody(ctx, resp)

	if !slices.Contains(wantStatus, resp.StatusCode) {
		translateErr := TranslateHTTPError(resp)
		level := slog.LevelDebug
		if resp.StatusCode >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		r.logger.Log(ctx, level, "unexpected platform status",
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.Int("status", resp.StatusCode),
			slog.Any("want_status", wantStatus),
		)
		return translateErr
	}

	if respBody == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(respBody); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decoding response from %s %s: %w", req.Method, req.URL.Path, err)
	}
	return nil
}
