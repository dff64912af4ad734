package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/assignment-schedule-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/assignment-schedule-service/internal/platform/logging"
)

// records decodes JSON log lines, keyed by message.
func records(t *testing.T, buf *bytes.Buffer) map[string]map[string]any {
	t.Helper()

	out := map[string]map[string]any{}
	dec := json.NewDecoder(buf)
	for dec.More() {
		var rec map[string]any
		require.NoError(t, dec.Decode(&rec))
		out[rec["msg"].(string)] = rec
	}
	return out
}

func jsonLogger(buf *bytes.Buffer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: level}))
}

func TestLogging_Completion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		method    string
		target    string
		status    int
		body      string
		wantLevel string
	}{
		{"evaluated", http.MethodPost, "/api/v1/schedule/evaluate", http.StatusOK, `{"valid":true}`, "INFO"},
		{"rejected", http.MethodPut, "/api/v1/projects/1/schedule", http.StatusBadRequest, `{}`, "WARN"},
		{"unknown project", http.MethodGet, "/api/v1/projects/404/schedule", http.StatusNotFound, "", "WARN"},
		{"platform down", http.MethodGet, "/api/v1/projects/1/schedule", http.StatusBadGateway, "", "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			h := middleware.Logging(jsonLogger(&buf, slog.LevelInfo))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(tt.method, tt.target, http.NoBody))

			logs := records(t, &buf)
			assert.NotContains(t, logs, "request started", "start is logged at debug only")

			done := logs["request completed"]
			require.NotNil(t, done)
			assert.Equal(t, tt.wantLevel, done["level"])
			assert.Equal(t, tt.method, done["method"])
			assert.Equal(t, tt.target, done["path"])
			assert.EqualValues(t, tt.status, done["status"])
			assert.EqualValues(t, len(tt.body), done["bytes"])
			assert.Contains(t, done, "duration")
		})
	}
}

func TestLogging_RequestLoggerCarriesIDs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	tr := newTracing(t)
	h := middleware.Chain(
		middleware.RequestID(),
		middleware.CorrelationID(),
		middleware.OpenTelemetry(nil, tr.opts...),
		middleware.Logging(jsonLogger(&buf, slog.LevelInfo)),
	)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		logging.FromContext(r.Context()).InfoContext(r.Context(), "fetching project range")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects/1/schedule", http.NoBody)
	req.Header.Set("X-Request-ID", "req-7f3a")
	req.Header.Set("X-Correlation-ID", "corr-19bd")
	h.ServeHTTP(httptest.NewRecorder(), req)

	span := tr.only(t)
	logs := records(t, &buf)
	for _, msg := range []string{"fetching project range", "request completed"} {
		rec := logs[msg]
		require.NotNil(t, rec, msg)
		assert.Equal(t, "req-7f3a", rec["request_id"], msg)
		assert.Equal(t, "corr-19bd", rec["correlation_id"], msg)
		assert.Equal(t, span.SpanContext.TraceID().String(), rec["trace_id"], msg)
		assert.Equal(t, span.SpanContext.SpanID().String(), rec["span_id"], msg)
	}
}

func TestLogging_NoTraceWithoutSpan(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := middleware.Logging(jsonLogger(&buf, slog.LevelInfo))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health/live", http.NoBody))

	done := records(t, &buf)["request completed"]
	require.NotNil(t, done)
	assert.NotContains(t, done, "trace_id")
	assert.Equal(t, "", done["request_id"])
}

func TestLogging_DebugStartRedactsHeaders(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := middleware.Logging(jsonLogger(&buf, slog.LevelDebug))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/projects/1/schedule/bulk", http.NoBody)
	req.Header.Set("Authorization", "Bearer eyJhbGciOi")
	req.Header.Set("Accept", "application/json")
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.NotContains(t, buf.String(), "eyJhbGciOi")

	started := records(t, &buf)["request started"]
	require.NotNil(t, started)
	assert.Equal(t, map[string]any{
		"Accept":        "application/json",
		"Authorization": "[REDACTED]",
	}, started["headers"])
}
