package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/assignment-schedule-service/internal/platform/logging"
)

// Logging gives every request its own logger, reachable downstream through
// logging.FromContext, and logs one "request completed" line per request.
//
// The request logger carries request_id and correlation_id, plus trace_id
// and span_id when OpenTelemetry runs further out. The completion level
// follows the status: Error for 5xx, Warn for 4xx since rejected schedules
// are ordinary traffic, Info otherwise.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			began := time.Now()
			ctx := r.Context()

			reqLogger := logger.With(requestAttrs(r)...)
			ctx = logging.WithLogger(ctx, reqLogger)

			if reqLogger.Enabled(ctx, slog.LevelDebug) {
				reqLogger.DebugContext(ctx, "request started",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Attr{Key: "headers", Value: slog.GroupValue(RedactHeaders(r.Header)...)},
				)
			}

			rw := newStatusRecorder(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			reqLogger.LogAttrs(ctx, levelForStatus(rw.status), "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("route", routePattern(r)),
				slog.Int("status", rw.status),
				slog.Int64("bytes", rw.size),
				slog.Duration("duration", time.Since(began)),
			)
		})
	}
}

func requestAttrs(r *http.Request) []any {
	ctx := r.Context()
	attrs := []any{
		slog.String("request_id", RequestIDFromContext(ctx)),
		slog.String("correlation_id", CorrelationIDFromContext(ctx)),
	}
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		attrs = append(attrs,
			slog.String("trace_id", sc.TraceID().String()),
			slog.String("span_id", sc.SpanID().String()),
		)
	}
	return attrs
}

func levelForStatus(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
