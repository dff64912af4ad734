package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/assignment-schedule-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/assignment-schedule-service/internal/platform/logging"
)

var errPanic = errors.New("handler panicked")

// Recovery turns a handler panic into a 500 problem response and an error
// log with the stack. When the handler already started its response only
// the log is written. http.ErrAbortHandler is passed through so net/http
// can drop the connection quietly.
//
// The log goes to the request's logger when one is set further in, falling
// back to logger.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := newStatusRecorder(w)
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}

				ctx := r.Context()
				l := logger
				if scoped := logging.FromContext(ctx); scoped != slog.Default() {
					l = scoped
				}
				l.ErrorContext(ctx, "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				)

				span := trace.SpanFromContext(ctx)
				span.SetStatus(codes.Error, "panic")

				if !rec.wrote {
					dto.WriteErrorResponse(rec, r, fmt.Errorf("%w: %v", errPanic, v))
				}
			}()

			next.ServeHTTP(rec, r)
		})
	}
}
