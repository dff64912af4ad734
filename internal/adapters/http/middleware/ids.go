package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/assignment-schedule-service/internal/platform/httpclient"
)

const (
	headerRequestID     = "X-Request-ID"
	headerCorrelationID = "X-Correlation-ID"

	// maxIncomingIDLen bounds caller-supplied IDs.
	maxIncomingIDLen = 128
)

type idKey int

const (
	requestIDKey idKey = iota
	correlationIDKey
)

// WithRequestID stores id on ctx for handlers and for outbound platform calls.
func WithRequestID(ctx context.Context, id string) context.Context {
	return httpclient.WithRequestID(context.WithValue(ctx, requestIDKey, id), id)
}

// RequestIDFromContext returns the request ID, or "" outside a request.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithCorrelationID stores id on ctx for handlers and for outbound platform
// calls.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return httpclient.WithCorrelationID(context.WithValue(ctx, correlationIDKey, id), id)
}

// CorrelationIDFromContext returns the correlation ID, or "" outside a request.
func CorrelationIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey).(string)
	return id
}

// RequestID reuses a well-formed X-Request-ID or mints a UUID v4, then echoes
// it on the response.
func RequestID() func(http.Handler) http.Handler {
	return identify(headerRequestID, WithRequestID, func(*http.Request) string {
		return uuid.NewString()
	})
}

// CorrelationID reuses a well-formed X-Correlation-ID so a schedule form keeps
// one ID across its evaluate and save calls. Without one it falls back to
// the request ID, so it must be installed after RequestID.
func CorrelationID() func(http.Handler) http.Handler {
	return identify(headerCorrelationID, WithCorrelationID, func(r *http.Request) string {
		return RequestIDFromContext(r.Context())
	})
}

func identify(
	header string,
	store func(context.Context, string) context.Context,
	fallback func(*http.Request) string,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(header)
			if !validIncomingID(id) {
				id = fallback(r)
			}
			w.Header().Set(header, id)
			next.ServeHTTP(w, r.WithContext(store(r.Context(), id)))
		})
	}
}

// validIncomingID accepts 1 to maxIncomingIDLen bytes of visible ASCII, which
// is safe to echo in a header and to log.
func validIncomingID(id string) bool {
	if id == "" || len(id) > maxIncomingIDLen {
		return false
	}
	for _, c := range []byte(id) {
		if c <= ' ' || c > '~' {
			return false
		}
	}
	return true
}
