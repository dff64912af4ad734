// Package middleware holds the inbound HTTP pipeline. cmd/server applies it
// in this order, outermost first:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → Timeout → AppContext → Handler
//
// Every middleware is a func(http.Handler) http.Handler; Chain composes them.
package middleware

import "net/http"

// statusRecorder remembers the status and body size a handler produced.
// Recovery, OpenTelemetry and Logging each wrap the writer with one.
type statusRecorder struct {
	http.ResponseWriter
	status int
	size   int64
	wrote  bool
}

func newStatusRecorder(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

// WriteHeader records the first status and ignores later calls.
func (rec *statusRecorder) WriteHeader(code int) {
	if rec.wrote {
		return
	}
	rec.status, rec.wrote = code, true
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *statusRecorder) Write(b []byte) (int, error) {
	rec.wrote = true
	n, err := rec.ResponseWriter.Write(b)
	rec.size += int64(n)
	return n, err
}

// Unwrap exposes the inner writer to http.ResponseController.
func (rec *statusRecorder) Unwrap() http.ResponseWriter {
	return rec.ResponseWriter
}
