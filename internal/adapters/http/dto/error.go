package dto

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"

	"github.com/jsamuelsen11/assignment-schedule-service/internal/domain"
	"github.com/jsamuelsen11/assignment-schedule-service/internal/platform/logging"
)

// ErrorResponse is an RFC 9457 problem document.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail is one invalid input. Location is "<source>.<field>" where
// source is body, query or path.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

const (
	sourceBody  = "body"
	sourceQuery = "query"
	sourcePath  = "path"
)

// ErrMethodNotAllowed marks a request whose route exists under other methods.
var ErrMethodNotAllowed = errors.New("method not allowed")

// internalDetail replaces the detail of 500 responses.
const internalDetail = "an unexpected error occurred"

// sourcedError records which part of the request a validation error's
// fields refer to.
type sourcedError struct {
	source string
	err    error
}

func (e *sourcedError) Error() string { return e.err.Error() }
func (e *sourcedError) Unwrap() error { return e.err }

// InQuery marks err's validation fields as query parameters.
func InQuery(err error) error { return withSource(sourceQuery, err) }

// InPath marks err's validation fields as path parameters.
func InPath(err error) error { return withSource(sourcePath, err) }

func withSource(source string, err error) error {
	if err == nil {
		return nil
	}
	return &sourcedError{source: source, err: err}
}

// NewErrorResponse maps err onto a problem document for r. Validation
// fields are listed in Errors sorted by location; they are located in the
// body unless err was tagged with InQuery or InPath.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status := statusFor(err)

	resp := ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   err.Error(),
		Instance: r.RequestURI,
	}
	if status == http.StatusInternalServerError {
		resp.Detail = internalDetail
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		source := sourceBody
		var sourced *sourcedError
		if errors.As(err, &sourced) {
			source = sourced.source
		}
		resp.Errors = fieldDetails(source, verr.Fields)
	}

	return resp
}

// WriteErrorResponse writes err as application/problem+json. Server-side
// failures are logged with the request's logger before the masked response
// goes out.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)
	logger := logging.FromContext(r.Context())

	if resp.Status >= http.StatusInternalServerError {
		logger.ErrorContext(r.Context(), "request failed",
			slog.Int("status", resp.Status),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
	}

	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(resp.Status)
	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		logger.ErrorContext(r.Context(), "failed to encode error response", slog.Any("error", encErr))
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrMethodNotAllowed):
		return http.StatusMethodNotAllowed
	case errors.Is(err, domain.ErrUnavailable):
		return http.StatusBadGateway
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func fieldDetails(source string, fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		details = append(details, ErrorDetail{Location: source + "." + field, Message: msg})
	}
	slices.SortFunc(details, func(a, b ErrorDetail) int { return cmp.Compare(a.Location, b.Location) })
	return details
}
