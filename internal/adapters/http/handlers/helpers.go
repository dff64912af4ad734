package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/assignment-schedule-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/assignment-schedule-service/internal/domain"
	"github.com/jsamuelsen11/assignment-schedule-service/internal/platform/logging"
)

const (
	msgInvalidInteger = "must be a valid integer"
	msgInvalidJSON    = "invalid JSON"
	msgBodyTooLarge   = "exceeds 1 MiB"

	maxBodyBytes = 1 << 20
)

func positiveID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	return id, err == nil && id > 0
}

// parseID reads a required positive integer path parameter.
func parseID(r *http.Request, param string) (int64, error) {
	id, ok := positiveID(chi.URLParam(r, param))
	if !ok {
		return 0, dto.InPath(&domain.ValidationError{Fields: map[string]string{param: msgInvalidInteger}})
	}
	return id, nil
}

// queryIDs reads optional positive integer query parameters; absent ones are
// left out of the result. All malformed parameters are reported together.
func queryIDs(r *http.Request, names ...string) (map[string]int64, error) {
	q := r.URL.Query()
	ids := make(map[string]int64, len(names))
	bad := make(map[string]string)

	for _, name := range names {
		raw := q.Get(name)
		if raw == "" {
			continue
		}
		if id, ok := positiveID(raw); ok {
			ids[name] = id
		} else {
			bad[name] = msgInvalidInteger
		}
	}

	if len(bad) > 0 {
		return nil, dto.InQuery(&domain.ValidationError{Fields: bad})
	}
	return ids, nil
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "encoding response", slog.Any("error", err))
	}
}

type validatable interface {
	Validate() error
}

// decodeAndValidate reads at most 1 MiB of JSON into dst and validates it.
// On failure the problem response is already written and it returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst)
	if err != nil {
		msg := msgInvalidJSON
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			msg = msgBodyTooLarge
		}
		dto.WriteErrorResponse(w, r, &domain.ValidationError{Fields: map[string]string{"body": msg}})
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
