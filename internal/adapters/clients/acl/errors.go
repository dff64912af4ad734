// Package acl is the anti-corruption layer in front of the platform API.
// Resource translators live in subpackages (acl/project, acl/company,
// acl/dates); the client, request plumbing and error mapping live here.
package acl

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/sony/gobreaker/v2"

	"github.com/jsamuelsen11/assignment-schedule-service/internal/domain"
)

// maxProblemBytes caps how much of an error body is read.
const maxProblemBytes = 64 << 10

// problem is the subset of an RFC 9457 document the platform sends.
type problem struct {
	Detail string `json:"detail"`
	Errors []struct {
		Location string `json:"location"`
		Message  string `json:"message"`
	} `json:"errors"`
}

// platformFields renames the platform's camelCase fields to ours.
var platformFields = map[string]string{
	"companyId": "company_id",
	"startDate": "start_date",
	"endDate":   "end_date",
}

// TranslateHTTPError turns a non-success platform response into a domain
// error. A problem+json body supplies the detail text, and on 400 or 422
// its field list becomes a *domain.ValidationError.
func TranslateHTTPError(resp *http.Response) error {
	p := readProblem(resp)
	detail := cmp.Or(p.Detail, http.StatusText(resp.StatusCode))

	code := resp.StatusCode
	if (code == http.StatusBadRequest || code == http.StatusUnprocessableEntity) && len(p.Errors) > 0 {
		fields := make(map[string]string, len(p.Errors))
		for _, e := range p.Errors {
			name := strings.TrimPrefix(e.Location, "body.")
			fields[cmp.Or(platformFields[name], name)] = e.Message
		}
		return &domain.ValidationError{Fields: fields}
	}

	class := classify(code)
	if class == nil {
		return fmt.Errorf("platform answered unexpected status %d: %s", code, detail)
	}
	return fmt.Errorf("%s: %w", detail, class)
}

func classify(code int) error {
	switch code {
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return domain.ErrValidation
	case http.StatusConflict:
		return domain.ErrConflict
	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.ErrForbidden
	case http.StatusTooManyRequests:
		return domain.ErrUnavailable
	}
	if code >= http.StatusInternalServerError {
		return domain.ErrUnavailable
	}
	return nil
}

// translateTransport classifies a failure that produced no usable response.
// Caller cancellation and deadlines keep their identity; everything else,
// including an open breaker, means the platform is unavailable.
func translateTransport(err error) error {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return fmt.Errorf("platform circuit open: %w: %w", domain.ErrUnavailable, err)
	default:
		return fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
	}
}

func readProblem(resp *http.Response) problem {
	var p problem
	if resp.Body == nil {
		return p
	}
	mt, _, _ := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if mt != "application/problem+json" {
		return p
	}
	_ = json.NewDecoder(io.LimitReader(resp.Body, maxProblemBytes)).Decode(&p)
	return p
}

