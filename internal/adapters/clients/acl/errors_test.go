package acl

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/assignment-schedule-service/internal/domain"
)

func platformResponse(code int, contentType, body string) *http.Response {
	h := http.Header{}
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	return &http.Response{StatusCode: code, Header: h, Body: io.NopCloser(strings.NewReader(body))}
}

func TestTranslateHTTPError_Classes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code int
		want error
	}{
		{http.StatusNotFound, domain.ErrNotFound},
		{http.StatusBadRequest, domain.ErrValidation},
		{http.StatusUnprocessableEntity, domain.ErrValidation},
		{http.StatusConflict, domain.ErrConflict},
		{http.StatusUnauthorized, domain.ErrForbidden},
		{http.StatusForbidden, domain.ErrForbidden},
		{http.StatusTooManyRequests, domain.ErrUnavailable},
		{http.StatusInternalServerError, domain.ErrUnavailable},
		{http.StatusBadGateway, domain.ErrUnavailable},
		{http.StatusServiceUnavailable, domain.ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.code), func(t *testing.T) {
			t.Parallel()

			err := TranslateHTTPError(&http.Response{StatusCode: tt.code, Header: http.Header{}, Body: http.NoBody})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestTranslateHTTPError_Detail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		resp *http.Response
		want string
	}{
		{
			name: "problem detail",
			resp: platformResponse(http.StatusNotFound, "application/problem+json",
				`{"title":"Not Found","status":404,"detail":"sub-project 10 not found"}`),
			want: "sub-project 10 not found",
		},
		{
			name: "problem with charset",
			resp: platformResponse(http.StatusConflict, "application/problem+json; charset=utf-8",
				`{"detail":"range changed concurrently"}`),
			want: "range changed concurrently",
		},
		{
			name: "plain text ignored",
			resp: platformResponse(http.StatusNotFound, "text/plain", "nope"),
			want: "Not Found",
		},
		{
			name: "broken problem",
			resp: platformResponse(http.StatusConflict, "application/problem+json", `{"detail":`),
			want: "Conflict",
		},
		{
			name: "nil body",
			resp: &http.Response{StatusCode: http.StatusNotFound, Header: http.Header{"Content-Type": {"application/problem+json"}}},
			want: "Not Found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.ErrorContains(t, TranslateHTTPError(tt.resp), tt.want)
		})
	}
}

func TestTranslateHTTPError_FieldErrors(t *testing.T) {
	t.Parallel()

	resp := platformResponse(http.StatusUnprocessableEntity, "application/problem+json", `{
		"detail": "validation failed",
		"errors": [
			{"location": "body.companyId", "message": "is required"},
			{"location": "body.endDate", "message": "must be after startDate"},
			{"location": "body.level", "message": "invalid"}
		]
	}`)

	var verr *domain.ValidationError
	require.ErrorAs(t, TranslateHTTPError(resp), &verr)
	assert.Equal(t, map[string]string{
		"company_id": "is required",
		"end_date":   "must be after startDate",
		"level":      "invalid",
	}, verr.Fields)
}

func TestTranslateHTTPError_UnexpectedStatus(t *testing.T) {
	t.Parallel()

	err := TranslateHTTPError(&http.Response{StatusCode: http.StatusTeapot, Header: http.Header{}, Body: http.NoBody})

	assert.ErrorContains(t, err, "418")
	for _, class := range []error{domain.ErrNotFound, domain.ErrValidation, domain.ErrConflict, domain.ErrForbidden, domain.ErrUnavailable} {
		assert.NotErrorIs(t, err, class)
	}
}

func TestTranslateTransport(t *testing.T) {
	t.Parallel()

	refused := errors.New("dial tcp 10.0.0.4:8081: connection refused")

	tests := []struct {
		name    string
		err     error
		want    []error
		notWant error
	}{
		{"canceled", context.Canceled, []error{context.Canceled}, domain.ErrUnavailable},
		{"deadline", context.DeadlineExceeded, []error{context.DeadlineExceeded}, domain.ErrUnavailable},
		{"breaker open", gobreaker.ErrOpenState, []error{domain.ErrUnavailable, gobreaker.ErrOpenState}, nil},
		{"half-open full", gobreaker.ErrTooManyRequests, []error{domain.ErrUnavailable, gobreaker.ErrTooManyRequests}, nil},
		{"network", refused, []error{domain.ErrUnavailable, refused}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := translateTransport(tt.err)
			for _, want := range tt.want {
				assert.ErrorIs(t, got, want)
			}
			if tt.notWant != nil {
				assert.NotErrorIs(t, got, tt.notWant)
			}
		})
	}
}
