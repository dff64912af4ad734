package dto_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/assignment-schedule-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/assignment-schedule-service/internal/domain"
	"github.com/jsamuelsen11/assignment-schedule-service/internal/domain/schedule"
	"github.com/jsamuelsen11/assignment-schedule-service/internal/platform/logging"
)

func TestNewErrorResponse_Status(t *testing.T) {
	t.Parallel()

	sub, err := schedule.ParseRange("2024-02-01", "")
	require.NoError(t, err)
	rangeErr := schedule.Validate(schedule.DateRange{}, sub, schedule.DateRange{}).Err(schedule.LevelSubProject)
	require.Error(t, rangeErr)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", domain.ErrNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("project 3: %w", domain.ErrNotFound), http.StatusNotFound},
		{"validation", &domain.ValidationError{Fields: map[string]string{"company_id": "is required"}}, http.StatusBadRequest},
		{"hierarchy violation", rangeErr, http.StatusBadRequest},
		{"conflict", domain.ErrConflict, http.StatusConflict},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"platform down", fmt.Errorf("GET /api/v1/projects/3: %w", domain.ErrUnavailable), http.StatusBadGateway},
		{"deadline", context.DeadlineExceeded, http.StatusGatewayTimeout},
		{"tagged not found", dto.InQuery(domain.ErrNotFound), http.StatusNotFound},
		{"method", fmt.Errorf("DELETE /x: %w", dto.ErrMethodNotAllowed), http.StatusMethodNotAllowed},
		{"unknown", errors.New("oops"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/api/v1/projects/3/schedule", nil)
			got := dto.NewErrorResponse(req, tt.err)

			assert.Equal(t, tt.want, got.Status)
			assert.Equal(t, http.StatusText(tt.want), got.Title)
			assert.Equal(t, "about:blank", got.Type)
			assert.Equal(t, "/api/v1/projects/3/schedule", got.Instance)
		})
	}
}

func TestNewErrorResponse_Detail(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/x", nil)

	notFound := fmt.Errorf("sub-project 10: %w", domain.ErrNotFound)
	assert.Equal(t, notFound.Error(), dto.NewErrorResponse(req, notFound).Detail)

	internal := errors.New("dial tcp 10.0.0.4:8081: connection refused")
	assert.Equal(t, "an unexpected error occurred", dto.NewErrorResponse(req, internal).Detail)
}

func TestNewErrorResponse_Locations(t *testing.T) {
	t.Parallel()

	fields := map[string]string{
		"task_id":    "must be a valid integer",
		"company_id": "must be a valid integer",
	}

	tests := []struct {
		name string
		err  error
		want []dto.ErrorDetail
	}{
		{
			name: "body by default",
			err:  &domain.ValidationError{Fields: fields},
			want: []dto.ErrorDetail{
				{Location: "body.company_id", Message: "must be a valid integer"},
				{Location: "body.task_id", Message: "must be a valid integer"},
			},
		},
		{
			name: "query",
			err:  dto.InQuery(&domain.ValidationError{Fields: fields}),
			want: []dto.ErrorDetail{
				{Location: "query.company_id", Message: "must be a valid integer"},
				{Location: "query.task_id", Message: "must be a valid integer"},
			},
		},
		{
			name: "path through wrapping",
			err:  fmt.Errorf("parsing: %w", dto.InPath(&domain.ValidationError{Fields: map[string]string{"projectId": "must be a valid integer"}})),
			want: []dto.ErrorDetail{{Location: "path.projectId", Message: "must be a valid integer"}},
		},
		{
			name: "non-validation has none",
			err:  dto.InQuery(domain.ErrConflict),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := dto.NewErrorResponse(httptest.NewRequest(http.MethodGet, "/x", nil), tt.err)
			if diff := cmp.Diff(tt.want, got.Errors); diff != "" {
				t.Errorf("Errors mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWithSource_Nil(t *testing.T) {
	t.Parallel()

	assert.NoError(t, dto.InQuery(nil))
	assert.NoError(t, dto.InPath(nil))
}

func TestWriteErrorResponse(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/projects/3/schedule", nil)
	dto.WriteErrorResponse(rec, req, &domain.ValidationError{Fields: map[string]string{"sub_project": "start date must be on or before the end date"}})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, http.StatusBadRequest, body.Status)
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "body.sub_project", body.Errors[0].Location)
}

func TestWriteErrorResponse_LogsServerErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     error
		wantLog bool
	}{
		{"internal", errors.New("nil map write"), true},
		{"platform down", domain.ErrUnavailable, true},
		{"client error", domain.ErrNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, nil))
			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			req = req.WithContext(logging.WithLogger(req.Context(), logger))

			dto.WriteErrorResponse(httptest.NewRecorder(), req, tt.err)

			if tt.wantLog {
				assert.Contains(t, buf.String(), `"msg":"request failed"`)
				assert.Contains(t, buf.String(), tt.err.Error())
			} else {
				assert.Zero(t, buf.Len())
			}
		})
	}
}
