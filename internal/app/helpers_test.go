package app

import (
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/assignment-schedule-service/internal/domain/project"
	"github.com/jsamuelsen11/assignment-schedule-service/internal/domain/schedule"
	"github.com/jsamuelsen11/assignment-schedule-service/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func rng(t *testing.T, start, end string) schedule.DateRange {
	t.Helper()
	r, err := schedule.ParseRange(start, end)
	if err != nil {
		t.Fatalf("ParseRange(%q, %q) error = %v", start, end, err)
	}
	return r
}

func ref(level schedule.Level, id int64) schedule.Ref {
	return schedule.Ref{Level: level, EntityID: id, CompanyID: companyID}
}

const (
	projectID    int64 = 1
	subProjectID int64 = 10
	taskID       int64 = 100
	companyID    int64 = 7
)

// expectProject stubs the existence check every load performs.
func expectProject(client *mocks.MockPlatformClient) {
	client.EXPECT().GetProject(mock.Anything, projectID).
		Return(&project.Project{ID: projectID, Name: "Export Readiness"}, nil)
}

// fakeRecorder captures metric calls.
type fakeRecorder struct {
	mu         sync.Mutex
	violations []string
	bulk       map[string]int
}

func newFakeRecorder() *fakeRecorder {
	return &fakeRecorder{bulk: map[string]int{}}
}

func (r *fakeRecorder) RecordValidationFailure(_ context.Context, level, kind string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.violations = append(r.violations, level+"/"+kind)
}

func (r *fakeRecorder) RecordBulkItem(_ context.Context, _, outcome string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bulk[outcome]++
}

func (r *fakeRecorder) outcomes() map[string]int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]int, len(r.bulk))
	for k, v := range r.bulk {
		out[k] = v
	}
	return out
}
