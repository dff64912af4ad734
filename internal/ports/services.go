package ports

import (
	"context"

	"github.com/jsamuelsen11/assignment-schedule-service/internal/domain/company"
	"github.com/jsamuelsen11/assignment-schedule-service/internal/domain/schedule"
)

// ScheduleService is the service port for company date assignments.
// Implemented by the application layer; called by inbound adapters.
type ScheduleService interface {
	// ListCompanies returns the companies that can be assigned to a project.
	// Returns domain.ErrNotFound if the project does not exist.
	ListCompanies(ctx context.Context, projectID int64) ([]company.Company, error)

	// GetSchedule loads the stored ranges of the selected levels and
	// evaluates them.
	// Returns domain.ErrValidation if the key is malformed.
	GetSchedule(ctx context.Context, key schedule.Key) (*Schedule, error)

	// EvaluateSchedule derives validation, picker constraints and bulk
	// flags for a candidate hierarchy. It performs no I/O.
	EvaluateSchedule(ctx context.Context, h schedule.Hierarchy) schedule.Evaluation

	// SaveSchedule persists the given levels of h, parent first. Nothing is
	// written when any of those levels fails validation; a failed write
	// restores the levels already written.
	// Returns a *domain.ValidationError keyed by level on validation failure.
	SaveSchedule(ctx context.Context, key schedule.Key, h schedule.Hierarchy, levels []schedule.Level) (*Schedule, error)

	// ApplyBulk writes one range to every child entity reached by the
	// operation. Uses partial success semantics unless the request is
	// atomic: each write succeeds or fails independently and failures are
	// collected in BulkResult.Errors. Request-level failures (gating,
	// validation, listing) return an error.
	ApplyBulk(ctx context.Context, req BulkRequest) (*BulkResult, error)
}

// Schedule is the stored state of one company context together with its
// evaluation.
type Schedule struct {
	Key        schedule.Key
	Hierarchy  schedule.Hierarchy
	Evaluation schedule.Evaluation
}

// BulkRequest describes one bulk operation. A nil Range applies the source
// level's own range. Atomic requests roll back every write when one fails.
type BulkRequest struct {
	Key       schedule.Key
	Operation schedule.BulkOperation
	Range     *schedule.DateRange
	Atomic    bool
}

// BulkItemError records one failed write within a bulk operation.
type BulkItemError struct {
	Ref schedule.Ref
	Err error
}

// BulkResult holds the outcome of a bulk operation.
type BulkResult struct {
	Operation schedule.BulkOperation
	Range     schedule.DateRange
	Updated   []schedule.Ref
	Errors    []BulkItemError
}
