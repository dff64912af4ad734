package schedule

import (
	"fmt"

	"github.com/jsamuelsen11/assignment-schedule-service/internal/domain"
)

// BulkPlan is the resolved input of one bulk operation against a hierarchy.
type BulkPlan struct {
	Operation BulkOperation
	Range     DateRange
	// Violation is set when Range breaks the rules of the target level.
	Violation *RangeError
}

// Err returns the violation as a *domain.ValidationError keyed by "range",
// or nil when the plan can run.
func (p BulkPlan) Err() error {
	if p.Violation == nil {
		return nil
	}
	return &domain.ValidationError{Fields: map[string]string{"range": p.Violation.Message}}
}

// PlanBulk resolves the range op would write: override when given,
// otherwise the source level's own range. The returned error covers
// request-level problems (unknown or disabled operation, incomplete
// range); a range that breaks the target level is reported through
// BulkPlan.Violation so callers can inspect its kind.
func (h Hierarchy) PlanBulk(op BulkOperation, override *DateRange) (BulkPlan, error) {
	if !op.IsValid() {
		return BulkPlan{}, &domain.ValidationError{Fields: map[string]string{
			"operation": fmt.Sprintf("unknown operation %q", op),
		}}
	}
	if !h.BulkEnabled(op) {
		return BulkPlan{}, &domain.ValidationError{Fields: map[string]string{
			"operation": fmt.Sprintf("requires a complete %s range", op.SourceLevel()),
		}}
	}

	r := h.Range(op.SourceLevel())
	if override != nil {
		r = *override
	}
	if !r.IsSet() {
		return BulkPlan{}, &domain.ValidationError{Fields: map[string]string{"range": "start and end are required"}}
	}

	return BulkPlan{
		Operation: op,
		Range:     r,
		Violation: h.WithRange(op.TargetLevel(), r).Validate().For(op.TargetLevel()),
	}, nil
}
