package app

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	appctx "github.com/jsamuelsen11/assignment-schedule-service/internal/app/context"
	"github.com/jsamuelsen11/assignment-schedule-service/internal/app/fanout"
	"github.com/jsamuelsen11/assignment-schedule-service/internal/domain"
	"github.com/jsamuelsen11/assignment-schedule-service/internal/domain/schedule"
	"github.com/jsamuelsen11/assignment-schedule-service/internal/ports"
)

// ErrParentWriteFailed marks a task skipped because the write of its
// sub-project failed.
var ErrParentWriteFailed = errors.New("parent write failed")

// Bulk item outcomes reported to the Recorder.
const (
	outcomeUpdated = "updated"
	outcomeFailed  = "failed"
	outcomeSkipped = "skipped"
)

// bulkTarget is one top-level write of a bulk operation together with the
// writes that depend on it.
type bulkTarget struct {
	ref      schedule.Ref
	children []schedule.Ref
}

type bulkTally struct {
	updated []schedule.Ref
	errs    []ports.BulkItemError
}

// ApplyBulk writes one range to every child entity reached by the
// operation. The operation must be enabled for the stored hierarchy and
// the range must fit inside the source level's range.
func (s *ScheduleService) ApplyBulk(ctx context.Context, req ports.BulkRequest) (*ports.BulkResult, error) {
	key, op := req.Key, req.Operation
	s.logger.InfoContext(ctx, "applying bulk schedule",
		append(keyAttrs(key), slog.String("bulk_operation", op.String()), slog.Bool("atomic", req.Atomic))...,
	)

	if err := validateBulkRequest(req); err != nil {
		return nil, err
	}

	h, err := s.loadHierarchy(ctx, key, []schedule.Level{schedule.LevelProject, schedule.LevelSubProject})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load hierarchy for bulk",
			slog.String("operation", "ApplyBulk"),
			slog.Any("error", err),
		)
		return nil, err
	}

	plan, err := h.PlanBulk(op, req.Range)
	if err != nil {
		return nil, err
	}
	if v := plan.Violation; v != nil {
		s.recorder.RecordValidationFailure(ctx, string(v.Level), string(v.Kind))
		return nil, plan.Err()
	}
	rng := plan.Range

	targets, err := s.bulkTargets(ctx, key, op)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list bulk targets",
			slog.String("operation", "ApplyBulk"),
			slog.String("bulk_operation", op.String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	result := &ports.BulkResult{Operation: op, Range: rng}
	if req.Atomic {
		if err := s.applyAtomic(ctx, op, targets, rng, result); err != nil {
			return nil, err
		}
		return result, nil
	}

	s.applyPartial(ctx, op, targets, rng, result)
	if len(result.Errors) > 0 {
		s.logger.WarnContext(ctx, "bulk schedule partially applied",
			slog.String("bulk_operation", op.String()),
			slog.Int("updated", len(result.Updated)),
			slog.Int("failed", len(result.Errors)),
		)
	}
	return result, nil
}

func validateBulkRequest(req ports.BulkRequest) error {
	if err := req.Key.Validate(); err != nil {
		return err
	}
	if !req.Operation.IsValid() {
		return &domain.ValidationError{Fields: map[string]string{
			"operation": fmt.Sprintf("unknown operation %q", req.Operation),
		}}
	}
	if req.Operation == schedule.BulkTasks && req.Key.SubProjectID == 0 {
		return &domain.ValidationError{Fields: map[string]string{
			"sub_project_id": "is required for task operations",
		}}
	}
	return nil
}

// bulkTargets lists the entities op writes to.
func (s *ScheduleService) bulkTargets(ctx context.Context, key schedule.Key, op schedule.BulkOperation) ([]bulkTarget, error) {
	ref := func(level schedule.Level, id int64) schedule.Ref {
		return schedule.Ref{Level: level, EntityID: id, CompanyID: key.CompanyID}
	}

	if op == schedule.BulkTasks {
		tasks, err := s.client.ListTasks(ctx, key.SubProjectID)
		if err != nil {
			return nil, fmt.Errorf("listing tasks: %w", err)
		}
		targets := make([]bulkTarget, len(tasks))
		for i, t := range tasks {
			targets[i] = bulkTarget{ref: ref(schedule.LevelTask, t.ID)}
		}
		return targets, nil
	}

	subProjects, err := s.client.ListSubProjects(ctx, key.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("listing sub-projects: %w", err)
	}
	targets := make([]bulkTarget, len(subProjects))
	for i, sp := range subProjects {
		targets[i] = bulkTarget{ref: ref(schedule.LevelSubProject, sp.ID)}
	}
	if op != schedule.BulkHierarchical {
		return targets, nil
	}

	listed := fanout.Run(ctx, s.maxWorkers, targets, func(ctx context.Context, t bulkTarget) ([]schedule.Ref, error) {
		tasks, err := s.client.ListTasks(ctx, t.ref.EntityID)
		if err != nil {
			return nil, fmt.Errorf("listing tasks of sub-project %d: %w", t.ref.EntityID, err)
		}
		refs := make([]schedule.Ref, len(tasks))
		for i, task := range tasks {
			refs[i] = ref(schedule.LevelTask, task.ID)
		}
		return refs, nil
	})
	for i, r := range listed {
		if r.Err != nil {
			return nil, r.Err
		}
		targets[i].children = r.Value
	}
	return targets, nil
}

// applyPartial writes every target independently. A target's children are
// written only after the target itself succeeded.
func (s *ScheduleService) applyPartial(
	ctx context.Context, op schedule.BulkOperation, targets []bulkTarget, rng schedule.DateRange, result *ports.BulkResult,
) {
	tally := appctx.Guard(bulkTally{})

	record := func(ctx context.Context, ref schedule.Ref, err error) {
		outcome := outcomeUpdated
		switch {
		case errors.Is(err, ErrParentWriteFailed):
			outcome = outcomeSkipped
		case err != nil:
			outcome = outcomeFailed
		}
		s.recorder.RecordBulkItem(ctx, op.String(), outcome)

		tally.Do(func(t *bulkTally) {
			if err != nil {
				t.errs = append(t.errs, ports.BulkItemError{Ref: ref, Err: err})
				return
			}
			t.updated = append(t.updated, ref)
		})
	}

	skipChildren := func(ctx context.Context, t bulkTarget, cause error) {
		for _, c := range t.children {
			record(ctx, c, fmt.Errorf("%s %d: %w: %w", t.ref.Level, t.ref.EntityID, ErrParentWriteFailed, cause))
		}
	}

	results := fanout.Run(ctx, s.maxWorkers, targets, func(ctx context.Context, t bulkTarget) (bool, error) {
		if err := s.client.SaveRange(ctx, t.ref, rng); err != nil {
			record(ctx, t.ref, err)
			skipChildren(ctx, t, err)
			return true, err
		}
		record(ctx, t.ref, nil)

		for _, c := range t.children {
			record(ctx, c, s.client.SaveRange(ctx, c, rng))
		}
		return true, nil
	})

	// Targets never started because ctx ended.
	for i, r := range results {
		if !r.Value && r.Err != nil {
			record(ctx, targets[i].ref, r.Err)
			skipChildren(ctx, targets[i], r.Err)
		}
	}

	final := tally.Load()
	slices.SortFunc(final.updated, compareRefs)
	slices.SortFunc(final.errs, func(a, b ports.BulkItemError) int { return compareRefs(a.Ref, b.Ref) })
	result.Updated = final.updated
	result.Errors = final.errs
}

// applyAtomic stages every write in one unit of work: all sub-project or
// task writes run as one group, dependent task writes as a second group.
// Any failure restores every range already written.
func (s *ScheduleService) applyAtomic(
	ctx context.Context, op schedule.BulkOperation, targets []bulkTarget, rng schedule.DateRange, result *ports.BulkResult,
) error {
	var parents, children []schedule.Ref
	for _, t := range targets {
		parents = append(parents, t.ref)
		children = append(children, t.children...)
	}
	all := append(slices.Clone(parents), children...)

	prev := fanout.Run(ctx, s.maxWorkers, all, func(ctx context.Context, ref schedule.Ref) (schedule.DateRange, error) {
		return s.client.GetRange(ctx, ref)
	})
	actions := make([]domain.Action, len(all))
	for i, r := range prev {
		if r.Err != nil {
			return fmt.Errorf("reading current %s %d range: %w", all[i].Level, all[i].EntityID, r.Err)
		}
		actions[i] = newSaveRangeAction(s.client, all[i], r.Value, rng)
	}

	rc := appctx.New(ctx)
	if len(parents) > 0 {
		if err := rc.AddGroup(actions[:len(parents)]...); err != nil {
			return err
		}
	}
	if len(children) > 0 {
		if err := rc.AddGroup(actions[len(parents):]...); err != nil {
			return err
		}
	}

	if err := rc.Commit(ctx); err != nil {
		for range all {
			s.recorder.RecordBulkItem(ctx, op.String(), outcomeFailed)
		}
		s.logger.ErrorContext(ctx, "atomic bulk schedule rolled back",
			slog.String("operation", "ApplyBulk"),
			slog.String("bulk_operation", op.String()),
			slog.Any("error", err),
		)
		return fmt.Errorf("bulk %s: %w", op, err)
	}

	for range all {
		s.recorder.RecordBulkItem(ctx, op.String(), outcomeUpdated)
	}
	slices.SortFunc(all, compareRefs)
	result.Updated = all
	return nil
}

func compareRefs(a, b schedule.Ref) int {
	return cmp.Or(
		cmp.Compare(levelRank(a.Level), levelRank(b.Level)),
		cmp.Compare(a.EntityID, b.EntityID),
	)
}

func levelRank(l schedule.Level) int {
	return slices.Index(schedule.Levels(), l)
}
