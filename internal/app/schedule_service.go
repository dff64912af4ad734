// Package app provides the application services that orchestrate use cases
// between the pure schedule engine and the platform API ports.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"golang.org/x/sync/errgroup"

	appctx "github.com/jsamuelsen11/assignment-schedule-service/internal/app/context"
	"github.com/jsamuelsen11/assignment-schedule-service/internal/domain"
	"github.com/jsamuelsen11/assignment-schedule-service/internal/domain/company"
	"github.com/jsamuelsen11/assignment-schedule-service/internal/domain/schedule"
	"github.com/jsamuelsen11/assignment-schedule-service/internal/ports"
)

var _ ports.ScheduleService = (*ScheduleService)(nil)

const defaultMaxWorkers = 4

// Recorder receives schedule outcomes. *telemetry.Metrics implements it.
type Recorder interface {
	RecordValidationFailure(ctx context.Context, level, kind string)
	RecordBulkItem(ctx context.Context, operation, outcome string)
}

type nopRecorder struct{}

func (nopRecorder) RecordValidationFailure(context.Context, string, string) {}
func (nopRecorder) RecordBulkItem(context.Context, string, string)          {}

// Option configures a ScheduleService.
type Option func(*ScheduleService)

// WithRecorder sets the metrics sink. Nil keeps the no-op recorder.
func WithRecorder(r Recorder) Option {
	return func(s *ScheduleService) {
		if r != nil {
			s.recorder = r
		}
	}
}

// WithMaxWorkers bounds the concurrent writes of a bulk operation.
func WithMaxWorkers(n int) Option {
	return func(s *ScheduleService) {
		if n > 0 {
			s.maxWorkers = n
		}
	}
}

// ScheduleService implements ports.ScheduleService. It loads and stores
// ranges through the PlatformClient port and leaves every date rule to the
// schedule package.
type ScheduleService struct {
	client     ports.PlatformClient
	logger     *slog.Logger
	recorder   Recorder
	maxWorkers int
}

// NewScheduleService creates a ScheduleService. A nil logger discards
// output.
func NewScheduleService(client ports.PlatformClient, logger *slog.Logger, opts ...Option) *ScheduleService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &ScheduleService{
		client:     client,
		logger:     logger,
		recorder:   nopRecorder{},
		maxWorkers: defaultMaxWorkers,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListCompanies returns the companies eligible for assignment to a project.
func (s *ScheduleService) ListCompanies(ctx context.Context, projectID int64) ([]company.Company, error) {
	s.logger.InfoContext(ctx, "listing companies", slog.Int64("project_id", projectID))

	if projectID <= 0 {
		return nil, &domain.ValidationError{Fields: map[string]string{"project_id": domain.MsgRequired}}
	}

	companies, err := s.client.ListCompanies(ctx, projectID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list companies",
			slog.String("operation", "ListCompanies"),
			slog.Int64("project_id", projectID),
			slog.Any("error", err),
		)
		return nil, err
	}
	return companies, nil
}

// GetSchedule verifies the project exists and loads the ranges of every
// selected level concurrently.
func (s *ScheduleService) GetSchedule(ctx context.Context, key schedule.Key) (*ports.Schedule, error) {
	s.logger.InfoContext(ctx, "fetching schedule", keyAttrs(key)...)

	if err := key.Validate(); err != nil {
		return nil, err
	}

	h, err := s.loadHierarchy(ctx, key, schedule.Levels())
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch schedule",
			append(keyAttrs(key),
				slog.String("operation", "GetSchedule"),
				slog.Any("error", err),
			)...,
		)
		return nil, err
	}

	return &ports.Schedule{Key: key, Hierarchy: h, Evaluation: h.Evaluate()}, nil
}

// EvaluateSchedule evaluates a candidate hierarchy without touching the
// platform.
func (s *ScheduleService) EvaluateSchedule(ctx context.Context, h schedule.Hierarchy) schedule.Evaluation {
	ev := h.Evaluate()
	if !ev.Result.OK() {
		s.logger.DebugContext(ctx, "schedule has violations",
			slog.Int("violations", len(ev.Result.Violations())),
		)
	}
	return ev
}

// SaveSchedule validates h and writes the requested levels parent first.
// Empty levels means every level the key selects. Levels above a saved one
// that are not saved themselves are validated with their stored ranges, and
// levels whose stored range already matches are not rewritten.
func (s *ScheduleService) SaveSchedule(
	ctx context.Context, key schedule.Key, h schedule.Hierarchy, levels []schedule.Level,
) (*ports.Schedule, error) {
	s.logger.InfoContext(ctx, "saving schedule", keyAttrs(key)...)

	if err := key.Validate(); err != nil {
		return nil, err
	}

	ordered, err := selectLevels(key, levels)
	if err != nil {
		return nil, err
	}

	rc := appctx.FromContext(ctx)
	h, err = s.withStoredParents(rc, key, h, ordered)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to read stored parent range",
			append(keyAttrs(key),
				slog.String("operation", "SaveSchedule"),
				slog.Any("error", err),
			)...,
		)
		return nil, err
	}

	res := h.Validate()
	if err := res.Err(ordered...); err != nil {
		for _, l := range ordered {
			if v := res.For(l); v != nil {
				s.recorder.RecordValidationFailure(ctx, string(v.Level), string(v.Kind))
			}
		}
		s.logger.WarnContext(ctx, "schedule rejected",
			append(keyAttrs(key), slog.Any("error", err))...,
		)
		return nil, err
	}

	for _, l := range ordered {
		ref, _ := key.Ref(l)
		prev, err := appctx.GetOrFetch(rc, rangeCacheKey(ref), func(ctx context.Context) (schedule.DateRange, error) {
			return s.client.GetRange(ctx, ref)
		})
		if err != nil {
			s.logger.ErrorContext(ctx, "failed to read current range",
				slog.String("operation", "SaveSchedule"),
				slog.String("level", l.String()),
				slog.Int64("entity_id", ref.EntityID),
				slog.Any("error", err),
			)
			return nil, fmt.Errorf("reading current %s range: %w", l, err)
		}

		next := h.Range(l)
		if prev.Equal(next) {
			s.logger.DebugContext(ctx, "range unchanged, skipping write",
				slog.String("level", l.String()),
				slog.Int64("entity_id", ref.EntityID),
			)
			continue
		}
		if err := rc.Stage(rangeCacheKey(ref), next, newSaveRangeAction(s.client, ref, prev, next)); err != nil {
			return nil, fmt.Errorf("staging %s range: %w", l, err)
		}
	}

	s.logger.DebugContext(ctx, "committing schedule", slog.Int("steps", rc.Pending()))
	if err := rc.Commit(ctx); err != nil {
		s.logger.ErrorContext(ctx, "failed to save schedule",
			append(keyAttrs(key),
				slog.String("operation", "SaveSchedule"),
				slog.Any("error", err),
			)...,
		)
		return nil, err
	}

	return &ports.Schedule{Key: key, Hierarchy: h, Evaluation: h.Evaluate()}, nil
}

// loadHierarchy fetches the project itself and the ranges of the given
// levels the key selects. Unselected levels stay empty.
func (s *ScheduleService) loadHierarchy(ctx context.Context, key schedule.Key, levels []schedule.Level) (schedule.Hierarchy, error) {
	ranges := make([]schedule.DateRange, len(levels))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, err := s.client.GetProject(gctx, key.ProjectID)
		return err
	})
	for i, l := range levels {
		ref, ok := key.Ref(l)
		if !ok {
			continue
		}
		g.Go(func() error {
			r, err := s.client.GetRange(gctx, ref)
			if err != nil {
				return fmt.Errorf("loading %s range: %w", l, err)
			}
			ranges[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return schedule.Hierarchy{}, err
	}

	var h schedule.Hierarchy
	for i, l := range levels {
		h = h.WithRange(l, ranges[i])
	}
	return h, nil
}

// withStoredParents replaces the range of every selected level that sits
// above a level being saved, and is not saved itself, with the range the
// platform holds. Saved levels are then checked against stored parents,
// never against parents taken from the request.
func (s *ScheduleService) withStoredParents(
	rc *appctx.RequestContext, key schedule.Key, h schedule.Hierarchy, saving []schedule.Level,
) (schedule.Hierarchy, error) {
	if len(saving) == 0 {
		return h, nil
	}
	deepest := saving[len(saving)-1]

	for _, l := range schedule.Levels() {
		if l == deepest {
			break
		}
		ref, ok := key.Ref(l)
		if !ok || slices.Contains(saving, l) {
			continue
		}
		stored, err := appctx.GetOrFetch(rc, rangeCacheKey(ref), func(ctx context.Context) (schedule.DateRange, error) {
			return s.client.GetRange(ctx, ref)
		})
		if err != nil {
			return h, fmt.Errorf("reading stored %s range: %w", l, err)
		}
		h = h.WithRange(l, stored)
	}
	return h, nil
}

// selectLevels checks the requested levels against the key and returns them
// parent first without duplicates.
func selectLevels(key schedule.Key, levels []schedule.Level) ([]schedule.Level, error) {
	want := make(map[schedule.Level]bool, len(levels))
	for _, l := range levels {
		if !l.IsValid() {
			return nil, &domain.ValidationError{Fields: map[string]string{
				"levels": fmt.Sprintf("unknown level %q", l),
			}}
		}
		if !key.Selected(l) {
			return nil, &domain.ValidationError{Fields: map[string]string{
				"levels": fmt.Sprintf("%s is not selected", l),
			}}
		}
		want[l] = true
	}

	var ordered []schedule.Level
	for _, l := range schedule.Levels() {
		if (len(levels) == 0 && key.Selected(l)) || want[l] {
			ordered = append(ordered, l)
		}
	}
	return ordered, nil
}

func rangeCacheKey(ref schedule.Ref) string {
	return fmt.Sprintf("range:%s:%d:%d", ref.Level, ref.EntityID, ref.CompanyID)
}

func keyAttrs(key schedule.Key) []any {
	return []any{
		slog.Int64("project_id", key.ProjectID),
		slog.Int64("sub_project_id", key.SubProjectID),
		slog.Int64("task_id", key.TaskID),
		slog.Int64("company_id", key.CompanyID),
	}
}
