package appctx

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/jsamuelsen11/assignment-schedule-service/internal/domain"
	"github.com/jsamuelsen11/assignment-schedule-service/internal/platform/logging"
)

// Commit applies the queued steps in order. If a step fails, every action
// applied so far is rolled back newest first and the step's error is
// returned. Rollbacks run even when ctx is canceled; their failures are
// logged, not returned.
//
// Commit seals the RequestContext whether or not it succeeds.
func (rc *RequestContext) Commit(ctx context.Context) error {
	steps, err := rc.seal()
	if err != nil {
		return err
	}

	logger := logging.FromContext(ctx).With(slog.String("operation", "RequestContext.Commit"))

	var applied []domain.Action
	for n, s := range steps {
		logger.DebugContext(ctx, "applying step",
			slog.Int("step", n+1),
			slog.Int("steps", len(steps)),
			slog.String("action", s.String()),
		)

		done, err := s.apply(ctx)
		applied = append(applied, done...)
		if err == nil {
			continue
		}

		logger.ErrorContext(ctx, "step failed, rolling back",
			slog.Int("step", n+1),
			slog.String("action", s.String()),
			slog.Int("to_undo", len(applied)),
			slog.Any("error", err),
		)
		undo(context.WithoutCancel(ctx), logger, applied)
		return fmt.Errorf("%s: %w", s, err)
	}
	return nil
}

func undo(ctx context.Context, logger *slog.Logger, applied []domain.Action) {
	for _, a := range slices.Backward(applied) {
		if err := a.Rollback(ctx); err != nil {
			logger.ErrorContext(ctx, "rollback failed",
				slog.String("action", a.Description()),
				slog.Any("error", err),
			)
			continue
		}
		logger.InfoContext(ctx, "rolled back", slog.String("action", a.Description()))
	}
}
