package appctx

import (
	"context"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen11/assignment-schedule-service/internal/domain"
)

// step is one entry of the commit queue. A step with several actions runs
// them concurrently; the first failure cancels the rest.
type step []domain.Action

// apply runs the step and returns the actions that succeeded, even when
// another one failed.
func (s step) apply(ctx context.Context) ([]domain.Action, error) {
	if len(s) == 1 {
		if err := s[0].Execute(ctx); err != nil {
			return nil, err
		}
		return s, nil
	}

	succeeded := make([]bool, len(s))
	g, gctx := errgroup.WithContext(ctx)
	for i, a := range s {
		g.Go(func() error {
			if err := a.Execute(gctx); err != nil {
				return err
			}
			succeeded[i] = true
			return nil
		})
	}
	err := g.Wait()

	applied := make([]domain.Action, 0, len(s))
	for i, a := range s {
		if succeeded[i] {
			applied = append(applied, a)
		}
	}
	return applied, err
}

func (s step) hasNil() bool {
	return slices.Contains(s, nil)
}

func (s step) String() string {
	switch len(s) {
	case 0:
		return "empty step"
	case 1:
		return s[0].Description()
	default:
		return fmt.Sprintf("%d concurrent writes starting with %s", len(s), s[0].Description())
	}
}
