// Package fanout runs one function over many items with bounded
// concurrency, keeping per-item outcomes in input order. Bulk schedule
// updates use it so one failing entity does not stop the others.
package fanout

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Result is the outcome for one item: Value on success, Err otherwise.
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn for every item with at most maxWorkers calls in flight and
// returns the results in input order. A failing item does not cancel the
// others. Once ctx is done, items not yet started record ctx.Err() without
// calling fn; calls already running finish on their own.
//
// maxWorkers below 1 is treated as 1. An empty input yields an empty,
// non-nil slice.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	var g errgroup.Group
	g.SetLimit(max(maxWorkers, 1))

	for i, item := range items {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = Result[R]{Err: err}
				return nil
			}
			val, err := fn(ctx, item)
			results[i] = Result[R]{Value: val, Err: err}
			return nil
		})
	}

	_ = g.Wait()
	return results
}
