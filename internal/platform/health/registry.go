// Package health keeps the set of downstream checks consulted by the
// readiness probe. For this service that is the platform API, whose state is
// read from its circuit breaker.
package health

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen11/assignment-schedule-service/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

// DefaultCheckTimeout bounds a single check when no other limit is set.
const DefaultCheckTimeout = 2 * time.Second

// Registry holds checkers keyed by name. Registering a name twice replaces
// the earlier checker. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	order    []string
	checkers map[string]ports.HealthChecker
	timeout  time.Duration
}

// Option configures a Registry.
type Option func(*Registry)

// WithCheckTimeout bounds each check. A checker that overruns is reported
// with the context error.
func WithCheckTimeout(d time.Duration) Option {
	return func(r *Registry) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// New returns an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		checkers: make(map[string]ports.HealthChecker),
		timeout:  DefaultCheckTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds checker under checker.Name().
func (r *Registry) Register(checker ports.HealthChecker) {
	name := checker.Name()

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.checkers[name]; !exists {
		r.order = append(r.order, name)
	}
	r.checkers[name] = checker
}

// CheckAll runs every check concurrently and returns the results keyed by
// name. A nil value means healthy.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := make([]ports.HealthChecker, 0, len(r.order))
	for _, name := range r.order {
		checkers = append(checkers, r.checkers[name])
	}
	r.mu.RUnlock()

	var (
		mu      sync.Mutex
		results = make(map[string]error, len(checkers))
		g       errgroup.Group
	)
	for _, c := range checkers {
		g.Go(func() error {
			err := r.check(ctx, c)
			mu.Lock()
			results[c.Name()] = err
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// check runs c under the per-check timeout. The result is abandoned, not
// awaited, once the deadline passes.
func (r *Registry) check(ctx context.Context, c ports.HealthChecker) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- c.HealthCheck(ctx) }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("%s: check abandoned: %w", c.Name(), ctx.Err())
	}
}
