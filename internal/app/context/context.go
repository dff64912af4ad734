// Package appctx is the per-request unit of work of the schedule service.
//
// Reads made through GetOrFetch are remembered for the life of the request.
// Writes are queued as steps; Commit applies the steps in order and, when
// one fails, rolls back every write already applied, newest first.
//
//	rc := appctx.New(ctx)
//	prev, err := appctx.GetOrFetch(rc, "range:task:12:4", fetchRange)
//	err = rc.Stage("range:task:12:4", next, saveAction)
//	err = rc.Commit(ctx)
//
// A RequestContext belongs to one request.
package appctx

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jsamuelsen11/assignment-schedule-service/internal/domain"
)

var _ domain.WriteStager = (*RequestContext)(nil)

var (
	// ErrAlreadyCommitted is returned by Stage, AddGroup and Commit once
	// Commit has run.
	ErrAlreadyCommitted = errors.New("appctx: request context already committed")

	// ErrNilAction is returned when a nil action is queued.
	ErrNilAction = errors.New("appctx: nil action")

	// ErrTypeMismatch is returned by GetOrFetch when a key was first stored
	// with another type.
	ErrTypeMismatch = errors.New("appctx: cached value type mismatch")
)

// RequestContext is a context.Context carrying a read memo and a write
// queue. The memo is only touched from the request goroutine; the queue
// is safe for concurrent use.
type RequestContext struct {
	context.Context

	reads map[string]memo

	mu     sync.Mutex
	steps  []step
	sealed bool
}

// memo is one remembered fetch, failures included.
type memo struct {
	value any
	err   error
}

// New returns an empty RequestContext over ctx.
func New(ctx context.Context) *RequestContext {
	return &RequestContext{Context: ctx, reads: map[string]memo{}}
}

type requestContextKey struct{}

// WithRequestContext returns a copy of ctx carrying rc.
func WithRequestContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, requestContextKey{}, rc)
}

// FromContext returns the RequestContext carried by ctx. Without one it
// returns a new, unshared RequestContext over ctx.
func FromContext(ctx context.Context) *RequestContext {
	rc, _ := ctx.Value(requestContextKey{}).(*RequestContext)
	if rc == nil {
		return New(ctx)
	}
	return rc
}

// GetOrFetch returns what is remembered under key, calling fetch the first
// time. A failed fetch is remembered as well and not retried.
func GetOrFetch[T any](rc *RequestContext, key string, fetch func(ctx context.Context) (T, error)) (T, error) {
	m, seen := rc.reads[key]
	if !seen {
		v, err := fetch(rc.Context)
		rc.reads[key] = memo{value: v, err: err}
		return v, err
	}

	var zero T
	if m.err != nil {
		return zero, m.err
	}
	v, ok := m.value.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %q holds %T, not %T", ErrTypeMismatch, key, m.value, zero)
	}
	return v, nil
}

// Stage remembers entity under key and queues action as its own step.
func (rc *RequestContext) Stage(key string, entity any, action domain.Action) error {
	if err := rc.enqueue(step{action}); err != nil {
		return err
	}
	rc.reads[key] = memo{value: entity}
	return nil
}

// AddGroup queues actions as one step whose actions Commit runs
// concurrently.
func (rc *RequestContext) AddGroup(actions ...domain.Action) error {
	return rc.enqueue(step(actions))
}

// Pending reports how many steps are queued.
func (rc *RequestContext) Pending() int {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return len(rc.steps)
}

func (rc *RequestContext) enqueue(s step) error {
	if s.hasNil() {
		return ErrNilAction
	}

	rc.mu.Lock()
	defer rc.mu.Unlock()
	if rc.sealed {
		return ErrAlreadyCommitted
	}
	rc.steps = append(rc.steps, s)
	return nil
}

// seal closes the queue and hands back its steps.
func (rc *RequestContext) seal() ([]step, error) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	if rc.sealed {
		return nil, ErrAlreadyCommitted
	}
	rc.sealed = true
	return rc.steps, nil
}
