package schedule

import (
	"fmt"

	"github.com/jsamuelsen11/assignment-schedule-service/internal/domain"
)

// ErrorKind classifies a range violation.
type ErrorKind string

const (
	// KindOrdering means start is not strictly before end.
	KindOrdering ErrorKind = "ordering"
	// KindMissingParent means the child carries a bound while the parent
	// range is not fully set.
	KindMissingParent ErrorKind = "missing_parent"
	// KindContainment means a child bound falls outside the parent window.
	KindContainment ErrorKind = "containment"
)

// User-facing messages, one per kind.
const (
	MsgOrdering      = "ordering error"
	MsgMissingParent = "parent range required"
	MsgContainment   = "out of parent range"
)

// Message returns the user-facing text for k.
func (k ErrorKind) Message() string {
	switch k {
	case KindOrdering:
		return MsgOrdering
	case KindMissingParent:
		return MsgMissingParent
	case KindContainment:
		return MsgContainment
	default:
		return string(k)
	}
}

// RangeError is the violation found at one level.
type RangeError struct {
	Level   Level
	Kind    ErrorKind
	Message string
}

func newRangeError(level Level, kind ErrorKind) *RangeError {
	return &RangeError{Level: level, Kind: kind, Message: kind.Message()}
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Level, e.Message)
}

// Unwrap lets errors.Is match domain.ErrValidation.
func (e *RangeError) Unwrap() error {
	return domain.ErrValidation
}

// Result holds at most one violation per level. A nil slot means the level
// is valid.
type Result struct {
	Project    *RangeError
	SubProject *RangeError
	Task       *RangeError
}

// OK reports whether no level has a violation.
func (r Result) OK() bool {
	return r.Project == nil && r.SubProject == nil && r.Task == nil
}

// For returns the violation at level, or nil.
func (r Result) For(level Level) *RangeError {
	switch level {
	case LevelProject:
		return r.Project
	case LevelSubProject:
		return r.SubProject
	case LevelTask:
		return r.Task
	default:
		return nil
	}
}

// Message returns the user-facing message at level, or "" when valid.
func (r Result) Message(level Level) string {
	if e := r.For(level); e != nil {
		return e.Message
	}
	return ""
}

// Err folds the violations of the given levels (all levels when none are
// given) into a *domain.ValidationError keyed by Level.FieldName. Returns
// nil when those levels are valid.
func (r Result) Err(levels ...Level) error {
	if len(levels) == 0 {
		levels = Levels()
	}

	fields := make(map[string]string)
	for _, l := range levels {
		if e := r.For(l); e != nil {
			fields[l.FieldName()] = e.Message
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return &domain.ValidationError{Fields: fields}
}

// Violations returns the non-nil slots, parent first.
func (r Result) Violations() []*RangeError {
	var out []*RangeError
	for _, l := range Levels() {
		if e := r.For(l); e != nil {
			out = append(out, e)
		}
	}
	return out
}

// Validate checks the three candidate ranges of one company context.
//
// Each level is checked independently against its direct parent: ordering
// first, then (for children carrying any bound) that the parent is fully set,
// then that every present bound lies inside the parent window. A level
// reports at most one violation.
func Validate(project, subProject, task DateRange) Result {
	return Result{
		Project:    checkOrdering(LevelProject, project),
		SubProject: checkChild(LevelSubProject, subProject, project),
		Task:       checkChild(LevelTask, task, subProject),
	}
}

func checkOrdering(level Level, r DateRange) *RangeError {
	if !r.Ordered() {
		return newRangeError(level, KindOrdering)
	}
	return nil
}

func checkChild(level Level, child, parent DateRange) *RangeError {
	if err := checkOrdering(level, child); err != nil {
		return err
	}
	if child.IsEmpty() {
		return nil
	}
	if !parent.IsSet() {
		return newRangeError(level, KindMissingParent)
	}
	if !child.Within(parent) {
		return newRangeError(level, KindContainment)
	}
	return nil
}
