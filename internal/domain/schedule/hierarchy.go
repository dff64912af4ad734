package schedule

import "time"

// Hierarchy is the set of candidate ranges of one (project, company)
// context, one per level.
type Hierarchy struct {
	Project    DateRange
	SubProject DateRange
	Task       DateRange
}

// Range returns the range stored at level. Unknown levels yield an empty
// range.
func (h Hierarchy) Range(level Level) DateRange {
	switch level {
	case LevelProject:
		return h.Project
	case LevelSubProject:
		return h.SubProject
	case LevelTask:
		return h.Task
	default:
		return DateRange{}
	}
}

// WithRange returns a copy of h with level replaced by r.
func (h Hierarchy) WithRange(level Level, r DateRange) Hierarchy {
	switch level {
	case LevelProject:
		h.Project = r
	case LevelSubProject:
		h.SubProject = r
	case LevelTask:
		h.Task = r
	}
	return h
}

// Validate runs Validate over the three ranges of h.
func (h Hierarchy) Validate() Result {
	return Validate(h.Project, h.SubProject, h.Task)
}

// PickerConstraints is what a date picker needs to render one boundary:
// the selectable window and whether input is allowed at all.
type PickerConstraints struct {
	Min      *time.Time
	Max      *time.Time
	Disabled bool
}

// PickerConstraints derives the picker window for one boundary of level.
// The boundary is part of the signature for callers that render start and
// end pickers separately; both share the window of the parent range, since
// ordering within the level is checked by Validate, not by the picker. The
// picker stays disabled until that parent is fully set. The project level
// is unconstrained.
func (h Hierarchy) PickerConstraints(level Level, _ Boundary) PickerConstraints {
	parent, ok := level.Parent()
	if !ok {
		return PickerConstraints{}
	}

	r := h.Range(parent)
	return PickerConstraints{
		Min:      copyDate(r.Start),
		Max:      copyDate(r.End),
		Disabled: !r.IsSet(),
	}
}

// BulkEnabled reports whether op may run against h. Fan-outs from the
// project need a fully set project range; task fan-outs need a fully set
// sub-project range. Unknown operations are never enabled.
func (h Hierarchy) BulkEnabled(op BulkOperation) bool {
	if !op.IsValid() {
		return false
	}
	return h.Range(op.SourceLevel()).IsSet()
}
