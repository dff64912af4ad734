// Package schedule implements the hierarchical date constraint engine for
// company assignments.
//
// A company assigned to a project carries one date range per hierarchy level
// (project, sub-project, task). A Hierarchy holds the three candidate ranges
// of a single (project, company) context; Validate, PickerConstraints and
// BulkEnabled are pure functions over it:
//
//	h := schedule.Hierarchy{Project: p, SubProject: s, Task: t}
//	res := h.Validate()
//	if err := res.Err(schedule.LevelSubProject); err != nil {
//	    // render res.Message(schedule.LevelSubProject)
//	}
//
// Nothing in this package performs I/O or holds state between calls.
package schedule

import (
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/assignment-schedule-service/internal/domain"
)

// DateLayout is the wire and storage format of a range bound (ISO date, no
// time component).
const DateLayout = "2006-01-02"

// DateRange is the validity window of one hierarchy level for one company.
// A nil bound is unset.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// IsSet reports whether both bounds are present.
func (r DateRange) IsSet() bool {
	return r.Start != nil && r.End != nil
}

// IsEmpty reports whether neither bound is present.
func (r DateRange) IsEmpty() bool {
	return r.Start == nil && r.End == nil
}

// Ordered reports whether start is strictly before end. A range missing
// either bound is trivially ordered.
func (r DateRange) Ordered() bool {
	if !r.IsSet() {
		return true
	}
	return r.Start.Before(*r.End)
}

// Within reports whether every present bound of r lies inside parent
// (inclusive). parent must be fully set; an unset parent contains nothing.
func (r DateRange) Within(parent DateRange) bool {
	if !parent.IsSet() {
		return false
	}
	for _, b := range []*time.Time{r.Start, r.End} {
		if b == nil {
			continue
		}
		if b.Before(*parent.Start) || b.After(*parent.End) {
			return false
		}
	}
	return true
}

// Equal reports whether both ranges have the same bounds.
func (r DateRange) Equal(o DateRange) bool {
	return sameDate(r.Start, o.Start) && sameDate(r.End, o.End)
}

// String renders the range as "start..end", using "open" for unset bounds.
func (r DateRange) String() string {
	return boundString(r.Start) + ".." + boundString(r.End)
}

// ParseDate parses an ISO date (YYYY-MM-DD). Surrounding whitespace is
// ignored and an empty string yields nil (an unset bound).
func ParseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", s, domain.ErrValidation)
	}
	return &t, nil
}

// ParseRange parses both bounds of a range. Field-level failures are
// reported as a *domain.ValidationError keyed by "start_date" / "end_date".
func ParseRange(start, end string) (DateRange, error) {
	fields := make(map[string]string)

	s, err := ParseDate(start)
	if err != nil {
		fields["start_date"] = fmt.Sprintf("invalid: %q", start)
	}
	e, err := ParseDate(end)
	if err != nil {
		fields["end_date"] = fmt.Sprintf("invalid: %q", end)
	}

	if len(fields) > 0 {
		return DateRange{}, &domain.ValidationError{Fields: fields}
	}
	return DateRange{Start: s, End: e}, nil
}

// FormatDate renders a bound in DateLayout. Returns "" for nil.
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DateLayout)
}

func boundString(t *time.Time) string {
	if t == nil {
		return "open"
	}
	return t.Format(DateLayout)
}

func sameDate(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

func copyDate(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
