package schedule

import (
	"testing"
	"time"
)

// day parses an ISO date for test fixtures. Empty yields nil.
func day(t *testing.T, s string) *time.Time {
	t.Helper()
	d, err := ParseDate(s)
	if err != nil {
		t.Fatalf("ParseDate(%q) error = %v", s, err)
	}
	return d
}

// rng builds a DateRange from two ISO strings. Empty strings leave the bound
// unset.
func rng(t *testing.T, start, end string) DateRange {
	t.Helper()
	return DateRange{Start: day(t, start), End: day(t, end)}
}
