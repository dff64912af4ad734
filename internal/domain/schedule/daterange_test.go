package schedule

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/jsamuelsen11/assignment-schedule-service/internal/domain"
)

func TestParseDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    *time.Time
		wantErr bool
	}{
		{name: "empty is unset", input: "", want: nil},
		{name: "blank is unset", input: "   ", want: nil},
		{name: "iso date", input: "2024-02-29", want: ptr(time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC))},
		{name: "surrounding whitespace", input: " 2024-01-01 ", want: ptr(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC))},
		{name: "slashes rejected", input: "2024/01/01", wantErr: true},
		{name: "month out of range", input: "2024-13-01", wantErr: true},
		{name: "not a leap year", input: "2023-02-29", wantErr: true},
		{name: "datetime rejected", input: "2024-01-01T10:00:00Z", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseDate(tt.input)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrValidation) {
					t.Fatalf("ParseDate(%q) error = %v, want ErrValidation", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) unexpected error: %v", tt.input, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseDate(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestParseRange_InvalidFields(t *testing.T) {
	t.Parallel()

	_, err := ParseRange("yesterday", "2024-99-01")

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("ParseRange() error = %T, want *domain.ValidationError", err)
	}
	for _, field := range []string{"start_date", "end_date"} {
		if _, ok := verr.Fields[field]; !ok {
			t.Errorf("Fields missing %q, got %v", field, verr.Fields)
		}
	}
}

func TestParseRange_Partial(t *testing.T) {
	t.Parallel()

	got, err := ParseRange("", "2024-05-01")
	if err != nil {
		t.Fatalf("ParseRange() unexpected error: %v", err)
	}
	if got.Start != nil {
		t.Errorf("Start = %v, want nil", got.Start)
	}
	if FormatDate(got.End) != "2024-05-01" {
		t.Errorf("End = %q, want 2024-05-01", FormatDate(got.End))
	}
	if got.IsSet() || got.IsEmpty() {
		t.Errorf("IsSet() = %v, IsEmpty() = %v, want false/false", got.IsSet(), got.IsEmpty())
	}
}

func TestDateRange_Ordered(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		start, end string
		want       bool
	}{
		{"start before end", "2024-01-01", "2024-01-02", true},
		{"equal bounds", "2024-03-10", "2024-03-10", false},
		{"start after end", "2024-03-01", "2024-02-01", false},
		{"open start", "", "2024-02-01", true},
		{"open end", "2024-02-01", "", true},
		{"unset", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := rng(t, tt.start, tt.end).Ordered(); got != tt.want {
				t.Errorf("Ordered() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDateRange_Within(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		child  [2]string
		parent [2]string
		want   bool
	}{
		{"strictly inside", [2]string{"2024-02-01", "2024-03-01"}, [2]string{"2024-01-01", "2024-12-31"}, true},
		{"touching both edges", [2]string{"2024-01-01", "2024-12-31"}, [2]string{"2024-01-01", "2024-12-31"}, true},
		{"starts before parent", [2]string{"2023-12-31", "2024-03-01"}, [2]string{"2024-01-01", "2024-12-31"}, false},
		{"ends after parent", [2]string{"2024-02-01", "2025-01-01"}, [2]string{"2024-01-01", "2024-12-31"}, false},
		{"open start inside", [2]string{"", "2024-03-01"}, [2]string{"2024-01-01", "2024-12-31"}, true},
		{"open end outside", [2]string{"2025-03-01", ""}, [2]string{"2024-01-01", "2024-12-31"}, false},
		{"parent partially set", [2]string{"2024-02-01", "2024-03-01"}, [2]string{"2024-01-01", ""}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			child := rng(t, tt.child[0], tt.child[1])
			parent := rng(t, tt.parent[0], tt.parent[1])
			if got := child.Within(parent); got != tt.want {
				t.Errorf("%s.Within(%s) = %v, want %v", child, parent, got, tt.want)
			}
		})
	}
}

func TestDateRange_String_Open(t *testing.T) {
	t.Parallel()

	if got := (DateRange{}).String(); got != "open..open" {
		t.Errorf("String() = %q, want open..open", got)
	}
}

func ptr[T any](v T) *T { return &v }
