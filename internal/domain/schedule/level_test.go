package schedule

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/assignment-schedule-service/internal/domain"
)

func TestLevel_Parent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level  Level
		parent Level
		ok     bool
	}{
		{LevelProject, "", false},
		{LevelSubProject, LevelProject, true},
		{LevelTask, LevelSubProject, true},
		{"unknown", "", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			t.Parallel()
			got, ok := tt.level.Parent()
			if got != tt.parent || ok != tt.ok {
				t.Errorf("Parent() = (%q, %v), want (%q, %v)", got, ok, tt.parent, tt.ok)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  Level
		ok    bool
	}{
		{"main-project", LevelProject, true},
		{"project", LevelProject, true},
		{"sub-project", LevelSubProject, true},
		{"sub_project", LevelSubProject, true},
		{"task", LevelTask, true},
		{"Task", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, ok := ParseLevel(tt.input)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ParseLevel(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestBulkOperation_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		op             BulkOperation
		source, target Level
	}{
		{BulkSubProjects, LevelProject, LevelSubProject},
		{BulkHierarchical, LevelProject, LevelSubProject},
		{BulkTasks, LevelSubProject, LevelTask},
	}

	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			t.Parallel()
			if !tt.op.IsValid() {
				t.Fatalf("IsValid() = false")
			}
			if got := tt.op.SourceLevel(); got != tt.source {
				t.Errorf("SourceLevel() = %q, want %q", got, tt.source)
			}
			if got := tt.op.TargetLevel(); got != tt.target {
				t.Errorf("TargetLevel() = %q, want %q", got, tt.target)
			}
		})
	}
}

func TestKey_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		key    Key
		fields []string
	}{
		{name: "project and company", key: Key{ProjectID: 1, CompanyID: 2}},
		{name: "full path", key: Key{ProjectID: 1, SubProjectID: 3, TaskID: 4, CompanyID: 2}},
		{name: "missing ids", key: Key{}, fields: []string{"project_id", "company_id"}},
		{name: "task without sub-project", key: Key{ProjectID: 1, TaskID: 4, CompanyID: 2}, fields: []string{"sub_project_id"}},
		{name: "negative task", key: Key{ProjectID: 1, SubProjectID: 3, TaskID: -1, CompanyID: 2}, fields: []string{"task_id"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.key.Validate()
			if len(tt.fields) == 0 {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}

			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() = %v, want *domain.ValidationError", err)
			}
			for _, f := range tt.fields {
				if _, ok := verr.Fields[f]; !ok {
					t.Errorf("Fields missing %q, got %v", f, verr.Fields)
				}
			}
		})
	}
}

func TestKey_Ref(t *testing.T) {
	t.Parallel()

	k := Key{ProjectID: 1, SubProjectID: 3, CompanyID: 2}

	ref, ok := k.Ref(LevelSubProject)
	if !ok || ref != (Ref{Level: LevelSubProject, EntityID: 3, CompanyID: 2}) {
		t.Errorf("Ref(sub-project) = (%+v, %v)", ref, ok)
	}
	if k.Selected(LevelTask) {
		t.Errorf("Selected(task) = true, want false")
	}
}
