package cli

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/assignment-schedule-service/internal/domain"
	"github.com/jsamuelsen11/assignment-schedule-service/internal/domain/schedule"
)

// rangeFlags binds the six date flags of a hierarchy.
type rangeFlags struct {
	projectStart, projectEnd string
	subStart, subEnd         string
	taskStart, taskEnd       string
}

func (f *rangeFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.projectStart, "project-start", "", "Main project start date (YYYY-MM-DD)")
	fs.StringVar(&f.projectEnd, "project-end", "", "Main project end date (YYYY-MM-DD)")
	fs.StringVar(&f.subStart, "sub-start", "", "Sub-project start date (YYYY-MM-DD)")
	fs.StringVar(&f.subEnd, "sub-end", "", "Sub-project end date (YYYY-MM-DD)")
	fs.StringVar(&f.taskStart, "task-start", "", "Task start date (YYYY-MM-DD)")
	fs.StringVar(&f.taskEnd, "task-end", "", "Task end date (YYYY-MM-DD)")
}

// hierarchy parses every flag and reports all malformed dates at once,
// keyed by flag name.
func (f *rangeFlags) hierarchy() (schedule.Hierarchy, error) {
	bad := make(map[string]string)
	parse := func(startFlag, start, endFlag, end string) schedule.DateRange {
		r, err := schedule.ParseRange(start, end)
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			if msg, ok := verr.Fields["start_date"]; ok {
				bad[startFlag] = msg
			}
			if msg, ok := verr.Fields["end_date"]; ok {
				bad[endFlag] = msg
			}
		}
		return r
	}

	h := schedule.Hierarchy{
		Project:    parse("--project-start", f.projectStart, "--project-end", f.projectEnd),
		SubProject: parse("--sub-start", f.subStart, "--sub-end", f.subEnd),
		Task:       parse("--task-start", f.taskStart, "--task-end", f.taskEnd),
	}
	if len(bad) > 0 {
		return schedule.Hierarchy{}, flagError(bad)
	}
	return h, nil
}

// flagError renders malformed flags in a stable order.
func flagError(bad map[string]string) error {
	parts := make([]string, 0, len(bad))
	for _, name := range slices.Sorted(maps.Keys(bad)) {
		parts = append(parts, fmt.Sprintf("%s %s", name, bad[name]))
	}
	return fmt.Errorf("bad date flags: %s: %w", strings.Join(parts, "; "), domain.ErrValidation)
}
