package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/assignment-schedule-service/internal/domain/schedule"
)

func newConstraintsCmd(opts *options) *cobra.Command {
	var (
		flags    rangeFlags
		level    string
		boundary string
	)

	cmd := &cobra.Command{
		Use:   "constraints",
		Short: "Show the selectable window of date pickers",
		Long: `Constraints prints the min/max window and disabled state that a date
picker derives from the given hierarchy. Without --level and --boundary all
six pickers are listed.`,
		Example: `  datectl constraints --level task --boundary start \
    --project-start 2024-01-01 --project-end 2024-12-31 --sub-start 2024-02-01 --sub-end 2024-03-31`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			levels, boundaries, err := pickerSelection(level, boundary)
			if err != nil {
				return err
			}
			h, err := flags.hierarchy()
			if err != nil {
				return err
			}

			ev := h.Evaluate()
			pickers := make([]pickerReport, 0, len(levels)*len(boundaries))
			for _, l := range levels {
				for _, b := range boundaries {
					c, _ := ev.Picker(l, b)
					pickers = append(pickers, pickerReport{
						Level:    l.String(),
						Boundary: b.String(),
						Min:      dateOrNil(c.Min),
						Max:      dateOrNil(c.Max),
						Disabled: c.Disabled,
					})
				}
			}

			if opts.output == outputJSON {
				return writeJSON(cmd.OutOrStdout(), pickers)
			}
			return writePickersText(cmd.OutOrStdout(), pickers)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&level, "level", "", "Level: main-project, sub-project or task")
	cmd.Flags().StringVar(&boundary, "boundary", "", "Boundary: start or end")

	return cmd
}

// pickerSelection narrows the picker grid to the requested level and
// boundary. Empty selects all.
func pickerSelection(level, boundary string) ([]schedule.Level, []schedule.Boundary, error) {
	levels := schedule.Levels()
	if level != "" {
		l, ok := schedule.ParseLevel(level)
		if !ok {
			return nil, nil, fmt.Errorf("invalid --level %q (valid: main-project, sub-project, task)", level)
		}
		levels = []schedule.Level{l}
	}

	boundaries := schedule.Boundaries()
	if boundary != "" {
		b := schedule.Boundary(boundary)
		if !b.IsValid() {
			return nil, nil, fmt.Errorf("invalid --boundary %q (valid: start, end)", boundary)
		}
		boundaries = []schedule.Boundary{b}
	}

	return levels, boundaries, nil
}
