package cli

import (
	"log/slog"

	"github.com/spf13/cobra"
)

func newValidateCmd(opts *options) *cobra.Command {
	var flags rangeFlags

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a project / sub-project / task hierarchy",
		Long: `Validate checks ordering, parent presence and containment at every level
and reports which bulk operations the hierarchy enables. The exit status is
non-zero when any level is invalid.`,
		Example: `  datectl validate --project-start 2024-01-01 --project-end 2024-12-31 \
    --sub-start 2024-02-01 --sub-end 2024-03-31 --task-start 2024-04-01`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			h, err := flags.hierarchy()
			if err != nil {
				return err
			}

			rep := newValidateReport(h)
			opts.logger.DebugContext(cmd.Context(), "hierarchy evaluated",
				slog.Bool("valid", rep.Valid),
				slog.String("project", h.Project.String()),
				slog.String("sub_project", h.SubProject.String()),
				slog.String("task", h.Task.String()),
			)

			out := cmd.OutOrStdout()
			if opts.output == outputJSON {
				err = writeJSON(out, rep)
			} else {
				err = writeValidateText(out, rep)
			}
			if err != nil {
				return err
			}

			if !rep.Valid {
				return ErrInvalid
			}
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
