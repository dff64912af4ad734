package cli

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/assignment-schedule-service/internal/domain"
	"github.com/jsamuelsen11/assignment-schedule-service/internal/domain/schedule"
)

func newBulkCmd(opts *options) *cobra.Command {
	var (
		flags      rangeFlags
		operation  string
		rangeStart string
		rangeEnd   string
	)

	cmd := &cobra.Command{
		Use:   "bulk",
		Short: "Dry-run a bulk date operation",
		Long: `Bulk resolves the range a bulk operation would write: --range-start and
--range-end when given, otherwise the source level's own range. It checks the
operation is enabled and that the range fits the target level. Nothing is
written.`,
		Example: `  datectl bulk --operation hierarchical --project-start 2024-01-01 --project-end 2024-06-30
  datectl bulk --operation tasks --sub-start 2024-02-01 --sub-end 2024-02-29 \
    --project-start 2024-01-01 --project-end 2024-06-30 --range-start 2024-02-05 --range-end 2024-02-20`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			h, err := flags.hierarchy()
			if err != nil {
				return err
			}

			var override *schedule.DateRange
			if rangeStart != "" || rangeEnd != "" {
				r, err := schedule.ParseRange(rangeStart, rangeEnd)
				if err != nil {
					return err
				}
				override = &r
			}

			op := schedule.BulkOperation(operation)
			rep := bulkReport{Operation: operation, Enabled: h.BulkEnabled(op), Targets: bulkTargets(op)}

			plan, err := h.PlanBulk(op, override)
			if err == nil {
				err = plan.Err()
				rep.Start, rep.End = dateOrNil(plan.Range.Start), dateOrNil(plan.Range.End)
			}
			if err != nil {
				var verr *domain.ValidationError
				if !errors.As(err, &verr) {
					return err
				}
				rep.Error = fieldsText(verr.Fields)
			}

			opts.logger.DebugContext(cmd.Context(), "bulk planned",
				slog.String("bulk_operation", operation),
				slog.Bool("enabled", rep.Enabled),
				slog.String("error", rep.Error),
			)

			out := cmd.OutOrStdout()
			if opts.output == outputJSON {
				err = writeJSON(out, rep)
			} else {
				err = writeBulkText(out, rep)
			}
			if err != nil {
				return err
			}

			if rep.Error != "" {
				return ErrInvalid
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&operation, "operation", "", "Operation: sub-projects, hierarchical or tasks")
	cmd.Flags().StringVar(&rangeStart, "range-start", "", "Start of the range to apply (defaults to the source range)")
	cmd.Flags().StringVar(&rangeEnd, "range-end", "", "End of the range to apply (defaults to the source range)")
	_ = cmd.MarkFlagRequired("operation")

	return cmd
}

func bulkTargets(op schedule.BulkOperation) string {
	switch op {
	case schedule.BulkSubProjects:
		return "every sub-project"
	case schedule.BulkHierarchical:
		return "every sub-project and task"
	case schedule.BulkTasks:
		return "every task of the sub-project"
	default:
		return ""
	}
}

// fieldsText renders validation fields as "field: message" pairs in a
// stable order.
func fieldsText(fields map[string]string) string {
	msg := (&domain.ValidationError{Fields: fields}).Error()
	return strings.TrimPrefix(msg, domain.ErrValidation.Error()+": ")
}
