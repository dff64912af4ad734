// Package cli provides the datectl command tree: offline checks of a
// project / sub-project / task hierarchy for support staff and scripts.
// Nothing here talks to the platform API.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/assignment-schedule-service/internal/platform/logging"
)

const (
	outputText = "text"
	outputJSON = "json"
)

// ErrInvalid is returned when the checked hierarchy or bulk plan breaks a
// date rule. main maps it to a non-zero exit status.
var ErrInvalid = errors.New("schedule is invalid")

// options holds the persistent flags shared by every subcommand.
type options struct {
	output   string
	logLevel string
	logger   *slog.Logger
}

// NewRootCmd creates the top-level "datectl" command and registers all
// subcommands.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "datectl",
		Short:         "Check project, sub-project and task date ranges offline",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if opts.output != outputText && opts.output != outputJSON {
				return fmt.Errorf("invalid --output %q (valid: %s, %s)", opts.output, outputText, outputJSON)
			}
			opts.logger = logging.New(opts.logLevel, "text", cmd.ErrOrStderr())
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&opts.output, "output", "o", outputText, "Output format: text or json")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level written to stderr")

	root.AddCommand(
		newValidateCmd(opts),
		newConstraintsCmd(opts),
		newBulkCmd(opts),
	)

	return root
}

// Execute runs the command tree with os.Args and returns the process exit
// code.
func Execute() int {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		if !errors.Is(err, ErrInvalid) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		return 1
	}
	return 0
}
