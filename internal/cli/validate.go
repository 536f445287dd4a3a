package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/owlbench/internal/suite"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <suite.cue>",
		Short: "Validate a suite configuration without running it",
		Long: `Parse and validate the suite file against the configuration schema,
including the chosen backend's field requirements. Nothing is loaded or
evaluated.

Example:
  owlbench validate ./suites/campus.cue`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return validateSuite(cmd, rootOpts, args[0])
		},
	}
	return cmd
}

func validateSuite(cmd *cobra.Command, rootOpts *RootOptions, path string) error {
	out := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}

	s, err := suite.Load(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid suite", err)
	}

	return out.Success(s, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "suite %s: ok (backend=%s, queries=%d)\n",
			s.Name, s.Backend, len(s.Queries))
		return err
	})
}
