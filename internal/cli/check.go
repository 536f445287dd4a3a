package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/roach88/owlbench/internal/bench"
	"github.com/roach88/owlbench/internal/catalog"
	"github.com/roach88/owlbench/internal/suite"
)

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <suite.cue>",
		Short: "Run a suite and verify it against its baseline",
		Long: `Run the suite and compare every cardinality against the baseline file the
suite names. Any drift, failed query, or missing result exits non-zero.

Unlike run, check requires the suite to declare a baseline.

Example:
  owlbench check ./suites/campus.cue`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return checkSuite(cmd, rootOpts, args[0])
		},
	}
	return cmd
}

func checkSuite(cmd *cobra.Command, rootOpts *RootOptions, path string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	out := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}

	s, err := suite.Load(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load suite", err)
	}
	if s.Baseline == "" {
		return NewExitError(ExitCommandError, "suite declares no baseline to check against")
	}

	policy, err := bench.ParsePolicy(s.Policy)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid suite", err)
	}

	handle, err := s.Open(ctx)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open backend", err)
	}
	defer closeHandle(handle)

	report, err := bench.NewRunner(catalog.New(), handle, policy).Run(ctx, s.Queries)
	if err != nil {
		return WrapExitError(ExitFailure, "benchmark run failed", err)
	}

	if err := compareBaseline(out, report, s.Baseline); err != nil {
		return err
	}
	return out.Success("baseline check passed", nil)
}
