package cli

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/roach88/owlbench/internal/bench"
	"github.com/roach88/owlbench/internal/catalog"
	"github.com/roach88/owlbench/internal/ontology"
	"github.com/roach88/owlbench/internal/suite"
)

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <suite.cue>",
		Short: "Run a benchmark suite",
		Long: `Load the suite configuration, open its backend, evaluate the configured
query allow-list, and print per-query cardinalities.

If the suite names a baseline file, the run is compared against it and
drift fails the command.

Example:
  owlbench run ./suites/campus.cue
  owlbench run ./suites/campus.cue --format json --verbose`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuite(cmd, rootOpts, args[0])
		},
	}
	return cmd
}

func runSuite(cmd *cobra.Command, rootOpts *RootOptions, path string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	out := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}

	s, err := suite.Load(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load suite", err)
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

	runner := bench.NewRunner(catalog.New(), handle, policy)
	report, err := runner.Run(ctx, s.Queries)
	if err != nil {
		return WrapExitError(ExitFailure, "benchmark run failed", err)
	}

	if err := out.Success(report, report.WriteText); err != nil {
		return err
	}

	if s.Baseline != "" {
		if err := compareBaseline(out, report, s.Baseline); err != nil {
			return err
		}
	}
	if n := report.Failures(); n > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d queries failed", n))
	}
	return nil
}

// compareBaseline checks a report against a baseline file, failing the
// command on drift.
func compareBaseline(out *OutputFormatter, report *bench.Report, path string) error {
	baseline, err := bench.LoadBaseline(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load baseline", err)
	}
	drifts := baseline.Compare(report)
	if len(drifts) == 0 {
		return nil
	}
	for _, d := range drifts {
		if err := out.Fail(d.String()); err != nil {
			return err
		}
	}
	return NewExitError(ExitFailure,
		fmt.Sprintf("%d queries drifted from baseline %s", len(drifts), baseline.Name))
}

// closeHandle releases backend resources when the backend holds any.
func closeHandle(h ontology.Handle) {
	if c, ok := h.(ontology.Closer); ok {
		_ = c.Close()
	}
}
