// Package bench runs a configured subset of the query catalog against one
// backend and reduces the answers to cardinalities.
//
// A run never inspects result contents beyond counting: the benchmark's
// observable is the count, and correctness checking against reference
// counts is the baseline's job.
package bench

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/roach88/owlbench/internal/catalog"
	"github.com/roach88/owlbench/internal/ontology"
)

// Policy selects how a run reacts to a failing query.
type Policy string

const (
	// PolicyBestEffort evaluates every listed query, recording failures
	// as outcomes alongside the successes. The default.
	PolicyBestEffort Policy = "best-effort"

	// PolicyAbortFirst stops at the first failing query and surfaces its
	// error, returning the partial report accumulated so far.
	PolicyAbortFirst Policy = "abort-first"
)

// ParsePolicy resolves a policy name, defaulting empty to best-effort.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case "":
		return PolicyBestEffort, nil
	case PolicyBestEffort, PolicyAbortFirst:
		return Policy(s), nil
	}
	return "", fmt.Errorf("unknown failure policy %q (want %s or %s)",
		s, PolicyBestEffort, PolicyAbortFirst)
}

// Runner evaluates catalog queries against a single backend handle.
type Runner struct {
	catalog *catalog.Catalog
	handle  ontology.Handle
	policy  Policy
}

// NewRunner builds a runner. A zero policy means best-effort.
func NewRunner(c *catalog.Catalog, h ontology.Handle, policy Policy) *Runner {
	if policy == "" {
		policy = PolicyBestEffort
	}
	return &Runner{catalog: c, handle: h, policy: policy}
}

// Run evaluates the named queries in the given order and returns their
// cardinalities. An empty allow-list runs the default RL subset.
//
// Every name is resolved before any query executes: one unknown name fails
// the whole run up front, evaluating nothing. Evaluation failures are
// handled per the runner's policy.
func (r *Runner) Run(ctx context.Context, names []string) (*Report, error) {
	if len(names) == 0 {
		names = catalog.DefaultRLSubset()
	}

	queries := make([]*catalog.Query, 0, len(names))
	for _, name := range names {
		q, err := r.catalog.Get(name)
		if err != nil {
			return nil, err
		}
		queries = append(queries, q)
	}

	report := &Report{
		RunID:   uuid.Must(uuid.NewV7()).String(),
		Started: time.Now().UTC(),
		Policy:  r.policy,
	}
	slog.Info("benchmark run starting",
		"run_id", report.RunID, "queries", len(queries), "policy", r.policy)

	for _, q := range queries {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		start := time.Now()
		set, err := q.Evaluate(r.handle)
		elapsed := time.Since(start)

		if err != nil {
			err = ontology.AttributeQuery(q.Name, err)
			slog.Warn("query failed",
				"run_id", report.RunID, "query", q.Name, "error", err)
			if r.policy == PolicyAbortFirst {
				return report, err
			}
			report.Outcomes = append(report.Outcomes, Outcome{
				Query:    q.Name,
				Duration: elapsed,
				Err:      err.Error(),
			})
			continue
		}

		slog.Debug("query complete",
			"run_id", report.RunID, "query", q.Name,
			"count", set.Len(), "duration", elapsed)
		report.Outcomes = append(report.Outcomes, Outcome{
			Query:    q.Name,
			Count:    set.Len(),
			Duration: elapsed,
		})
	}

	slog.Info("benchmark run complete",
		"run_id", report.RunID, "failures", report.Failures())
	return report, nil
}
