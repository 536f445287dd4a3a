package cli

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/roach88/owlbench/internal/catalog"
	"github.com/roach88/owlbench/internal/loader"
	"github.com/roach88/owlbench/internal/ontology"
	"github.com/roach88/owlbench/internal/sparqlstore"
)

// QueryOptions holds flags for the query command.
type QueryOptions struct {
	*RootOptions
	Ontology string
	InFormat string
	Database string
	Endpoint string
}

// queryResult is the JSON shape of a single-query answer.
type queryResult struct {
	Query string     `json:"query"`
	Count int        `json:"count"`
	Rows  [][]string `json:"rows"`
}

// NewQueryCommand creates the query command.
func NewQueryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &QueryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "query <name>",
		Short: "Evaluate a single catalog query",
		Long: `Evaluate one query by name and print its answer rows and count.
The backend is chosen by flags: --ontology alone loads into memory,
--db adds a SQLite triple database, --endpoint targets a SPARQL store.

Example:
  owlbench query members --ontology ./campus.nt
  owlbench query members --ontology ./campus.nt --db ./campus.db
  owlbench query members --endpoint http://localhost:3030/bench/sparql`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.Ontology, "ontology", "", "ontology file to load")
	cmd.Flags().StringVar(&opts.InFormat, "ontology-format", "", "ontology format (ntriples|turtle|rdfxml), default by extension")
	cmd.Flags().StringVar(&opts.Database, "db", "", "SQLite triple database path")
	cmd.Flags().StringVar(&opts.Endpoint, "endpoint", "", "SPARQL endpoint URL")
	return cmd
}

func runQuery(cmd *cobra.Command, opts *QueryOptions, name string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}

	q, err := catalog.New().Get(name)
	if err != nil {
		return WrapExitError(ExitCommandError, "unknown query", err)
	}

	handle, err := openHandle(ctx, opts)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open backend", err)
	}
	defer closeHandle(handle)

	set, err := q.Evaluate(handle)
	if err != nil {
		return WrapExitError(ExitFailure, "query failed", ontology.AttributeQuery(name, err))
	}

	result := queryResult{Query: name, Count: set.Len()}
	for _, tup := range set.Tuples() {
		row := make([]string, tup.Arity())
		for i := range row {
			row[i] = tup.At(i).String()
		}
		result.Rows = append(result.Rows, row)
	}

	return out.Success(result, func(w io.Writer) error {
		for _, row := range result.Rows {
			if _, err := fmt.Fprintln(w, joinRow(row)); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, "%d results\n", result.Count)
		return err
	})
}

// openHandle builds the backend the flags describe.
func openHandle(ctx context.Context, opts *QueryOptions) (ontology.Handle, error) {
	switch {
	case opts.Endpoint != "":
		return sparqlstore.New(opts.Endpoint)
	case opts.Database != "":
		if opts.Ontology == "" {
			return nil, fmt.Errorf("--db requires --ontology to populate from")
		}
		return loader.OpenSQLite(ctx, opts.Ontology, opts.Database, loader.Format(opts.InFormat))
	case opts.Ontology != "":
		return loader.OpenMemory(ctx, opts.Ontology, loader.Format(opts.InFormat))
	}
	return nil, fmt.Errorf("one of --ontology, --db, or --endpoint is required")
}

func joinRow(row []string) string {
	s := row[0]
	for _, cell := range row[1:] {
		s += "\t" + cell
	}
	return s
}
