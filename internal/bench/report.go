package bench

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"
)

// Outcome is the result of one query evaluation within a run.
type Outcome struct {
	Query    string        `json:"query"`
	Count    int           `json:"count"`
	Duration time.Duration `json:"duration_ns"`
	Err      string        `json:"error,omitempty"`
}

// Failed reports whether the query's evaluation errored.
func (o Outcome) Failed() bool { return o.Err != "" }

// Report is the product of one benchmark run: per-query cardinalities in
// execution order, under a single run identity.
type Report struct {
	RunID    string    `json:"run_id"`
	Started  time.Time `json:"started"`
	Policy   Policy    `json:"policy"`
	Outcomes []Outcome `json:"outcomes"`
}

// Failures counts failed outcomes.
func (r *Report) Failures() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Failed() {
			n++
		}
	}
	return n
}

// Counts returns the cardinalities of the successful outcomes, keyed by
// query name.
func (r *Report) Counts() map[string]int {
	counts := make(map[string]int, len(r.Outcomes))
	for _, o := range r.Outcomes {
		if !o.Failed() {
			counts[o.Query] = o.Count
		}
	}
	return counts
}

// WriteJSON renders the report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// WriteText renders the report as an aligned table.
func (r *Report) WriteText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "run %s (%s)\n", r.RunID, r.Policy); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "QUERY\tCOUNT\tDURATION\tSTATUS")
	for _, o := range r.Outcomes {
		status := "ok"
		if o.Failed() {
			status = "error: " + o.Err
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n",
			o.Query, o.Count, o.Duration.Round(time.Microsecond), status)
	}
	return tw.Flush()
}
