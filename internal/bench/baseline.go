package bench

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Baseline holds the reference cardinalities a dataset is expected to
// produce. Stored as YAML next to the dataset it describes.
type Baseline struct {
	// Name labels the dataset the counts were taken from.
	Name string `yaml:"name"`

	// Expected maps query names to their reference counts.
	Expected map[string]int `yaml:"expected"`
}

// LoadBaseline reads and validates a baseline file.
func LoadBaseline(path string) (*Baseline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read baseline: %w", err)
	}
	var b Baseline
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parse baseline %s: %w", path, err)
	}
	if len(b.Expected) == 0 {
		return nil, fmt.Errorf("baseline %s declares no expected counts", path)
	}
	for name, n := range b.Expected {
		if n < 0 {
			return nil, fmt.Errorf("baseline %s: negative count for %s", path, name)
		}
	}
	return &b, nil
}

// Drift is one disagreement between a run and a baseline. Actual is -1 for
// queries the baseline expects but the run failed or never executed.
type Drift struct {
	Query    string
	Expected int
	Actual   int
}

func (d Drift) String() string {
	if d.Actual < 0 {
		return fmt.Sprintf("%s: expected %d, got no result", d.Query, d.Expected)
	}
	return fmt.Sprintf("%s: expected %d, got %d", d.Query, d.Expected, d.Actual)
}

// Compare checks a run's counts against the baseline. Queries the run
// executed but the baseline does not mention are ignored; queries the
// baseline mentions but the run did not produce drift with Actual -1.
// Returns drifts sorted by query name; empty means the run matches.
func (b *Baseline) Compare(r *Report) []Drift {
	var drifts []Drift
	counts := r.Counts()
	for name, want := range b.Expected {
		got, ok := counts[name]
		switch {
		case !ok:
			drifts = append(drifts, Drift{Query: name, Expected: want, Actual: -1})
		case got != want:
			drifts = append(drifts, Drift{Query: name, Expected: want, Actual: got})
		}
	}

	sort.Slice(drifts, func(i, j int) bool { return drifts[i].Query < drifts[j].Query })
	return drifts
}
