package bench

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeBaseline(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "baseline.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadBaseline(t *testing.T) {
	path := writeBaseline(t, `
name: campus
expected:
  members: 9
  ages: 2
`)
	b, err := LoadBaseline(path)
	require.NoError(t, err)
	assert.Equal(t, "campus", b.Name)
	assert.Equal(t, map[string]int{"members": 9, "ages": 2}, b.Expected)
}

func TestLoadBaselineRejectsEmpty(t *testing.T) {
	path := writeBaseline(t, "name: empty\n")
	_, err := LoadBaseline(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no expected counts")
}

func TestLoadBaselineRejectsNegativeCounts(t *testing.T) {
	path := writeBaseline(t, `
name: bad
expected:
  members: -1
`)
	_, err := LoadBaseline(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative count")
}

func TestLoadBaselineMissingFile(t *testing.T) {
	_, err := LoadBaseline(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestCompareCleanRun(t *testing.T) {
	b := &Baseline{Name: "campus", Expected: map[string]int{"members": 9, "ages": 2}}
	assert.Empty(t, b.Compare(fixedReport()))
}

func TestCompareFindsDrift(t *testing.T) {
	b := &Baseline{Name: "campus", Expected: map[string]int{
		"members": 7,  // wrong count
		"ages":    2,  // matches
		"persons": 5,  // ran but failed
		"faculty": 2,  // never ran
	}}
	drifts := b.Compare(fixedReport())
	require.Len(t, drifts, 3)

	// Sorted by query name.
	assert.Equal(t, Drift{Query: "faculty", Expected: 2, Actual: -1}, drifts[0])
	assert.Equal(t, Drift{Query: "members", Expected: 7, Actual: 9}, drifts[1])
	assert.Equal(t, Drift{Query: "persons", Expected: 5, Actual: -1}, drifts[2])

	assert.Equal(t, "members: expected 7, got 9", drifts[1].String())
	assert.Equal(t, "persons: expected 5, got no result", drifts[2].String())
}
