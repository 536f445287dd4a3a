package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/roach88/owlbench/internal/testutil"
)

// writeSuite writes a memory-backend suite over the campus fixture,
// optionally pointing at a baseline file.
func writeSuite(t *testing.T, queries []string, baseline string) string {
	t.Helper()
	ontology := testutil.WriteCampusFile(t)

	src := fmt.Sprintf("name: %q\nbackend: \"memory\"\nontology: %q\n", "campus", ontology)
	if len(queries) > 0 {
		q, err := json.Marshal(queries)
		require.NoError(t, err)
		src += fmt.Sprintf("queries: %s\n", q)
	}
	if baseline != "" {
		src += fmt.Sprintf("baseline: %q\n", baseline)
	}

	path := filepath.Join(t.TempDir(), "campus.cue")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

// writeCounts writes a baseline YAML with the given expected counts.
func writeCounts(t *testing.T, expected map[string]int) string {
	t.Helper()
	data, err := yaml.Marshal(map[string]any{"name": "campus", "expected": expected})
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "baseline.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestRunSuiteText(t *testing.T) {
	suitePath := writeSuite(t, []string{"members", "ages"}, "")

	buf := &bytes.Buffer{}
	cmd := NewRunCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{suitePath})

	require.NoError(t, cmd.Execute())
	out := buf.String()
	assert.Contains(t, out, "members")
	assert.Contains(t, out, "ages")
	assert.Contains(t, out, "QUERY")
}

func TestRunSuiteJSONCounts(t *testing.T) {
	suitePath := writeSuite(t, nil, "")

	buf := &bytes.Buffer{}
	cmd := NewRunCommand(&RootOptions{Format: "json"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{suitePath})

	require.NoError(t, cmd.Execute())

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			Outcomes []struct {
				Query string `json:"query"`
				Count int    `json:"count"`
			} `json:"outcomes"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	require.Len(t, resp.Data.Outcomes, 14)

	counts := testutil.CampusCounts()
	for _, o := range resp.Data.Outcomes {
		assert.Equal(t, counts[o.Query], o.Count, "query %s", o.Query)
	}
}

func TestRunSuiteWithMatchingBaseline(t *testing.T) {
	baseline := writeCounts(t, map[string]int{"members": 9, "ages": 2})
	suitePath := writeSuite(t, []string{"members", "ages"}, baseline)

	cmd := NewRunCommand(&RootOptions{Format: "text"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{suitePath})

	require.NoError(t, cmd.Execute())
}

func TestRunSuiteBaselineDrift(t *testing.T) {
	baseline := writeCounts(t, map[string]int{"members": 7})
	suitePath := writeSuite(t, []string{"members"}, baseline)

	buf := &bytes.Buffer{}
	cmd := NewRunCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{suitePath})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, buf.String(), "expected 7, got 9")
}

func TestRunSuiteMissingFile(t *testing.T) {
	cmd := NewRunCommand(&RootOptions{Format: "text"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "absent.cue")})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestRunSuiteUnknownQuery(t *testing.T) {
	suitePath := writeSuite(t, []string{"members", "bogus"}, "")

	cmd := NewRunCommand(&RootOptions{Format: "text"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{suitePath})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}
