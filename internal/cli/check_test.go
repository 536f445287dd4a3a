package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/owlbench/internal/testutil"
)

func TestCheckPassesWithReferenceCounts(t *testing.T) {
	counts := testutil.CampusCounts()
	expected := make(map[string]int)
	for _, name := range []string{"members", "suborganizations", "persons", "faculty"} {
		expected[name] = counts[name]
	}
	baseline := writeCounts(t, expected)
	suitePath := writeSuite(t, []string{"members", "suborganizations", "persons", "faculty"}, baseline)

	buf := &bytes.Buffer{}
	cmd := NewCheckCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{suitePath})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "baseline check passed")
}

func TestCheckFailsOnDrift(t *testing.T) {
	baseline := writeCounts(t, map[string]int{"persons": 4})
	suitePath := writeSuite(t, []string{"persons"}, baseline)

	buf := &bytes.Buffer{}
	cmd := NewCheckCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{suitePath})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, buf.String(), "persons: expected 4, got 5")
}

func TestCheckRequiresBaseline(t *testing.T) {
	suitePath := writeSuite(t, []string{"persons"}, "")

	cmd := NewCheckCommand(&RootOptions{Format: "text"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{suitePath})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
