package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/owlbench/internal/testutil"
)

func TestQueryAgainstMemoryBackend(t *testing.T) {
	ontology := testutil.WriteCampusFile(t)

	buf := &bytes.Buffer{}
	cmd := NewQueryCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"members", "--ontology", ontology})

	require.NoError(t, cmd.Execute())
	out := buf.String()
	assert.Contains(t, out, "9 results")
	assert.Contains(t, out, "alice")
}

func TestQueryAgainstSQLiteBackend(t *testing.T) {
	ontology := testutil.WriteCampusFile(t)
	db := filepath.Join(t.TempDir(), "campus.db")

	buf := &bytes.Buffer{}
	cmd := NewQueryCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"suborganizations", "--ontology", ontology, "--db", db})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "4 results")
}

func TestQueryJSONRows(t *testing.T) {
	ontology := testutil.WriteCampusFile(t)

	buf := &bytes.Buffer{}
	cmd := NewQueryCommand(&RootOptions{Format: "json"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"cricket-fans", "--ontology", ontology})

	require.NoError(t, cmd.Execute())

	var resp struct {
		Status string      `json:"status"`
		Data   queryResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 1, resp.Data.Count)
	require.Len(t, resp.Data.Rows, 1)
	assert.Len(t, resp.Data.Rows[0], 1)
	assert.Contains(t, resp.Data.Rows[0][0], "bob")
}

func TestQueryUnknownName(t *testing.T) {
	cmd := NewQueryCommand(&RootOptions{Format: "text"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"bogus", "--ontology", "campus.nt"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestQueryRequiresBackendFlags(t *testing.T) {
	cmd := NewQueryCommand(&RootOptions{Format: "text"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"members"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
