package bench

import (
	"bytes"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedReport is a report with pinned identity and durations so rendering
// is byte-stable.
func fixedReport() *Report {
	return &Report{
		RunID:   "run-fixed",
		Started: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Policy:  PolicyBestEffort,
		Outcomes: []Outcome{
			{Query: "members", Count: 9, Duration: 1500 * time.Microsecond},
			{Query: "ages", Count: 2, Duration: 250 * time.Microsecond},
			{Query: "persons", Duration: 10 * time.Microsecond,
				Err: "backend members failed (query=persons): boom"},
		},
	}
}

func TestReportJSONGolden(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, fixedReport().WriteJSON(&buf))

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "report", buf.Bytes())
}

func TestReportText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, fixedReport().WriteText(&buf))

	out := buf.String()
	assert.Contains(t, out, "run run-fixed (best-effort)")
	assert.Contains(t, out, "QUERY")
	assert.Contains(t, out, "members")
	assert.Contains(t, out, "error: backend members failed")
}

func TestReportCountsAndFailures(t *testing.T) {
	r := fixedReport()
	assert.Equal(t, 1, r.Failures())
	assert.Equal(t, map[string]int{"members": 9, "ages": 2}, r.Counts())
}
