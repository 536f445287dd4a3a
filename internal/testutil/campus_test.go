package testutil

import (
	"bufio"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCampusHandleMaterializes(t *testing.T) {
	h := CampusHandle(t)

	// Person is union-defined; all five people classify into it.
	persons, err := h.Members(iri("Person"))
	require.NoError(t, err)
	assert.Len(t, persons, 5)

	// Membership climbs the organization tree through the property chain.
	orgs, err := h.Related(iri("alice"), iri("isMemberOf"))
	require.NoError(t, err)
	assert.Len(t, orgs, 3)
}

func TestWriteCampusFile(t *testing.T) {
	path := WriteCampusFile(t)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	lines := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		require.True(t, strings.HasSuffix(sc.Text(), " ."), "line %d not terminated", lines+1)
		lines++
	}
	require.NoError(t, sc.Err())
	assert.Equal(t, len(CampusTriples()), lines)
}

func TestCampusCountsCoverAllQueries(t *testing.T) {
	counts := CampusCounts()
	assert.Len(t, counts, 22)
	for name, n := range counts {
		assert.Greater(t, n, 0, "query %s has a zero expected count", name)
	}
}
