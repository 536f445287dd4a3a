package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/owlbench/internal/ontology"
	"github.com/roach88/owlbench/internal/rdf"
	"github.com/roach88/owlbench/internal/testutil"
)

func TestCatalogHoldsAllQueriesInOrder(t *testing.T) {
	c := New()
	require.Equal(t, 22, c.Len())

	names := c.Names()
	assert.Equal(t, "knows", names[0])
	assert.Equal(t, "dean-course-students", names[len(names)-1])

	seen := make(map[string]bool)
	for _, q := range c.All() {
		assert.False(t, seen[q.Name], "duplicate query name %s", q.Name)
		seen[q.Name] = true
		assert.Contains(t, []int{1, 2}, q.Arity, "query %s", q.Name)
		assert.NotEmpty(t, q.Construct, "query %s", q.Name)
		assert.NotEmpty(t, q.Profiles, "query %s", q.Name)
		assert.NotNil(t, q.Evaluate, "query %s", q.Name)
	}
}

func TestGetUnknownQuery(t *testing.T) {
	c := New()

	q, err := c.Get("members")
	require.NoError(t, err)
	assert.Equal(t, 2, q.Arity)

	_, err = c.Get("nonexistent")
	require.Error(t, err)
	assert.True(t, ontology.IsNotFound(err))
	var nf *ontology.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, ontology.KindQuery, nf.Kind)
}

func TestDefaultRLSubset(t *testing.T) {
	c := New()
	subset := DefaultRLSubset()
	require.Len(t, subset, 14)

	for _, name := range subset {
		q, err := c.Get(name)
		require.NoError(t, err, name)
		assert.True(t, q.InProfile(ProfileRL), "query %s not tagged RL", name)
	}
	assert.NotContains(t, subset, "headed-organizations")
}

func TestQueriesMatchCampusCounts(t *testing.T) {
	h := testutil.CampusHandle(t)
	counts := testutil.CampusCounts()
	for _, q := range New().All() {
		t.Run(q.Name, func(t *testing.T) {
			set, err := q.Evaluate(h)
			require.NoError(t, err)
			assert.Equal(t, counts[q.Name], set.Len())
			for _, tup := range set.Tuples() {
				assert.Equal(t, q.Arity, tup.Arity())
			}
		})
	}
}

func TestKnowsKeepsAssertedSelfPair(t *testing.T) {
	h := testutil.CampusHandle(t)
	q, err := New().Get("knows")
	require.NoError(t, err)

	set, err := q.Evaluate(h)
	require.NoError(t, err)
	alice := BenchIRI("alice")
	assert.True(t, set.Contains(rdf.T2(alice, alice)))
	// No global reflexive expansion: bob never asserted knowing himself.
	bob := BenchIRI("bob")
	assert.False(t, set.Contains(rdf.T2(bob, bob)))
}

func TestAgesSkipsPersonsWithoutValue(t *testing.T) {
	h := testutil.CampusHandle(t)
	q, err := New().Get("ages")
	require.NoError(t, err)

	set, err := q.Evaluate(h)
	require.NoError(t, err)
	require.Equal(t, 2, set.Len())
	for _, tup := range set.Tuples() {
		assert.NotEqual(t, BenchIRI("carol"), tup.At(0))
	}
}

func TestEngineeringStudentsProjection(t *testing.T) {
	h := testutil.CampusHandle(t)
	q, err := New().Get("engineering-students")
	require.NoError(t, err)

	set, err := q.Evaluate(h)
	require.NoError(t, err)
	require.Equal(t, 1, set.Len())
	// The parent organization is a join variable, not a projected column.
	assert.True(t, set.Contains(rdf.T2(BenchIRI("alice"), BenchIRI("csDept"))))
}

func TestDeanCourseStudentsProjection(t *testing.T) {
	h := testutil.CampusHandle(t)
	q, err := New().Get("dean-course-students")
	require.NoError(t, err)

	set, err := q.Evaluate(h)
	require.NoError(t, err)
	assert.True(t, set.Contains(rdf.T2(BenchIRI("alice"), BenchIRI("cs500"))))
	// math101 is taught, but not by a dean.
	assert.False(t, set.Contains(rdf.T2(BenchIRI("alice"), BenchIRI("math101"))))
}

func TestEvaluateIsIdempotent(t *testing.T) {
	h := testutil.CampusHandle(t)
	q, err := New().Get("members")
	require.NoError(t, err)

	first, err := q.Evaluate(h)
	require.NoError(t, err)
	second, err := q.Evaluate(h)
	require.NoError(t, err)
	assert.True(t, first.Equal(second))
}

// noScan hides the backend's one-pass property scan so evaluation takes the
// per-individual fallback.
type noScan struct {
	ontology.Handle
}

func TestScanFallbackAgreesWithFastPath(t *testing.T) {
	h := testutil.CampusHandle(t)
	q, err := New().Get("collaborations")
	require.NoError(t, err)

	fast, err := q.Evaluate(h)
	require.NoError(t, err)
	slow, err := q.Evaluate(noScan{Handle: h})
	require.NoError(t, err)
	assert.True(t, fast.Equal(slow))
}
