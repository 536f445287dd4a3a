package inference

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/owlbench/internal/rdf"
)

const ns = "http://benchmark/OWL2Bench#"

func iri(local string) rdf.Term { return rdf.NewIRI(ns + local) }

func spo(s, p, o rdf.Term) rdf.Triple { return rdf.Triple{S: s, P: p, O: o} }

func runClosure(t *testing.T, ts []rdf.Triple) *Materializer {
	t.Helper()
	m := New(ts)
	_, err := m.Run(context.Background())
	require.NoError(t, err)
	return m
}

func TestTransitiveProperty(t *testing.T) {
	isPartOf := iri("isPartOf")
	a, b, c, d := iri("DeptA"), iri("CollegeB"), iri("UnivC"), iri("SystemD")

	m := runClosure(t, []rdf.Triple{
		spo(isPartOf, rdf.Type, rdf.OWLTransitiveProperty),
		spo(a, isPartOf, b),
		spo(b, isPartOf, c),
		spo(c, isPartOf, d),
	})

	assert.True(t, m.g.has(spo(a, isPartOf, c)))
	assert.True(t, m.g.has(spo(a, isPartOf, d)), "closure must cover two hops")
	assert.True(t, m.g.has(spo(b, isPartOf, d)))
	assert.False(t, m.g.has(spo(b, isPartOf, a)), "transitivity is not symmetry")
}

func TestSymmetricProperty(t *testing.T) {
	collab := iri("hasCollaborationWith")
	x, y := iri("Alice"), iri("Bob")

	m := runClosure(t, []rdf.Triple{
		spo(collab, rdf.Type, rdf.OWLSymmetricProperty),
		spo(x, collab, y),
	})

	assert.True(t, m.g.has(spo(y, collab, x)))
}

func TestInverseProperty(t *testing.T) {
	hasDegreeFrom, hasAlumnus := iri("hasDegreeFrom"), iri("hasAlumnus")
	p, u := iri("Alice"), iri("UnivC")

	m := runClosure(t, []rdf.Triple{
		spo(hasAlumnus, rdf.OWLInverseOf, hasDegreeFrom),
		spo(p, hasDegreeFrom, u),
	})

	assert.True(t, m.g.has(spo(u, hasAlumnus, p)), "inverse holds in both directions")
}

func TestPropertyChain(t *testing.T) {
	isMemberOf, isStudentOf, isPartOf := iri("isMemberOf"), iri("isStudentOf"), iri("isPartOf")
	s, college, univ := iri("Alice"), iri("CollegeB"), iri("UnivC")
	listNode := rdf.NewBlank("chain1")

	m := runClosure(t, []rdf.Triple{
		spo(isMemberOf, rdf.OWLPropertyChain, listNode),
		spo(listNode, rdf.First, isStudentOf),
		spo(listNode, rdf.Rest, rdf.NewBlank("chain2")),
		spo(rdf.NewBlank("chain2"), rdf.First, isPartOf),
		spo(rdf.NewBlank("chain2"), rdf.Rest, rdf.Nil),
		spo(s, isStudentOf, college),
		spo(college, isPartOf, univ),
	})

	assert.True(t, m.g.has(spo(s, isMemberOf, univ)), "chain isStudentOf∘isPartOf ⊑ isMemberOf")
	assert.False(t, m.g.has(spo(s, isMemberOf, college)), "single hop does not satisfy a two-hop chain")
}

func TestChainFeedsTransitivity(t *testing.T) {
	// isMemberOf derived by chain over the transitive closure of isPartOf.
	isMemberOf, isStudentOf, isPartOf := iri("isMemberOf"), iri("isStudentOf"), iri("isPartOf")
	s, dept, college, univ := iri("Alice"), iri("DeptA"), iri("CollegeB"), iri("UnivC")
	l1, l2 := rdf.NewBlank("l1"), rdf.NewBlank("l2")

	m := runClosure(t, []rdf.Triple{
		spo(isPartOf, rdf.Type, rdf.OWLTransitiveProperty),
		spo(isMemberOf, rdf.OWLPropertyChain, l1),
		spo(l1, rdf.First, isStudentOf),
		spo(l1, rdf.Rest, l2),
		spo(l2, rdf.First, isPartOf),
		spo(l2, rdf.Rest, rdf.Nil),
		spo(s, isStudentOf, dept),
		spo(dept, isPartOf, college),
		spo(college, isPartOf, univ),
	})

	assert.True(t, m.g.has(spo(s, isMemberOf, univ)),
		"chain must see transitive entailments from earlier rounds")
}

func TestSubPropertyAndDomainRange(t *testing.T) {
	teaches, involvedWith := iri("teachesCourse"), iri("isInvolvedWith")
	person, course := iri("Person"), iri("Course")
	x, y := iri("Carol"), iri("Math101")

	m := runClosure(t, []rdf.Triple{
		spo(teaches, rdf.SubPropertyOf, involvedWith),
		spo(teaches, rdf.Domain, person),
		spo(teaches, rdf.Range, course),
		spo(x, teaches, y),
	})

	assert.True(t, m.g.has(spo(x, involvedWith, y)))
	assert.True(t, m.g.has(spo(x, rdf.Type, person)))
	assert.True(t, m.g.has(spo(y, rdf.Type, course)))
}

func TestSubClassPropagation(t *testing.T) {
	student, person := iri("Student"), iri("Person")
	x := iri("Alice")

	m := runClosure(t, []rdf.Triple{
		spo(student, rdf.SubClassOf, person),
		spo(x, rdf.Type, student),
	})

	assert.True(t, m.g.has(spo(x, rdf.Type, person)))
}

func TestUnionDefinition(t *testing.T) {
	// Person ≡ Man ∪ Woman.
	person, man, woman := iri("Person"), iri("Man"), iri("Woman")
	def, l1, l2 := rdf.NewBlank("def"), rdf.NewBlank("u1"), rdf.NewBlank("u2")
	x, y := iri("Alice"), iri("Bob")

	m := runClosure(t, []rdf.Triple{
		spo(person, rdf.OWLEquivalentClass, def),
		spo(def, rdf.OWLUnionOf, l1),
		spo(l1, rdf.First, woman),
		spo(l1, rdf.Rest, l2),
		spo(l2, rdf.First, man),
		spo(l2, rdf.Rest, rdf.Nil),
		spo(x, rdf.Type, woman),
		spo(y, rdf.Type, man),
	})

	assert.True(t, m.g.has(spo(x, rdf.Type, person)))
	assert.True(t, m.g.has(spo(y, rdf.Type, person)))
}

func TestHasValueDefinition(t *testing.T) {
	// T20CricketFan ≡ crazyAbout value T20Cricket.
	fan, crazyAbout, cricket := iri("T20CricketFan"), iri("isCrazyAbout"), iri("T20Cricket")
	def := rdf.NewBlank("hv")
	x, y := iri("Alice"), iri("Bob")

	m := runClosure(t, []rdf.Triple{
		spo(fan, rdf.OWLEquivalentClass, def),
		spo(def, rdf.Type, rdf.OWLRestriction),
		spo(def, rdf.OWLOnProperty, crazyAbout),
		spo(def, rdf.OWLHasValue, cricket),
		spo(x, crazyAbout, cricket),
		spo(y, crazyAbout, iri("Chess")),
	})

	assert.True(t, m.g.has(spo(x, rdf.Type, fan)))
	assert.False(t, m.g.has(spo(y, rdf.Type, fan)))
}

func TestHasSelfDefinition(t *testing.T) {
	// SelfAwarePerson ≡ knows Self.
	aware, knows := iri("SelfAwarePerson"), iri("knows")
	def := rdf.NewBlank("hs")
	x, y := iri("Alice"), iri("Bob")

	m := runClosure(t, []rdf.Triple{
		spo(aware, rdf.OWLEquivalentClass, def),
		spo(def, rdf.OWLOnProperty, knows),
		spo(def, rdf.OWLHasSelf, rdf.NewLiteral("true")),
		spo(x, knows, x),
		spo(y, knows, x),
	})

	assert.True(t, m.g.has(spo(x, rdf.Type, aware)))
	assert.False(t, m.g.has(spo(y, rdf.Type, aware)))
}

func TestSomeValuesFromDefinition(t *testing.T) {
	// Faculty ≡ Employee ⊓ ∃teachesCourse.Course.
	faculty, employee, course, teaches := iri("Faculty"), iri("Employee"), iri("Course"), iri("teachesCourse")
	def, inter, i1, some := rdf.NewBlank("def"), rdf.NewBlank("inter"), rdf.NewBlank("i1"), rdf.NewBlank("some")
	x, y := iri("Carol"), iri("Dave")

	m := runClosure(t, []rdf.Triple{
		spo(faculty, rdf.OWLEquivalentClass, def),
		spo(def, rdf.OWLIntersectionOf, inter),
		spo(inter, rdf.First, employee),
		spo(inter, rdf.Rest, i1),
		spo(i1, rdf.First, some),
		spo(i1, rdf.Rest, rdf.Nil),
		spo(some, rdf.OWLOnProperty, teaches),
		spo(some, rdf.OWLSomeValuesFrom, course),
		spo(x, rdf.Type, employee),
		spo(x, teaches, iri("Math101")),
		spo(iri("Math101"), rdf.Type, course),
		spo(y, rdf.Type, employee), // teaches nothing
	})

	assert.True(t, m.g.has(spo(x, rdf.Type, faculty)))
	assert.False(t, m.g.has(spo(y, rdf.Type, faculty)))
}

func TestCardinalityDefinitions(t *testing.T) {
	student, takes := iri("Student"), iri("takesCourse")
	leisure := iri("LeisureStudent") // Student ⊓ ≤1 takesCourse
	busy := iri("BusyStudent")       // Student ⊓ ≥2 takesCourse
	single := iri("SingleCourseStudent")

	mkDef := func(class rdf.Term, defNode, interNode, restNode, restListNode string, cardPred rdf.Term, n string) []rdf.Triple {
		def, inter, rest, l2 := rdf.NewBlank(defNode), rdf.NewBlank(interNode), rdf.NewBlank(restNode), rdf.NewBlank(restListNode)
		return []rdf.Triple{
			spo(class, rdf.OWLEquivalentClass, def),
			spo(def, rdf.OWLIntersectionOf, inter),
			spo(inter, rdf.First, student),
			spo(inter, rdf.Rest, l2),
			spo(l2, rdf.First, rest),
			spo(l2, rdf.Rest, rdf.Nil),
			spo(rest, rdf.OWLOnProperty, takes),
			spo(rest, cardPred, rdf.NewLiteral(n)),
		}
	}

	var ts []rdf.Triple
	ts = append(ts, mkDef(leisure, "d1", "n1", "r1", "e1", rdf.OWLMaxCardinality, "1")...)
	ts = append(ts, mkDef(busy, "d2", "n2", "r2", "e2", rdf.OWLMinCardinality, "2")...)
	ts = append(ts, mkDef(single, "d3", "n3", "r3", "e3", rdf.OWLCardinality, "1")...)

	alice, bob := iri("Alice"), iri("Bob")
	ts = append(ts,
		spo(alice, rdf.Type, student),
		spo(alice, takes, iri("Math101")),
		spo(bob, rdf.Type, student),
		spo(bob, takes, iri("Math101")),
		spo(bob, takes, iri("Bio201")),
	)

	m := runClosure(t, ts)

	assert.True(t, m.g.has(spo(alice, rdf.Type, leisure)))
	assert.True(t, m.g.has(spo(alice, rdf.Type, single)))
	assert.False(t, m.g.has(spo(alice, rdf.Type, busy)))

	assert.True(t, m.g.has(spo(bob, rdf.Type, busy)))
	assert.False(t, m.g.has(spo(bob, rdf.Type, leisure)))
	assert.False(t, m.g.has(spo(bob, rdf.Type, single)))
}

func TestAllValuesFromDefinition(t *testing.T) {
	// WomanCollege ≡ College ⊓ ∀hasStudent.Woman.
	womanCollege, college, woman, hasStudent := iri("WomanCollege"), iri("College"), iri("Woman"), iri("hasStudent")
	def, inter, l2, rest := rdf.NewBlank("def"), rdf.NewBlank("inter"), rdf.NewBlank("l2"), rdf.NewBlank("rest")
	c1, c2 := iri("SmithCollege"), iri("StateCollege")

	m := runClosure(t, []rdf.Triple{
		spo(womanCollege, rdf.OWLEquivalentClass, def),
		spo(def, rdf.OWLIntersectionOf, inter),
		spo(inter, rdf.First, college),
		spo(inter, rdf.Rest, l2),
		spo(l2, rdf.First, rest),
		spo(l2, rdf.Rest, rdf.Nil),
		spo(rest, rdf.OWLOnProperty, hasStudent),
		spo(rest, rdf.OWLAllValuesFrom, woman),

		spo(c1, rdf.Type, college),
		spo(c1, hasStudent, iri("Alice")),
		spo(iri("Alice"), rdf.Type, woman),

		spo(c2, rdf.Type, college),
		spo(c2, hasStudent, iri("Bob")), // Bob not a Woman
	})

	assert.True(t, m.g.has(spo(c1, rdf.Type, womanCollege)))
	assert.False(t, m.g.has(spo(c2, rdf.Type, womanCollege)))
}

func TestReflexivePairsArePassThrough(t *testing.T) {
	knows := iri("knows")
	x, y := iri("Alice"), iri("Bob")

	m := runClosure(t, []rdf.Triple{
		spo(knows, rdf.Type, rdf.OWLReflexiveProperty),
		spo(x, knows, x),
		spo(x, knows, y),
	})

	assert.True(t, m.g.has(spo(x, knows, x)), "asserted self-pair survives")
	assert.False(t, m.g.has(spo(y, knows, y)), "no global reflexive expansion is invented")
}

func TestRunReturnsDelta(t *testing.T) {
	isPartOf := iri("isPartOf")
	a, b, c := iri("A"), iri("B"), iri("C")

	m := New([]rdf.Triple{
		spo(isPartOf, rdf.Type, rdf.OWLTransitiveProperty),
		spo(a, isPartOf, b),
		spo(b, isPartOf, c),
	})
	added, err := m.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, added, 1)
	assert.Equal(t, spo(a, isPartOf, c), added[0])
}

func TestRunHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := New([]rdf.Triple{spo(iri("A"), iri("p"), iri("B"))})
	_, err := m.Run(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestClosureIsIdempotent(t *testing.T) {
	isPartOf := iri("isPartOf")
	ts := []rdf.Triple{
		spo(isPartOf, rdf.Type, rdf.OWLTransitiveProperty),
		spo(iri("A"), isPartOf, iri("B")),
		spo(iri("B"), isPartOf, iri("C")),
	}

	m1 := runClosure(t, ts)
	m2 := runClosure(t, m1.Triples())

	added, err := New(m2.Triples()).Run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, added, "closing a closed set adds nothing")
	assert.Equal(t, m1.Triples(), m2.Triples())
}
