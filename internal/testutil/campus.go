// Package testutil provides the campus fixture: a small, fully hand-checked
// ontology exercising every construct the query battery probes, with known
// answer cardinalities. Store, loader, catalog, and bench tests all run
// against the same fixture so a regression shows up everywhere at once.
package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/owlbench/internal/memstore"
	"github.com/roach88/owlbench/internal/rdf"
)

// ns matches the vocabulary namespace of the generated benchmark datasets.
const ns = "http://benchmark/OWL2Bench#"

func iri(local string) rdf.Term { return rdf.NewIRI(ns + local) }

func spo(s, p, o rdf.Term) rdf.Triple { return rdf.Triple{S: s, P: p, O: o} }

// listOf lays an RDF collection of the given terms into out, returning the
// head node. List cells are minted as blank-node IRIs under the label.
func listOf(label string, items []rdf.Term, out *[]rdf.Triple) rdf.Term {
	head := rdf.Nil
	for i := len(items) - 1; i >= 0; i-- {
		cell := rdf.NewBlank(label + "-" + string(rune('a'+i)))
		*out = append(*out,
			spo(cell, rdf.First, items[i]),
			spo(cell, rdf.Rest, head),
		)
		head = cell
	}
	return head
}

// restrictionOf lays an owl:Restriction node with the given property and
// one filler triple, returning the node.
func restrictionOf(label string, prop, fillerPred, filler rdf.Term, out *[]rdf.Triple) rdf.Term {
	node := rdf.NewBlank(label)
	*out = append(*out,
		spo(node, rdf.Type, rdf.OWLRestriction),
		spo(node, rdf.OWLOnProperty, prop),
		spo(node, fillerPred, filler),
	)
	return node
}

// CampusTriples returns the campus ontology: schema axioms plus instance
// data for one small university. Every cardinality in CampusCounts is
// derivable by hand from these triples.
func CampusTriples() []rdf.Triple {
	var (
		knows        = iri("knows")
		isMemberOf   = iri("isMemberOf")
		isPartOf     = iri("isPartOf")
		hasAge       = iri("hasAge")
		hasAlumnus   = iri("hasAlumnus")
		isAlumnusOf  = iri("isAlumnusOf")
		isAffOrgOf   = iri("isAffiliatedOrganizationOf")
		collabWith   = iri("hasCollaborationWith")
		isAdvisedBy  = iri("isAdvisedBy")
		isHeadOf     = iri("isHeadOf")
		hasHead      = iri("hasHead")
		sameHomeTown = iri("hasSameHomeTownWith")
		isStudentOf  = iri("isStudentOf")
		worksFor     = iri("worksFor")
		discipline   = iri("hasCollegeDiscipline")
		hasDean      = iri("hasDean")
		teaches      = iri("teachesCourse")
		takes        = iri("takesCourse")
		likes        = iri("likes")
		enrolledIn   = iri("enrolledIn")
		hasStudent   = iri("hasStudent")

		organization = iri("Organization")
		university   = iri("University")
		college      = iri("College")
		department   = iri("Department")
		course       = iri("Course")
		program      = iri("Program")
		hobby        = iri("Hobby")
		person       = iri("Person")
		man          = iri("Man")
		woman        = iri("Woman")
		student      = iri("Student")
		cricketFan   = iri("T20CricketFan")
		selfAware    = iri("SelfAwarePerson")
		womanCollege = iri("WomanCollege")
		leisure      = iri("LeisureStudent")
		ugStudent    = iri("UGStudent")
		manyHobbies  = iri("PeopleWithManyHobbies")
		faculty      = iri("Faculty")
		engineering  = iri("Engineering")
		nonScience   = iri("NonScience")

		alice = iri("alice")
		bob   = iri("bob")
		carol = iri("carol")
		dave  = iri("dave")
		eve   = iri("eve")

		univ       = iri("univ")
		engCollege = iri("engCollege")
		artCollege = iri("artsCollege")
		csDept     = iri("csDept")
		sportsClub = iri("sportsClub")

		math101 = iri("math101")
		bio201  = iri("bio201")
		cs500   = iri("cs500")
		ugProg  = iri("ugProg")
		chess   = iri("chess")
		cricket = iri("cricket")
		reading = iri("reading")
	)

	// Property axioms.
	ts := []rdf.Triple{
		spo(isPartOf, rdf.Type, rdf.OWLTransitiveProperty),
		spo(collabWith, rdf.Type, rdf.OWLSymmetricProperty),
		spo(sameHomeTown, rdf.Type, rdf.OWLSymmetricProperty),
		spo(knows, rdf.Type, rdf.OWLReflexiveProperty),
		spo(hasAge, rdf.Type, rdf.OWLDatatypeProperty),
		spo(hasAlumnus, rdf.OWLInverseOf, isAlumnusOf),
		spo(hasHead, rdf.OWLInverseOf, isHeadOf),
		spo(isStudentOf, rdf.SubPropertyOf, isMemberOf),
		spo(worksFor, rdf.SubPropertyOf, isMemberOf),
	}

	// isMemberOf o isPartOf -> isMemberOf: membership climbs the org tree.
	ts = append(ts, spo(isMemberOf, rdf.OWLPropertyChain,
		listOf("memberChain", []rdf.Term{isMemberOf, isPartOf}, &ts)))

	// Class hierarchy.
	ts = append(ts,
		spo(university, rdf.SubClassOf, organization),
		spo(college, rdf.SubClassOf, organization),
		spo(department, rdf.SubClassOf, organization),
	)

	// Person = Man | Woman.
	personDef := rdf.NewBlank("personDef")
	ts = append(ts,
		spo(personDef, rdf.OWLUnionOf, listOf("personParts", []rdf.Term{man, woman}, &ts)),
		spo(person, rdf.OWLEquivalentClass, personDef),
	)

	// Restriction-defined classes, one per probed construct.
	ts = append(ts,
		spo(cricketFan, rdf.OWLEquivalentClass,
			restrictionOf("fanDef", likes, rdf.OWLHasValue, cricket, &ts)),
		spo(selfAware, rdf.OWLEquivalentClass,
			restrictionOf("selfDef", knows, rdf.OWLHasSelf, rdf.NewLiteral("true"), &ts)),
		spo(manyHobbies, rdf.OWLEquivalentClass,
			restrictionOf("hobbyDef", likes, rdf.OWLMinCardinality, rdf.NewLiteral("2"), &ts)),
		spo(faculty, rdf.OWLEquivalentClass,
			restrictionOf("facultyDef", teaches, rdf.OWLSomeValuesFrom, course, &ts)),
	)

	// Guarded restriction classes: Class & [restriction].
	womanDef := rdf.NewBlank("womanCollegeDef")
	ts = append(ts,
		spo(womanDef, rdf.OWLIntersectionOf, listOf("womanCollegeParts", []rdf.Term{
			college,
			restrictionOf("womanStudents", hasStudent, rdf.OWLAllValuesFrom, woman, &ts),
		}, &ts)),
		spo(womanCollege, rdf.OWLEquivalentClass, womanDef),
	)
	leisureDef := rdf.NewBlank("leisureDef")
	ts = append(ts,
		spo(leisureDef, rdf.OWLIntersectionOf, listOf("leisureParts", []rdf.Term{
			student,
			restrictionOf("fewCourses", takes, rdf.OWLMaxCardinality, rdf.NewLiteral("1"), &ts),
		}, &ts)),
		spo(leisure, rdf.OWLEquivalentClass, leisureDef),
	)
	ugDef := rdf.NewBlank("ugDef")
	ts = append(ts,
		spo(ugDef, rdf.OWLIntersectionOf, listOf("ugParts", []rdf.Term{
			student,
			restrictionOf("oneProgram", enrolledIn, rdf.OWLCardinality, rdf.NewLiteral("1"), &ts),
		}, &ts)),
		spo(ugStudent, rdf.OWLEquivalentClass, ugDef),
	)

	// Instance types.
	ts = append(ts,
		spo(alice, rdf.Type, woman),
		spo(carol, rdf.Type, woman),
		spo(eve, rdf.Type, woman),
		spo(bob, rdf.Type, man),
		spo(dave, rdf.Type, man),
		spo(alice, rdf.Type, student),
		spo(carol, rdf.Type, student),
		spo(univ, rdf.Type, university),
		spo(engCollege, rdf.Type, college),
		spo(artCollege, rdf.Type, college),
		spo(csDept, rdf.Type, department),
		spo(sportsClub, rdf.Type, organization),
		spo(math101, rdf.Type, course),
		spo(bio201, rdf.Type, course),
		spo(cs500, rdf.Type, course),
		spo(ugProg, rdf.Type, program),
		spo(chess, rdf.Type, hobby),
		spo(cricket, rdf.Type, hobby),
		spo(reading, rdf.Type, hobby),
	)

	// Instance assertions.
	ts = append(ts,
		spo(alice, knows, alice),
		spo(alice, knows, bob),
		spo(bob, knows, carol),
		spo(alice, hasAge, rdf.NewLiteral("20")),
		spo(bob, hasAge, rdf.NewLiteral("45")),
		spo(bob, likes, chess),
		spo(bob, likes, cricket),
		spo(bob, likes, reading),

		spo(alice, isStudentOf, csDept),
		spo(carol, isStudentOf, artCollege),
		spo(dave, worksFor, csDept),
		spo(eve, worksFor, univ),

		spo(csDept, isPartOf, engCollege),
		spo(engCollege, isPartOf, univ),
		spo(artCollege, isPartOf, univ),

		spo(bob, isAlumnusOf, univ),
		spo(dave, isAlumnusOf, engCollege),
		spo(sportsClub, isAffOrgOf, univ),
		spo(engCollege, discipline, engineering),
		spo(artCollege, discipline, nonScience),

		spo(dave, collabWith, eve),
		spo(carol, isAdvisedBy, dave),
		spo(eve, isHeadOf, univ),
		spo(carol, sameHomeTown, eve),

		spo(alice, takes, math101),
		spo(alice, takes, cs500),
		spo(carol, takes, bio201),
		spo(alice, enrolledIn, ugProg),
		spo(carol, enrolledIn, ugProg),
		spo(dave, teaches, math101),
		spo(eve, teaches, cs500),
		spo(univ, hasDean, eve),

		spo(engCollege, hasStudent, bob),
		spo(artCollege, hasStudent, carol),
	)

	return ts
}

// CampusCounts maps every query name to its answer cardinality over the
// materialized campus fixture. Derivation, briefly: members is 4 asserted
// memberships plus 5 chained through isPartOf; suborganizations is 3
// asserted isPartOf edges plus 1 transitive; symmetric properties double
// their single asserted pair; the inverse properties mirror their asserted
// counterparts one for one.
func CampusCounts() map[string]int {
	return map[string]int{
		"knows":                3,
		"members":              9,
		"suborganizations":     4,
		"ages":                 2,
		"cricket-fans":         1,
		"self-aware":           1,
		"alumni":               2,
		"affiliations":         1,
		"non-science-colleges": 1,
		"collaborations":       2,
		"advisees":             1,
		"persons":              5,
		"woman-colleges":       1,
		"leisure-students":     1,
		"organization-heads":   1,
		"headed-organizations": 1,
		"ug-students":          2,
		"many-hobbies":         1,
		"faculty":              2,
		"same-home-town":       2,
		"engineering-students": 1,
		"dean-course-students": 1,
	}
}

// CampusHandle returns a materialized in-memory store over the campus
// fixture.
func CampusHandle(t *testing.T) *memstore.Store {
	t.Helper()
	st := memstore.New()
	st.Insert(CampusTriples()...)
	require.NoError(t, st.Materialize(context.Background()))
	return st
}

// WriteCampusFile serializes the campus fixture as an N-Triples file in a
// test temp directory and returns its path.
func WriteCampusFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "campus.nt")
	f, err := os.Create(path)
	require.NoError(t, err)
	for _, tr := range CampusTriples() {
		_, err := f.WriteString(tr.String() + " .\n")
		require.NoError(t, err)
	}
	require.NoError(t, f.Close())
	return path
}
