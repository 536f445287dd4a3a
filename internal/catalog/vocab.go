package catalog

import "github.com/roach88/owlbench/internal/rdf"

// Namespace is the OWL2Bench benchmark vocabulary. Every class, property,
// and generated individual in the benchmark ontologies lives here.
const Namespace = "http://benchmark/OWL2Bench#"

// BenchIRI builds a term in the benchmark namespace.
func BenchIRI(local string) rdf.Term {
	return rdf.NewIRI(Namespace + local)
}

// Object and data properties referenced by the battery.
var (
	Knows                = BenchIRI("knows")
	IsMemberOf           = BenchIRI("isMemberOf")
	IsPartOf             = BenchIRI("isPartOf")
	HasAge               = BenchIRI("hasAge")
	HasAlumnus           = BenchIRI("hasAlumnus")
	IsAffiliatedOrgOf    = BenchIRI("isAffiliatedOrganizationOf")
	HasCollaborationWith = BenchIRI("hasCollaborationWith")
	IsAdvisedBy          = BenchIRI("isAdvisedBy")
	IsHeadOf             = BenchIRI("isHeadOf")
	HasHead              = BenchIRI("hasHead")
	HasSameHomeTownWith  = BenchIRI("hasSameHomeTownWith")
	IsStudentOf          = BenchIRI("isStudentOf")
	HasCollegeDiscipline = BenchIRI("hasCollegeDiscipline")
	HasDean              = BenchIRI("hasDean")
	TeachesCourse        = BenchIRI("teachesCourse")
	TakesCourse          = BenchIRI("takesCourse")
)

// Classes and named individuals referenced by the battery.
var (
	Student               = BenchIRI("Student")
	Organization          = BenchIRI("Organization")
	Person                = BenchIRI("Person")
	T20CricketFan         = BenchIRI("T20CricketFan")
	SelfAwarePerson       = BenchIRI("SelfAwarePerson")
	WomanCollege          = BenchIRI("WomanCollege")
	LeisureStudent        = BenchIRI("LeisureStudent")
	UGStudent             = BenchIRI("UGStudent")
	PeopleWithManyHobbies = BenchIRI("PeopleWithManyHobbies")
	Faculty               = BenchIRI("Faculty")
	Engineering           = BenchIRI("Engineering")
	NonScience            = BenchIRI("NonScience")
)
