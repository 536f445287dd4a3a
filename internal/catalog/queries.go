package catalog

import (
	"github.com/roach88/owlbench/internal/ontology"
	"github.com/roach88/owlbench/internal/rdf"
)

// buildQueries declares the battery in canonical order. Each query probes
// one OWL 2 construct; the numbering in the descriptions follows the
// original benchmark.
func buildQueries() []*Query {
	return []*Query{
		{
			Name:        "knows",
			Arity:       2,
			Description: "pairs of persons related by knows",
			Construct:   "ReflexiveObjectProperty",
			Profiles:    []Profile{ProfileEL, ProfileQL, ProfileDL},
			Evaluate:    scanQuery(Knows),
		},
		{
			Name:        "members",
			Arity:       2,
			Description: "pairs (person, organization) related by isMemberOf",
			Construct:   "ObjectPropertyChain",
			Profiles:    []Profile{ProfileEL, ProfileRL, ProfileDL},
			Evaluate:    scanQuery(IsMemberOf),
		},
		{
			Name:        "suborganizations",
			Arity:       2,
			Description: "pairs of organizations related by isPartOf",
			Construct:   "TransitiveObjectProperty",
			Profiles:    []Profile{ProfileEL, ProfileRL, ProfileDL},
			Evaluate:    scanQuery(IsPartOf),
		},
		{
			Name:        "ages",
			Arity:       2,
			Description: "pairs (person, age) for persons with a stated age",
			Construct:   "FunctionalDataProperty",
			Profiles:    []Profile{ProfileEL, ProfileRL, ProfileDL},
			Evaluate:    scanQuery(HasAge),
		},
		{
			Name:        "cricket-fans",
			Arity:       1,
			Description: "members of T20CricketFan",
			Construct:   "ObjectHasValue",
			Profiles:    []Profile{ProfileEL, ProfileRL, ProfileDL},
			Evaluate:    classQuery(T20CricketFan),
		},
		{
			Name:        "self-aware",
			Arity:       1,
			Description: "members of SelfAwarePerson",
			Construct:   "ObjectHasSelf",
			Profiles:    []Profile{ProfileEL, ProfileDL},
			Evaluate:    classQuery(SelfAwarePerson),
		},
		{
			Name:        "alumni",
			Arity:       2,
			Description: "pairs (organization, person) related by hasAlumnus",
			Construct:   "InverseObjectProperty",
			Profiles:    []Profile{ProfileQL, ProfileRL, ProfileDL},
			Evaluate:    scanQuery(HasAlumnus),
		},
		{
			Name:        "affiliations",
			Arity:       2,
			Description: "pairs of organizations related by isAffiliatedOrganizationOf",
			Construct:   "AsymmetricObjectProperty",
			Profiles:    []Profile{ProfileQL, ProfileRL, ProfileDL},
			Evaluate:    scanQuery(IsAffiliatedOrgOf),
		},
		{
			Name:        "non-science-colleges",
			Arity:       1,
			Description: "colleges whose discipline is NonScience",
			Construct:   "ObjectComplementOf",
			Profiles:    []Profile{ProfileQL, ProfileRL, ProfileDL},
			Evaluate:    evalNonScienceColleges,
		},
		{
			Name:        "collaborations",
			Arity:       2,
			Description: "pairs of persons related by hasCollaborationWith",
			Construct:   "SymmetricObjectProperty",
			Profiles:    []Profile{ProfileQL, ProfileRL, ProfileDL},
			Evaluate:    scanQuery(HasCollaborationWith),
		},
		{
			Name:        "advisees",
			Arity:       2,
			Description: "pairs (student, advisor) related by isAdvisedBy",
			Construct:   "IrreflexiveObjectProperty",
			Profiles:    []Profile{ProfileQL, ProfileRL, ProfileDL},
			Evaluate:    scanQuery(IsAdvisedBy),
		},
		{
			Name:        "persons",
			Arity:       1,
			Description: "members of Person",
			Construct:   "ObjectUnionOf",
			Profiles:    []Profile{ProfileRL, ProfileDL},
			Evaluate:    classQuery(Person),
		},
		{
			Name:        "woman-colleges",
			Arity:       1,
			Description: "members of WomanCollege",
			Construct:   "ObjectAllValuesFrom",
			Profiles:    []Profile{ProfileRL, ProfileDL},
			Evaluate:    classQuery(WomanCollege),
		},
		{
			Name:        "leisure-students",
			Arity:       1,
			Description: "members of LeisureStudent",
			Construct:   "ObjectMaxCardinality",
			Profiles:    []Profile{ProfileRL, ProfileDL},
			Evaluate:    classQuery(LeisureStudent),
		},
		{
			Name:        "organization-heads",
			Arity:       2,
			Description: "pairs (person, organization) related by isHeadOf",
			Construct:   "InverseFunctionalObjectProperty",
			Profiles:    []Profile{ProfileRL, ProfileDL},
			Evaluate:    scanQuery(IsHeadOf),
		},
		{
			Name:        "headed-organizations",
			Arity:       2,
			Description: "pairs (organization, person) related by hasHead",
			Construct:   "FunctionalObjectProperty",
			Profiles:    []Profile{ProfileRL, ProfileDL},
			Evaluate:    scanQuery(HasHead),
		},
		{
			Name:        "ug-students",
			Arity:       1,
			Description: "members of UGStudent",
			Construct:   "ObjectExactCardinality",
			Profiles:    []Profile{ProfileDL},
			Evaluate:    classQuery(UGStudent),
		},
		{
			Name:        "many-hobbies",
			Arity:       1,
			Description: "members of PeopleWithManyHobbies",
			Construct:   "ObjectMinCardinality",
			Profiles:    []Profile{ProfileDL},
			Evaluate:    classQuery(PeopleWithManyHobbies),
		},
		{
			Name:        "faculty",
			Arity:       1,
			Description: "members of Faculty",
			Construct:   "ObjectSomeValuesFrom",
			Profiles:    []Profile{ProfileEL, ProfileQL, ProfileRL, ProfileDL},
			Evaluate:    classQuery(Faculty),
		},
		{
			Name:        "same-home-town",
			Arity:       2,
			Description: "pairs of persons related by hasSameHomeTownWith",
			Construct:   "SymmetricObjectProperty",
			Profiles:    []Profile{ProfileEL, ProfileQL, ProfileRL, ProfileDL},
			Evaluate:    scanQuery(HasSameHomeTownWith),
		},
		{
			Name:        "engineering-students",
			Arity:       2,
			Description: "pairs (student, college) where the student studies at a college within an Engineering-discipline parent",
			Construct:   "ObjectPropertyChain",
			Profiles:    []Profile{ProfileEL, ProfileQL, ProfileRL, ProfileDL},
			Evaluate:    evalEngineeringStudents,
		},
		{
			Name:        "dean-course-students",
			Arity:       2,
			Description: "pairs (student, course) where the course is taught by a dean and taken by the student",
			Construct:   "ObjectPropertyChain",
			Profiles:    []Profile{ProfileEL, ProfileQL, ProfileRL, ProfileDL},
			Evaluate:    evalDeanCourseStudents,
		},
	}
}

// scanQuery builds an Evaluate for a plain (subject, object) property scan.
func scanQuery(property rdf.Term) func(ontology.Handle) (*rdf.TupleSet, error) {
	return func(h ontology.Handle) (*rdf.TupleSet, error) {
		return propertyPairs(h, property)
	}
}

// classQuery builds an Evaluate for a named-class membership lookup.
func classQuery(class rdf.Term) func(ontology.Handle) (*rdf.TupleSet, error) {
	return func(h ontology.Handle) (*rdf.TupleSet, error) {
		return classExtension(h, class)
	}
}

// evalNonScienceColleges scans hasCollegeDiscipline and keeps the subjects
// whose discipline is NonScience. Projects the college only.
func evalNonScienceColleges(h ontology.Handle) (*rdf.TupleSet, error) {
	pairs, err := propertyPairs(h, HasCollegeDiscipline)
	if err != nil {
		return nil, err
	}
	set := rdf.NewTupleSet()
	for _, p := range pairs.Tuples() {
		if p.At(1) == NonScience {
			set.Add(rdf.T1(p.At(0)))
		}
	}
	return set, nil
}

// evalEngineeringStudents joins Student x isStudentOf x isPartOf and keeps
// rows whose parent organization carries the Engineering discipline. The
// intermediate parent is a join variable only; rows project (student,
// college), so two students of one college collapse to distinct pairs no
// matter how many Engineering parents the college has.
func evalEngineeringStudents(h ontology.Handle) (*rdf.TupleSet, error) {
	students, err := h.Members(Student)
	if err != nil {
		return nil, err
	}
	set := rdf.NewTupleSet()
	for _, s := range students {
		colleges, err := h.Related(s, IsStudentOf)
		if err != nil {
			return nil, err
		}
		for _, college := range colleges {
			parents, err := h.Related(college, IsPartOf)
			if err != nil {
				return nil, err
			}
			for _, parent := range parents {
				disciplines, err := h.Related(parent, HasCollegeDiscipline)
				if err != nil {
					return nil, err
				}
				if contains(disciplines, Engineering) {
					set.Add(rdf.T2(s, college))
					break
				}
			}
		}
	}
	return set, nil
}

// evalDeanCourseStudents joins Organization x hasDean x teachesCourse
// against Student x takesCourse. The organization and dean are join
// variables; rows project (student, course).
func evalDeanCourseStudents(h ontology.Handle) (*rdf.TupleSet, error) {
	orgs, err := h.Members(Organization)
	if err != nil {
		return nil, err
	}
	deanCourses := rdf.NewTupleSet()
	for _, org := range orgs {
		deans, err := h.Related(org, HasDean)
		if err != nil {
			return nil, err
		}
		for _, dean := range deans {
			courses, err := h.Related(dean, TeachesCourse)
			if err != nil {
				return nil, err
			}
			for _, c := range courses {
				deanCourses.Add(rdf.T1(c))
			}
		}
	}

	students, err := h.Members(Student)
	if err != nil {
		return nil, err
	}
	set := rdf.NewTupleSet()
	for _, s := range students {
		taken, err := h.Related(s, TakesCourse)
		if err != nil {
			return nil, err
		}
		for _, c := range taken {
			if deanCourses.Contains(rdf.T1(c)) {
				set.Add(rdf.T2(s, c))
			}
		}
	}
	return set, nil
}
