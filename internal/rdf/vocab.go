package rdf

// Well-known namespaces. Terms in these namespaces are schema machinery,
// never benchmark individuals.
const (
	NSRDF  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	NSRDFS = "http://www.w3.org/2000/01/rdf-schema#"
	NSOWL  = "http://www.w3.org/2002/07/owl#"
	NSXSD  = "http://www.w3.org/2001/XMLSchema#"
)

// RDF / RDFS vocabulary used by the materializer and the stores.
var (
	Type  = NewIRI(NSRDF + "type")
	First = NewIRI(NSRDF + "first")
	Rest  = NewIRI(NSRDF + "rest")
	Nil   = NewIRI(NSRDF + "nil")

	SubClassOf    = NewIRI(NSRDFS + "subClassOf")
	SubPropertyOf = NewIRI(NSRDFS + "subPropertyOf")
	Domain        = NewIRI(NSRDFS + "domain")
	Range         = NewIRI(NSRDFS + "range")
)

// OWL vocabulary used by the materializer.
var (
	OWLClass              = NewIRI(NSOWL + "Class")
	OWLThing              = NewIRI(NSOWL + "Thing")
	OWLNamedIndividual    = NewIRI(NSOWL + "NamedIndividual")
	OWLObjectProperty     = NewIRI(NSOWL + "ObjectProperty")
	OWLDatatypeProperty   = NewIRI(NSOWL + "DatatypeProperty")
	OWLTransitiveProperty = NewIRI(NSOWL + "TransitiveProperty")
	OWLSymmetricProperty  = NewIRI(NSOWL + "SymmetricProperty")
	OWLReflexiveProperty  = NewIRI(NSOWL + "ReflexiveProperty")
	OWLInverseOf          = NewIRI(NSOWL + "inverseOf")
	OWLEquivalentClass    = NewIRI(NSOWL + "equivalentClass")
	OWLPropertyChain      = NewIRI(NSOWL + "propertyChainAxiom")
	OWLUnionOf            = NewIRI(NSOWL + "unionOf")
	OWLIntersectionOf     = NewIRI(NSOWL + "intersectionOf")
	OWLComplementOf       = NewIRI(NSOWL + "complementOf")
	OWLRestriction        = NewIRI(NSOWL + "Restriction")
	OWLOnProperty         = NewIRI(NSOWL + "onProperty")
	OWLHasValue           = NewIRI(NSOWL + "hasValue")
	OWLHasSelf            = NewIRI(NSOWL + "hasSelf")
	OWLSomeValuesFrom     = NewIRI(NSOWL + "someValuesFrom")
	OWLAllValuesFrom      = NewIRI(NSOWL + "allValuesFrom")
	OWLMinCardinality     = NewIRI(NSOWL + "minCardinality")
	OWLMaxCardinality     = NewIRI(NSOWL + "maxCardinality")
	OWLCardinality        = NewIRI(NSOWL + "cardinality")
	OWLMinQualifiedCard   = NewIRI(NSOWL + "minQualifiedCardinality")
	OWLMaxQualifiedCard   = NewIRI(NSOWL + "maxQualifiedCardinality")
	OWLQualifiedCard      = NewIRI(NSOWL + "qualifiedCardinality")
	OWLOnClass            = NewIRI(NSOWL + "onClass")
)

// IsBuiltin reports whether an IRI term lives in one of the RDF/RDFS/OWL/XSD
// namespaces. Individuals are never builtin; classes with builtin types
// (owl:Class itself, restrictions) are excluded from individual enumeration
// with this check.
func IsBuiltin(t Term) bool {
	if t.Kind != TermIRI {
		return false
	}
	for _, ns := range []string{NSRDF, NSRDFS, NSOWL, NSXSD} {
		if len(t.Value) >= len(ns) && t.Value[:len(ns)] == ns {
			return true
		}
	}
	return false
}
