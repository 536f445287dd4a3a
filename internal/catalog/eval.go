package catalog

import (
	"github.com/roach88/owlbench/internal/ontology"
	"github.com/roach88/owlbench/internal/rdf"
)

// propertyPairs fetches every (subject, object) pair of a property, using
// the backend's one-pass scan when it offers one and falling back to the
// per-individual traversal otherwise. Both paths land in the same TupleSet,
// so backends are interchangeable row for row.
func propertyPairs(h ontology.Handle, property rdf.Term) (*rdf.TupleSet, error) {
	set := rdf.NewTupleSet()

	if scanner, ok := h.(ontology.PropertyScanner); ok {
		pairs, err := scanner.PropertyPairs(property)
		if err != nil {
			return nil, err
		}
		for _, p := range pairs {
			set.Add(p)
		}
		return set, nil
	}

	individuals, err := h.Individuals()
	if err != nil {
		return nil, err
	}
	for _, x := range individuals {
		objs, err := h.Related(x, property)
		if err != nil {
			return nil, err
		}
		for _, y := range objs {
			set.Add(rdf.T2(x, y))
		}
	}
	return set, nil
}

// classExtension fetches the member set of a named class as arity-1 tuples.
// The class expression behind the name (a restriction, union, complement)
// is pre-declared in the ontology schema; by query time membership is just
// a lookup.
func classExtension(h ontology.Handle, class rdf.Term) (*rdf.TupleSet, error) {
	members, err := h.Members(class)
	if err != nil {
		return nil, err
	}
	set := rdf.NewTupleSet()
	for _, m := range members {
		set.Add(rdf.T1(m))
	}
	return set, nil
}

// contains reports whether a traversal result holds the given term.
func contains(ts []rdf.Term, want rdf.Term) bool {
	for _, t := range ts {
		if t == want {
			return true
		}
	}
	return false
}
