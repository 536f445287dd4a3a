package ontology

import (
	"context"

	"github.com/roach88/owlbench/internal/rdf"
)

// Handle is a read-only view of a loaded (and, where applicable,
// materialized) ontology instance.
//
// All three methods return finite, restartable sequences: callers may
// iterate the returned slice any number of times, and two calls on an
// unmodified backend return equal contents. Order is deterministic per
// backend but not part of the contract; the catalog deduplicates and sorts.
type Handle interface {
	// Individuals enumerates every named individual in the instance data.
	Individuals() ([]rdf.Term, error)

	// Members returns the extension of a named class: every individual
	// typed as a member, including memberships derived by materialization.
	// A class that is declared but empty yields an empty slice; a class
	// IRI absent from the ontology yields a NotFoundError.
	Members(class rdf.Term) ([]rdf.Term, error)

	// Related traverses a property from a subject, returning related
	// entities for object properties and literal values for data
	// properties. A subject with no value for the property yields an
	// empty slice; a property IRI absent from the ontology yields a
	// NotFoundError.
	Related(subject, property rdf.Term) ([]rdf.Term, error)
}

// PropertyScanner is an optional Handle upgrade for the global property
// scan pattern: every (subject, object) pair related by a property, across
// all individuals. Semantically identical to iterating Individuals and
// calling Related on each, but a backend that can answer it in one pass (a
// SQL query, a single SPARQL SELECT) should, since half the benchmark
// battery uses this pattern. Callers type-assert and fall back to the
// per-individual loop when the backend doesn't implement it.
type PropertyScanner interface {
	// PropertyPairs returns arity-2 tuples for every assertion of the
	// property. Unknown property IRIs yield a NotFoundError.
	PropertyPairs(property rdf.Term) ([]rdf.Tuple, error)
}

// Materializer is implemented by backends that compute entailment closure in
// place. Materialize must complete before any Handle read: several queries
// (transitive part-of closure, chain-derived memberships) are only correct
// afterwards. It is invoked exactly once per load, never during a run.
type Materializer interface {
	Materialize(ctx context.Context) error
}

// Closer is implemented by backends holding releasable resources
// (database connections, HTTP clients).
type Closer interface {
	Close() error
}
