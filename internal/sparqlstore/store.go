// Package sparqlstore adapts a remote SPARQL endpoint to ontology.Handle.
//
// This is the triple-store backend of the benchmark pair. Every read becomes
// a SELECT DISTINCT against the endpoint; the endpoint's dataset is assumed
// to be pre-inferred (the store does not implement ontology.Materializer),
// matching how the materialized benchmark ontologies are published.
//
// The adapter cannot distinguish "IRI absent from the ontology" from "no
// solutions" without asking, so empty results trigger a one-off existence
// probe before being reported as NotFound versus cardinality 0.
package sparqlstore

import (
	"fmt"
	"time"

	krdf "github.com/knakk/rdf"
	"github.com/knakk/sparql"

	"github.com/roach88/owlbench/internal/ontology"
	"github.com/roach88/owlbench/internal/rdf"
)

// DefaultTimeout bounds each HTTP round trip to the endpoint.
const DefaultTimeout = 60 * time.Second

// Queryer issues one SPARQL query. *sparql.Repo satisfies it; tests inject
// fakes.
type Queryer interface {
	Query(q interface{}) (*sparql.Results, error)
}

// Store implements ontology.Handle against a remote endpoint.
type Store struct {
	client Queryer
}

// New connects to a SPARQL endpoint URL (e.g. a Fuseki dataset's /query
// service). The connection is lazy; the first read surfaces reachability
// problems as BackendErrors.
func New(endpoint string) (*Store, error) {
	repo, err := sparql.NewRepo(endpoint, sparql.Timeout(DefaultTimeout))
	if err != nil {
		return nil, fmt.Errorf("sparql endpoint %s: %w", endpoint, err)
	}
	return &Store{client: repo}, nil
}

// NewWithClient wires a custom Queryer. Used by tests.
func NewWithClient(c Queryer) *Store {
	return &Store{client: c}
}

// builtinFilter excludes W3C schema vocabulary from individual enumeration.
const builtinFilter = `FILTER(!STRSTARTS(STR(?p), "http://www.w3.org/"))`

// Individuals implements ontology.Handle.
func (s *Store) Individuals() ([]rdf.Term, error) {
	q := fmt.Sprintf(`SELECT DISTINCT ?x WHERE {
  { ?x <%s> ?c . FILTER(!STRSTARTS(STR(?c), "http://www.w3.org/")) }
  UNION { ?x ?p ?o . %s }
  UNION { ?s ?p ?x . %s }
  FILTER(isIRI(?x))
} ORDER BY ?x`, rdf.Type.Value, builtinFilter, builtinFilter)

	terms, err := s.selectVar(q, "x")
	if err != nil {
		return nil, ontology.WrapBackend("sparql individuals", err)
	}
	return terms, nil
}

// Members implements ontology.Handle.
func (s *Store) Members(class rdf.Term) ([]rdf.Term, error) {
	q := fmt.Sprintf(`SELECT DISTINCT ?x WHERE { ?x <%s> <%s> } ORDER BY ?x`,
		rdf.Type.Value, class.Value)
	terms, err := s.selectVar(q, "x")
	if err != nil {
		return nil, ontology.WrapBackend("sparql members", err)
	}
	if len(terms) == 0 {
		if err := s.probe(ontology.KindClass, class); err != nil {
			return nil, err
		}
	}
	return terms, nil
}

// Related implements ontology.Handle.
func (s *Store) Related(subject, property rdf.Term) ([]rdf.Term, error) {
	q := fmt.Sprintf(`SELECT DISTINCT ?y WHERE { <%s> <%s> ?y } ORDER BY ?y`,
		subject.Value, property.Value)
	terms, err := s.selectVar(q, "y")
	if err != nil {
		return nil, ontology.WrapBackend("sparql related", err)
	}
	if len(terms) == 0 {
		if err := s.probe(ontology.KindProperty, property); err != nil {
			return nil, err
		}
	}
	return terms, nil
}

// PropertyPairs implements ontology.PropertyScanner with the exact SELECT
// DISTINCT ?x ?y shape the benchmark's SPARQL battery uses.
func (s *Store) PropertyPairs(property rdf.Term) ([]rdf.Tuple, error) {
	q := fmt.Sprintf(`SELECT DISTINCT ?x ?y WHERE { ?x <%s> ?y } ORDER BY ?x ?y`,
		property.Value)

	res, err := s.client.Query(q)
	if err != nil {
		return nil, ontology.WrapBackend("sparql property scan", err)
	}

	var out []rdf.Tuple
	for _, sol := range res.Solutions() {
		x, okX := convertTerm(sol["x"])
		y, okY := convertTerm(sol["y"])
		if !okX || !okY {
			continue
		}
		out = append(out, rdf.T2(x, y))
	}
	if len(out) == 0 {
		if err := s.probe(ontology.KindProperty, property); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// selectVar runs a single-variable SELECT and converts the bindings.
func (s *Store) selectVar(q, v string) ([]rdf.Term, error) {
	res, err := s.client.Query(q)
	if err != nil {
		return nil, err
	}
	var out []rdf.Term
	for _, sol := range res.Solutions() {
		if t, ok := convertTerm(sol[v]); ok {
			out = append(out, t)
		}
	}
	return out, nil
}

// probe checks whether an IRI occurs anywhere in the dataset, turning a
// sound empty result into nil and a vanished name into NotFoundError.
func (s *Store) probe(kind ontology.NotFoundKind, term rdf.Term) error {
	q := fmt.Sprintf(`SELECT ?p WHERE {
  { <%[1]s> ?p ?o } UNION { ?s <%[1]s> ?o } UNION { ?s ?p <%[1]s> }
} LIMIT 1`, term.Value)

	res, err := s.client.Query(q)
	if err != nil {
		return ontology.WrapBackend("sparql probe", err)
	}
	if len(res.Solutions()) == 0 {
		return ontology.NewNotFound(kind, term.Value)
	}
	return nil
}

// convertTerm maps a knakk/rdf term into the internal term model. Blank
// nodes are skipped: the benchmark queries only bind named entities and
// literals.
func convertTerm(t krdf.Term) (rdf.Term, bool) {
	if t == nil {
		return rdf.Term{}, false
	}
	switch t.Type() {
	case krdf.TermIRI:
		return rdf.NewIRI(t.String()), true
	case krdf.TermLiteral:
		return rdf.NewLiteral(t.String()), true
	default:
		return rdf.Term{}, false
	}
}
