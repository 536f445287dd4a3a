// Package memstore is the in-process ontology backend: an indexed triple set
// with reasoner-backed materialization.
//
// This is the "object API" backend of the benchmark pair. Triples are loaded
// once, Materialize computes the entailment closure in place, and from then
// on the store is read-only. Reads are guarded by an RWMutex so the handle
// is safe for concurrent readers.
package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/roach88/owlbench/internal/inference"
	"github.com/roach88/owlbench/internal/ontology"
	"github.com/roach88/owlbench/internal/rdf"
)

type spKey struct{ s, p rdf.Term }

// Store implements ontology.Handle and ontology.Materializer over an
// in-memory triple set.
type Store struct {
	mu        sync.RWMutex
	triples   map[rdf.Triple]struct{}
	bySP      map[spKey][]rdf.Term
	members   map[rdf.Term][]rdf.Term // class → typed subjects
	mentioned map[rdf.Term]struct{}   // every IRI occurring anywhere

	// individuals is rebuilt lazily after inserts.
	individuals []rdf.Term
	dirty       bool
}

// New creates an empty store.
func New() *Store {
	return &Store{
		triples:   make(map[rdf.Triple]struct{}),
		bySP:      make(map[spKey][]rdf.Term),
		members:   make(map[rdf.Term][]rdf.Term),
		mentioned: make(map[rdf.Term]struct{}),
	}
}

// Insert adds triples, ignoring duplicates. Used by the loader and by
// Materialize; not part of the Handle contract.
func (s *Store) Insert(ts ...rdf.Triple) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range ts {
		s.insertLocked(t)
	}
}

func (s *Store) insertLocked(t rdf.Triple) {
	if _, ok := s.triples[t]; ok {
		return
	}
	s.triples[t] = struct{}{}
	s.bySP[spKey{t.S, t.P}] = append(s.bySP[spKey{t.S, t.P}], t.O)
	if t.P == rdf.Type && t.O.IsIRI() {
		s.members[t.O] = append(s.members[t.O], t.S)
	}
	for _, term := range []rdf.Term{t.S, t.P, t.O} {
		if term.IsIRI() {
			s.mentioned[term] = struct{}{}
		}
	}
	s.dirty = true
}

// InsertTriples adapts Insert to the loader's sink contract.
func (s *Store) InsertTriples(_ context.Context, ts []rdf.Triple) error {
	s.Insert(ts...)
	return nil
}

// Len returns the number of stored triples.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.triples)
}

// Triples returns the full triple set in sorted order.
func (s *Store) Triples() []rdf.Triple {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]rdf.Triple, 0, len(s.triples))
	for t := range s.triples {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Compare(out[j]) < 0 })
	return out
}

// Materialize computes the entailment closure and inserts the delta.
// Must complete before the handle is queried; the loader enforces this.
func (s *Store) Materialize(ctx context.Context) error {
	m := inference.New(s.Triples())
	added, err := m.Run(ctx)
	if err != nil {
		return ontology.WrapBackend("materialize", err)
	}
	s.Insert(added...)
	return nil
}

// Individuals implements ontology.Handle. An individual is any IRI typed
// with a non-builtin class, or occurring on either end of a non-schema
// property assertion.
func (s *Store) Individuals() ([]rdf.Term, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dirty || s.individuals == nil {
		s.rebuildIndividualsLocked()
	}
	return append([]rdf.Term(nil), s.individuals...), nil
}

func (s *Store) rebuildIndividualsLocked() {
	set := make(map[rdf.Term]struct{})
	for t := range s.triples {
		if t.P == rdf.Type {
			if t.S.IsIRI() && !rdf.IsBuiltin(t.S) && !rdf.IsBuiltin(t.O) {
				set[t.S] = struct{}{}
			}
			continue
		}
		if rdf.IsBuiltin(t.P) {
			continue
		}
		if t.S.IsIRI() && !rdf.IsBuiltin(t.S) {
			set[t.S] = struct{}{}
		}
		if t.O.IsIRI() && !rdf.IsBuiltin(t.O) {
			set[t.O] = struct{}{}
		}
	}
	s.individuals = make([]rdf.Term, 0, len(set))
	for x := range set {
		s.individuals = append(s.individuals, x)
	}
	sort.Slice(s.individuals, func(i, j int) bool {
		return s.individuals[i].Compare(s.individuals[j]) < 0
	})
	s.dirty = false
}

// Members implements ontology.Handle.
func (s *Store) Members(class rdf.Term) ([]rdf.Term, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.mentioned[class]; !ok {
		return nil, ontology.NewNotFound(ontology.KindClass, class.Value)
	}
	return sortedCopy(s.members[class]), nil
}

// Related implements ontology.Handle.
func (s *Store) Related(subject, property rdf.Term) ([]rdf.Term, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.mentioned[property]; !ok {
		return nil, ontology.NewNotFound(ontology.KindProperty, property.Value)
	}
	return sortedCopy(s.bySP[spKey{subject, property}]), nil
}

// PropertyPairs implements ontology.PropertyScanner with one pass over the
// triple set.
func (s *Store) PropertyPairs(property rdf.Term) ([]rdf.Tuple, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.mentioned[property]; !ok {
		return nil, ontology.NewNotFound(ontology.KindProperty, property.Value)
	}
	var out []rdf.Tuple
	for t := range s.triples {
		if t.P == property {
			out = append(out, rdf.T2(t.S, t.O))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Compare(out[j]) < 0 })
	return out, nil
}

// sortedCopy deduplicates and sorts an index slice into a fresh slice, so
// callers get a restartable sequence that cannot alias store internals.
func sortedCopy(in []rdf.Term) []rdf.Term {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[rdf.Term]struct{}, len(in))
	out := make([]rdf.Term, 0, len(in))
	for _, t := range in {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Compare(out[j]) < 0 })
	return out
}
