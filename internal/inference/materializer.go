package inference

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/roach88/owlbench/internal/rdf"
)

// maxRounds bounds the outer fixpoint loop. The benchmark schemas converge
// in a handful of rounds; hitting the cap means a pathological ontology.
const maxRounds = 512

// Materializer computes the entailment closure of a triple set in place.
// Construct with New, call Run once, then read Triples. Not safe for
// concurrent use; run to completion before sharing results.
type Materializer struct {
	g     *graph
	ax    *axioms
	added []rdf.Triple
}

// New builds a materializer over the given triples. The schema (every axiom
// listed in the package documentation) is read from the triples themselves.
func New(ts []rdf.Triple) *Materializer {
	g := newGraph(ts)
	return &Materializer{g: g, ax: extractAxioms(g)}
}

// Run drives property rules and classification to a joint fixpoint.
// Returns the newly entailed triples. ctx is checked between rounds.
func (m *Materializer) Run(ctx context.Context) ([]rdf.Triple, error) {
	before := m.g.size()
	for round := 1; ; round++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if round > maxRounds {
			return nil, fmt.Errorf("materialization did not converge after %d rounds", maxRounds)
		}

		changed := m.propertyFixpoint(ctx)
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if m.classify() {
			changed = true
		}

		slog.Debug("materialization round complete",
			"round", round, "triples", m.g.size(), "changed", changed)
		if !changed {
			break
		}
	}
	slog.Debug("materialization converged",
		"asserted", before, "entailed", m.g.size()-before)
	return m.added, nil
}

// Triples returns the full closed triple set, sorted.
func (m *Materializer) Triples() []rdf.Triple {
	return m.g.triples()
}

// add inserts a triple, recording it in the delta when new.
func (m *Materializer) add(t rdf.Triple) bool {
	if m.g.add(t) {
		m.added = append(m.added, t)
		return true
	}
	return false
}

// propertyFixpoint runs the monotonic rules until a round adds nothing.
func (m *Materializer) propertyFixpoint(ctx context.Context) bool {
	changed := false
	for {
		if ctx.Err() != nil {
			return changed
		}
		if !m.propertyRound() {
			return changed
		}
		changed = true
	}
}

// propertyRound applies each monotonic rule once over a snapshot of the
// relevant triples. Returns whether any fact was added.
func (m *Materializer) propertyRound() bool {
	changed := false

	for p := range m.ax.transitive {
		for _, t := range snapshot(m.g.withPred(p)) {
			for _, z := range append([]rdf.Term(nil), m.g.objects(t.O, p)...) {
				if m.add(rdf.Triple{S: t.S, P: p, O: z}) {
					changed = true
				}
			}
		}
	}

	for p := range m.ax.symmetric {
		for _, t := range snapshot(m.g.withPred(p)) {
			if t.O.IsIRI() && m.add(rdf.Triple{S: t.O, P: p, O: t.S}) {
				changed = true
			}
		}
	}

	for p, qs := range m.ax.inverses {
		for _, t := range snapshot(m.g.withPred(p)) {
			if !t.O.IsIRI() {
				continue
			}
			for _, q := range qs {
				if m.add(rdf.Triple{S: t.O, P: q, O: t.S}) {
					changed = true
				}
			}
		}
	}

	for p, supers := range m.ax.superProps {
		for _, t := range snapshot(m.g.withPred(p)) {
			for _, q := range supers {
				if m.add(rdf.Triple{S: t.S, P: q, O: t.O}) {
					changed = true
				}
			}
		}
	}

	for _, ch := range m.ax.chains {
		if m.applyChain(ch) {
			changed = true
		}
	}

	for p, classes := range m.ax.domains {
		for _, t := range snapshot(m.g.withPred(p)) {
			for _, c := range classes {
				if m.add(rdf.Triple{S: t.S, P: rdf.Type, O: c}) {
					changed = true
				}
			}
		}
	}
	for p, classes := range m.ax.ranges {
		for _, t := range snapshot(m.g.withPred(p)) {
			if !t.O.IsIRI() {
				continue
			}
			for _, c := range classes {
				if m.add(rdf.Triple{S: t.O, P: rdf.Type, O: c}) {
					changed = true
				}
			}
		}
	}

	for c, supers := range m.ax.superClass {
		for _, s := range append([]rdf.Term(nil), m.g.subjects(rdf.Type, c)...) {
			for _, sup := range supers {
				if m.add(rdf.Triple{S: s, P: rdf.Type, O: sup}) {
					changed = true
				}
			}
		}
	}

	return changed
}

// applyChain walks every start triple of the chain's first hop through the
// remaining hops, entailing the super property from start to each endpoint.
func (m *Materializer) applyChain(ch chain) bool {
	changed := false
	for _, t := range snapshot(m.g.withPred(ch.hops[0])) {
		frontier := []rdf.Term{t.O}
		for _, hop := range ch.hops[1:] {
			var next []rdf.Term
			for _, node := range frontier {
				if !node.IsIRI() {
					continue
				}
				next = append(next, m.g.objects(node, hop)...)
			}
			frontier = next
			if len(frontier) == 0 {
				break
			}
		}
		for _, end := range frontier {
			if m.add(rdf.Triple{S: t.S, P: ch.super, O: end}) {
				changed = true
			}
		}
	}
	return changed
}

// classify evaluates every expression-defined class against every
// individual under closed-world counting. Runs only after the monotonic
// rules are at fixpoint, since complement and max-cardinality read the
// absence of facts.
func (m *Materializer) classify() bool {
	if len(m.ax.defs) == 0 {
		return false
	}

	changed := false
	individuals := m.individuals()
	for _, def := range m.ax.defs {
		for _, x := range individuals {
			t := rdf.Triple{S: x, P: rdf.Type, O: def.class}
			if m.g.has(t) {
				continue
			}
			if m.satisfies(def.def, x) && m.add(t) {
				changed = true
			}
		}
	}
	return changed
}

// individuals collects every IRI that occurs in instance data: subjects
// typed with a non-builtin class, plus both ends of non-schema property
// assertions. Schema triples all use builtin predicates, so expression
// bnodes never leak in.
func (m *Materializer) individuals() []rdf.Term {
	set := make(map[rdf.Term]struct{})
	for t := range m.g.all {
		if t.P == rdf.Type {
			if t.S.IsIRI() && !rdf.IsBuiltin(t.O) && !rdf.IsBuiltin(t.S) {
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
	out := make([]rdf.Term, 0, len(set))
	for x := range set {
		out = append(out, x)
	}
	return out
}

// satisfies evaluates a class expression against an individual.
// Closed-world: complement is negation as failure, cardinalities count the
// distinct fillers currently in the graph.
func (m *Materializer) satisfies(e expr, x rdf.Term) bool {
	switch e := e.(type) {
	case named:
		if e.class == rdf.OWLThing {
			return true
		}
		if rdf.IsBuiltin(e.class) {
			// Datatype filler (xsd:*): satisfied by any literal.
			return x.IsLiteral()
		}
		return m.g.has(rdf.Triple{S: x, P: rdf.Type, O: e.class})
	case intersection:
		for _, p := range e.parts {
			if !m.satisfies(p, x) {
				return false
			}
		}
		return true
	case union:
		for _, p := range e.parts {
			if m.satisfies(p, x) {
				return true
			}
		}
		return false
	case complement:
		return !m.satisfies(e.part, x)
	case restriction:
		return m.satisfiesRestriction(e, x)
	default:
		return false
	}
}

func (m *Materializer) satisfiesRestriction(r restriction, x rdf.Term) bool {
	objs := m.g.objects(x, r.prop)

	switch r.kind {
	case kindHasValue:
		for _, o := range objs {
			if o == r.value {
				return true
			}
		}
		return false
	case kindHasSelf:
		for _, o := range objs {
			if o == x {
				return true
			}
		}
		return false
	case kindSomeValues:
		for _, o := range objs {
			if r.filler == nil || m.satisfies(r.filler, o) {
				return true
			}
		}
		return false
	case kindAllValues:
		// Vacuously true with zero fillers, per RL cls-avf.
		for _, o := range objs {
			if r.filler != nil && !m.satisfies(r.filler, o) {
				return false
			}
		}
		return true
	case kindMinCard:
		return m.countFillers(objs, r.filler) >= r.n
	case kindMaxCard:
		return m.countFillers(objs, r.filler) <= r.n
	case kindExactCard:
		return m.countFillers(objs, r.filler) == r.n
	default:
		return false
	}
}

// countFillers counts distinct objects, optionally only those satisfying
// the qualifying filler expression.
func (m *Materializer) countFillers(objs []rdf.Term, filler expr) int {
	seen := make(map[rdf.Term]struct{}, len(objs))
	for _, o := range objs {
		if filler != nil && !m.satisfies(filler, o) {
			continue
		}
		seen[o] = struct{}{}
	}
	return len(seen)
}

// snapshot copies a shared index slice so rules can iterate safely while
// adding triples under the same key.
func snapshot(ts []rdf.Triple) []rdf.Triple {
	return append([]rdf.Triple(nil), ts...)
}
