package inference

import (
	"sort"

	"github.com/roach88/owlbench/internal/rdf"
)

// sp keys the subject+predicate index, po the predicate+object index.
type sp struct{ s, p rdf.Term }
type po struct{ p, o rdf.Term }

// graph is the working triple set with the two indexes the rules need.
// Not safe for concurrent mutation; the materializer is single-threaded.
type graph struct {
	all    map[rdf.Triple]struct{}
	bySP   map[sp][]rdf.Term // subject+predicate → objects
	byPO   map[po][]rdf.Term // predicate+object → subjects
	byPred map[rdf.Term][]rdf.Triple
}

func newGraph(ts []rdf.Triple) *graph {
	g := &graph{
		all:    make(map[rdf.Triple]struct{}, len(ts)),
		bySP:   make(map[sp][]rdf.Term),
		byPO:   make(map[po][]rdf.Term),
		byPred: make(map[rdf.Term][]rdf.Triple),
	}
	for _, t := range ts {
		g.add(t)
	}
	return g
}

// add inserts a triple and maintains the indexes.
// Returns false if the triple was already present.
func (g *graph) add(t rdf.Triple) bool {
	if _, ok := g.all[t]; ok {
		return false
	}
	g.all[t] = struct{}{}
	g.bySP[sp{t.S, t.P}] = append(g.bySP[sp{t.S, t.P}], t.O)
	g.byPO[po{t.P, t.O}] = append(g.byPO[po{t.P, t.O}], t.S)
	g.byPred[t.P] = append(g.byPred[t.P], t)
	return true
}

func (g *graph) has(t rdf.Triple) bool {
	_, ok := g.all[t]
	return ok
}

// objects returns every O with (s, p, O) in the graph.
// The returned slice is shared; callers must not mutate it.
func (g *graph) objects(s, p rdf.Term) []rdf.Term {
	return g.bySP[sp{s, p}]
}

// subjects returns every S with (S, p, o) in the graph.
func (g *graph) subjects(p, o rdf.Term) []rdf.Term {
	return g.byPO[po{p, o}]
}

// withPred returns every triple with predicate p. Snapshot the result
// before adding triples with the same predicate during iteration.
func (g *graph) withPred(p rdf.Term) []rdf.Triple {
	return g.byPred[p]
}

// firstObject returns the single object of (s, p, ·), or a zero term.
func (g *graph) firstObject(s, p rdf.Term) rdf.Term {
	if os := g.objects(s, p); len(os) > 0 {
		return os[0]
	}
	return rdf.Term{}
}

// list walks an RDF collection (rdf:first / rdf:rest) from its head node.
// Malformed lists terminate at the break rather than erroring; the axiom
// referencing them is then simply narrower than authored.
func (g *graph) list(head rdf.Term) []rdf.Term {
	var out []rdf.Term
	seen := make(map[rdf.Term]struct{})
	for head != rdf.Nil && !head.IsZero() {
		if _, cyc := seen[head]; cyc {
			break
		}
		seen[head] = struct{}{}
		first := g.firstObject(head, rdf.First)
		if first.IsZero() {
			break
		}
		out = append(out, first)
		head = g.firstObject(head, rdf.Rest)
	}
	return out
}

// triples returns the full triple set in sorted order.
func (g *graph) triples() []rdf.Triple {
	out := make([]rdf.Triple, 0, len(g.all))
	for t := range g.all {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Compare(out[j]) < 0 })
	return out
}

// size returns the number of triples.
func (g *graph) size() int { return len(g.all) }
