package inference

import (
	"strconv"

	"github.com/roach88/owlbench/internal/rdf"
)

// expr is a parsed class expression. Sealed via the marker method so the
// evaluator's type switch is exhaustive by construction.
type expr interface {
	isExpr()
}

// named is a reference to a named class.
type named struct {
	class rdf.Term
}

// intersection is owl:intersectionOf.
type intersection struct {
	parts []expr
}

// union is owl:unionOf.
type union struct {
	parts []expr
}

// complement is owl:complementOf, evaluated closed-world.
type complement struct {
	part expr
}

// cardKind discriminates restriction flavors.
type cardKind uint8

const (
	kindHasValue cardKind = iota
	kindHasSelf
	kindSomeValues
	kindAllValues
	kindMinCard
	kindMaxCard
	kindExactCard
)

// restriction is an owl:Restriction on a single property.
type restriction struct {
	prop   rdf.Term
	kind   cardKind
	value  rdf.Term // hasValue filler
	filler expr     // someValues/allValues/onClass filler; nil means unqualified
	n      int      // cardinality bound
}

func (named) isExpr()        {}
func (intersection) isExpr() {}
func (union) isExpr()        {}
func (complement) isExpr()   {}
func (restriction) isExpr()  {}

// parseExpr interprets a node of the schema graph as a class expression.
// Nodes with no recognizable structure parse as a named class reference:
// for benchmark schemas that is always correct, and it keeps unknown OWL
// constructs inert instead of fatal.
func parseExpr(g *graph, node rdf.Term) expr {
	return parseExprDepth(g, node, 0)
}

// maxExprDepth bounds recursion through malformed or cyclic schema nodes.
const maxExprDepth = 16

func parseExprDepth(g *graph, node rdf.Term, depth int) expr {
	if depth > maxExprDepth {
		return named{class: node}
	}

	if head := g.firstObject(node, rdf.OWLUnionOf); !head.IsZero() {
		return union{parts: parseExprList(g, head, depth)}
	}
	if head := g.firstObject(node, rdf.OWLIntersectionOf); !head.IsZero() {
		return intersection{parts: parseExprList(g, head, depth)}
	}
	if c := g.firstObject(node, rdf.OWLComplementOf); !c.IsZero() {
		return complement{part: parseExprDepth(g, c, depth+1)}
	}

	if prop := g.firstObject(node, rdf.OWLOnProperty); !prop.IsZero() {
		return parseRestriction(g, node, prop, depth)
	}

	return named{class: node}
}

func parseExprList(g *graph, head rdf.Term, depth int) []expr {
	nodes := g.list(head)
	parts := make([]expr, 0, len(nodes))
	for _, n := range nodes {
		parts = append(parts, parseExprDepth(g, n, depth+1))
	}
	return parts
}

func parseRestriction(g *graph, node, prop rdf.Term, depth int) expr {
	r := restriction{prop: prop}

	if v := g.firstObject(node, rdf.OWLHasValue); !v.IsZero() {
		r.kind = kindHasValue
		r.value = v
		return r
	}
	if v := g.firstObject(node, rdf.OWLHasSelf); !v.IsZero() {
		// Filler is the literal "true"; presence alone is the signal.
		r.kind = kindHasSelf
		return r
	}
	if c := g.firstObject(node, rdf.OWLSomeValuesFrom); !c.IsZero() {
		r.kind = kindSomeValues
		r.filler = parseExprDepth(g, c, depth+1)
		return r
	}
	if c := g.firstObject(node, rdf.OWLAllValuesFrom); !c.IsZero() {
		r.kind = kindAllValues
		r.filler = parseExprDepth(g, c, depth+1)
		return r
	}

	for _, card := range []struct {
		pred rdf.Term
		kind cardKind
	}{
		{rdf.OWLMinCardinality, kindMinCard},
		{rdf.OWLMinQualifiedCard, kindMinCard},
		{rdf.OWLMaxCardinality, kindMaxCard},
		{rdf.OWLMaxQualifiedCard, kindMaxCard},
		{rdf.OWLCardinality, kindExactCard},
		{rdf.OWLQualifiedCard, kindExactCard},
	} {
		if v := g.firstObject(node, card.pred); !v.IsZero() {
			r.kind = card.kind
			r.n = parseCardinality(v)
			if oc := g.firstObject(node, rdf.OWLOnClass); !oc.IsZero() {
				r.filler = parseExprDepth(g, oc, depth+1)
			}
			return r
		}
	}

	// onProperty with no recognized filler: treat as a named reference so
	// the node stays inert.
	return named{class: node}
}

// parseCardinality reads a non-negative integer literal, defaulting to 0.
func parseCardinality(t rdf.Term) int {
	n, err := strconv.Atoi(t.Value)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
