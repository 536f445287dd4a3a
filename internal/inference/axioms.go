package inference

import "github.com/roach88/owlbench/internal/rdf"

// chain is one owl:propertyChainAxiom: hops composed left to right entail
// the super property.
type chain struct {
	super rdf.Term
	hops  []rdf.Term
}

// classDef is a named class defined by (or subsuming) an expression.
// Individuals satisfying def are typed as class during classification.
type classDef struct {
	class rdf.Term
	def   expr
}

// axioms is the schema read out of the ontology's own triples, once, before
// any rule fires. Instance-level rounds never grow the schema, so a single
// extraction is sound.
type axioms struct {
	transitive map[rdf.Term]bool
	symmetric  map[rdf.Term]bool
	inverses   map[rdf.Term][]rdf.Term // p → every q with p owl:inverseOf q (both directions)
	superProps map[rdf.Term][]rdf.Term // p → direct super properties
	chains     []chain
	domains    map[rdf.Term][]rdf.Term // p → classes its subjects acquire
	ranges     map[rdf.Term][]rdf.Term // p → classes its IRI objects acquire
	superClass map[rdf.Term][]rdf.Term // c → direct named super classes
	defs       []classDef
}

func extractAxioms(g *graph) *axioms {
	ax := &axioms{
		transitive: make(map[rdf.Term]bool),
		symmetric:  make(map[rdf.Term]bool),
		inverses:   make(map[rdf.Term][]rdf.Term),
		superProps: make(map[rdf.Term][]rdf.Term),
		domains:    make(map[rdf.Term][]rdf.Term),
		ranges:     make(map[rdf.Term][]rdf.Term),
		superClass: make(map[rdf.Term][]rdf.Term),
	}

	for _, s := range g.subjects(rdf.Type, rdf.OWLTransitiveProperty) {
		ax.transitive[s] = true
	}
	for _, s := range g.subjects(rdf.Type, rdf.OWLSymmetricProperty) {
		ax.symmetric[s] = true
	}

	for _, t := range g.withPred(rdf.OWLInverseOf) {
		ax.inverses[t.S] = append(ax.inverses[t.S], t.O)
		ax.inverses[t.O] = append(ax.inverses[t.O], t.S)
	}
	for _, t := range g.withPred(rdf.SubPropertyOf) {
		ax.superProps[t.S] = append(ax.superProps[t.S], t.O)
	}
	for _, t := range g.withPred(rdf.OWLPropertyChain) {
		hops := g.list(t.O)
		if len(hops) >= 2 {
			ax.chains = append(ax.chains, chain{super: t.S, hops: hops})
		}
	}
	for _, t := range g.withPred(rdf.Domain) {
		if !rdf.IsBuiltin(t.O) {
			ax.domains[t.S] = append(ax.domains[t.S], t.O)
		}
	}
	for _, t := range g.withPred(rdf.Range) {
		if !rdf.IsBuiltin(t.O) {
			ax.ranges[t.S] = append(ax.ranges[t.S], t.O)
		}
	}

	ax.extractClassAxioms(g)
	return ax
}

// extractClassAxioms splits rdfs:subClassOf and owl:equivalentClass into
// plain named-class hierarchy edges and expression definitions.
func (ax *axioms) extractClassAxioms(g *graph) {
	for _, t := range g.withPred(rdf.SubClassOf) {
		sup := parseExpr(g, t.O)
		sub := parseExpr(g, t.S)

		supNamed, supIsNamed := sup.(named)
		subNamed, subIsNamed := sub.(named)

		switch {
		case supIsNamed && subIsNamed:
			ax.superClass[subNamed.class] = append(ax.superClass[subNamed.class], supNamed.class)
		case supIsNamed:
			// [expr] ⊑ C: satisfying the expression classifies as C.
			ax.defs = append(ax.defs, classDef{class: supNamed.class, def: sub})
		}
		// C ⊑ [expr] constrains instances; nothing to materialize.
	}

	for _, t := range g.withPred(rdf.OWLEquivalentClass) {
		left := parseExpr(g, t.S)
		right := parseExpr(g, t.O)

		ln, lNamed := left.(named)
		rn, rNamed := right.(named)

		switch {
		case lNamed && rNamed:
			// Mutual subsumption between named classes.
			ax.superClass[ln.class] = append(ax.superClass[ln.class], rn.class)
			ax.superClass[rn.class] = append(ax.superClass[rn.class], ln.class)
		case lNamed:
			ax.defs = append(ax.defs, classDef{class: ln.class, def: right})
		case rNamed:
			ax.defs = append(ax.defs, classDef{class: rn.class, def: left})
		}
	}
}
