package rdf

// Triple is one asserted or entailed fact. S and P are always IRIs; O may be
// an IRI or a literal.
//
// Triple is comparable, so a plain map[Triple]struct{} gives set semantics.
type Triple struct {
	S Term
	P Term
	O Term
}

// String renders the triple in N-Triples style (without the trailing dot).
func (t Triple) String() string {
	return t.S.String() + " " + t.P.String() + " " + t.O.String()
}

// Compare orders triples by subject, then predicate, then object.
func (t Triple) Compare(o Triple) int {
	if c := t.S.Compare(o.S); c != 0 {
		return c
	}
	if c := t.P.Compare(o.P); c != 0 {
		return c
	}
	return t.O.Compare(o.O)
}
