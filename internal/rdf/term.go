package rdf

import (
	"fmt"

	"golang.org/x/text/unicode/norm"
)

// TermKind discriminates the two term shapes owlbench cares about.
//
// Blank nodes from the parsed ontology are mapped to IRIs in a synthetic
// namespace by the loader, so downstream code only ever sees these two kinds.
type TermKind uint8

const (
	// TermIRI is a named resource (an entity, class, or property).
	TermIRI TermKind = iota

	// TermLiteral is a data value (the object of a data property).
	TermLiteral
)

// Term is a single RDF term: an IRI or a literal.
//
// Term is a comparable value type. Two terms are equal iff their kind and
// NFC-normalized lexical value are equal, so Terms can key maps and Tuples
// can be deduplicated with ordinary map semantics.
type Term struct {
	Kind  TermKind
	Value string
}

// NewIRI constructs an IRI term. The lexical form is NFC-normalized at this
// boundary; no other code path normalizes.
func NewIRI(iri string) Term {
	return Term{Kind: TermIRI, Value: norm.NFC.String(iri)}
}

// NSBlank prefixes the synthetic IRIs the loader mints for blank nodes.
// Blank node identity is file-scoped, so the minted IRI only has to be
// stable within one load.
const NSBlank = "urn:owlbench:blank:"

// NewBlank mints an IRI term for a blank node label.
func NewBlank(label string) Term {
	return NewIRI(NSBlank + label)
}

// NewLiteral constructs a literal term from its lexical form.
// Datatype and language tag are intentionally not carried: the benchmark
// queries compare and count values, they never interpret them.
func NewLiteral(lexical string) Term {
	return Term{Kind: TermLiteral, Value: norm.NFC.String(lexical)}
}

// IsIRI reports whether the term is an IRI.
func (t Term) IsIRI() bool { return t.Kind == TermIRI }

// IsLiteral reports whether the term is a literal.
func (t Term) IsLiteral() bool { return t.Kind == TermLiteral }

// IsZero reports whether the term is the zero Term (no kind set, empty value).
func (t Term) IsZero() bool { return t == Term{} }

// String renders the term in N-Triples style: IRIs in angle brackets,
// literals quoted. Used for logs, error messages, and report rendering.
func (t Term) String() string {
	if t.Kind == TermLiteral {
		return fmt.Sprintf("%q", t.Value)
	}
	return "<" + t.Value + ">"
}

// Compare orders terms: IRIs before literals, then by lexical value.
// Gives every enumeration in owlbench a deterministic order.
func (t Term) Compare(o Term) int {
	if t.Kind != o.Kind {
		if t.Kind < o.Kind {
			return -1
		}
		return 1
	}
	switch {
	case t.Value < o.Value:
		return -1
	case t.Value > o.Value:
		return 1
	}
	return 0
}
