package rdf

import (
	"fmt"
	"sort"
	"strings"
)

// MaxArity is the widest answer row any benchmark query produces.
const MaxArity = 3

// Tuple is one row of a query answer: an ordered sequence of 1 to 3 terms.
//
// Tuple is a comparable value type (fixed-size backing array), so a TupleSet
// can deduplicate rows with map semantics alone. Projection arity is part of
// tuple identity: (s, y) and (s, y, z) are never equal.
type Tuple struct {
	terms [MaxArity]Term
	arity uint8
}

// T1 builds an arity-1 tuple.
func T1(a Term) Tuple { return Tuple{terms: [MaxArity]Term{a}, arity: 1} }

// T2 builds an arity-2 tuple.
func T2(a, b Term) Tuple { return Tuple{terms: [MaxArity]Term{a, b}, arity: 2} }

// T3 builds an arity-3 tuple.
func T3(a, b, c Term) Tuple { return Tuple{terms: [MaxArity]Term{a, b, c}, arity: 3} }

// Arity returns the number of terms in the tuple.
func (t Tuple) Arity() int { return int(t.arity) }

// At returns the i-th term. Panics if i is out of [0, Arity).
func (t Tuple) At(i int) Term {
	if i < 0 || i >= int(t.arity) {
		panic(fmt.Sprintf("rdf: tuple index %d out of range for arity %d", i, t.arity))
	}
	return t.terms[i]
}

// Terms returns the tuple's terms as a fresh slice.
func (t Tuple) Terms() []Term {
	out := make([]Term, t.arity)
	copy(out, t.terms[:t.arity])
	return out
}

// String renders the tuple as "(<a>, <b>)".
func (t Tuple) String() string {
	parts := make([]string, t.arity)
	for i := range parts {
		parts[i] = t.terms[i].String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Compare orders tuples by arity, then term by term.
func (t Tuple) Compare(o Tuple) int {
	if t.arity != o.arity {
		if t.arity < o.arity {
			return -1
		}
		return 1
	}
	for i := 0; i < int(t.arity); i++ {
		if c := t.terms[i].Compare(o.terms[i]); c != 0 {
			return c
		}
	}
	return 0
}

// TupleSet is a deduplicated set of answer rows. The zero value is not
// usable; construct with NewTupleSet.
//
// Duplicates from the underlying traversal are absorbed silently, mirroring
// SELECT DISTINCT semantics. Enumeration via Tuples is sorted so reports and
// golden files are stable across runs.
type TupleSet struct {
	rows map[Tuple]struct{}
}

// NewTupleSet creates an empty set.
func NewTupleSet() *TupleSet {
	return &TupleSet{rows: make(map[Tuple]struct{})}
}

// Add inserts a tuple, ignoring duplicates.
func (s *TupleSet) Add(t Tuple) {
	s.rows[t] = struct{}{}
}

// Contains reports whether the set holds the tuple.
func (s *TupleSet) Contains(t Tuple) bool {
	_, ok := s.rows[t]
	return ok
}

// Len returns the cardinality of the set.
func (s *TupleSet) Len() int { return len(s.rows) }

// Tuples returns all rows in deterministic sorted order.
func (s *TupleSet) Tuples() []Tuple {
	out := make([]Tuple, 0, len(s.rows))
	for t := range s.rows {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Compare(out[j]) < 0 })
	return out
}

// Equal reports whether two sets hold exactly the same rows.
func (s *TupleSet) Equal(o *TupleSet) bool {
	if s.Len() != o.Len() {
		return false
	}
	for t := range s.rows {
		if !o.Contains(t) {
			return false
		}
	}
	return true
}
