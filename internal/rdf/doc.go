// Package rdf provides the canonical term, triple, and tuple types for
// owlbench.
//
// This package contains type definitions and vocabulary constants only. All
// other internal packages import rdf; rdf imports nothing internal. This
// ensures rdf remains the foundational layer with no circular dependencies.
//
// Key design constraints:
//   - Terms are comparable value types so they can key maps directly
//   - Lexical forms are NFC-normalized at construction (never later)
//   - All ordering is lexicographic over serialized terms, so any two
//     runs over the same data enumerate results identically
package rdf
