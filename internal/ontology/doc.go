// Package ontology defines the backend contract the query catalog is written
// against.
//
// Handle is the abstraction boundary between the benchmark queries and the
// engines that answer them. Three backends implement it:
//
//	[query catalog] → [ontology.Handle] → [memstore]     (in-process, reasoner-backed)
//	                                    → [sqlstore]     (embedded SQLite triple store)
//	                                    → [sparqlstore]  (remote SPARQL endpoint)
//
// The contract is deliberately small: enumerate individuals, fetch the
// extension of a named class, traverse a property from a subject. Every
// benchmark query is expressible as a composition of these three reads, so a
// new backend needs exactly three operations to run the whole battery.
//
// Reads are side-effect free and idempotent: calling any Handle method twice
// on an unmodified backend returns equal sequences. Backends must make the
// read path safe for concurrent readers, although the runner itself is
// single-threaded.
//
// Materialization is a separate, optional capability. Backends whose data
// needs entailment closure before the battery runs (transitive closure,
// property chains, derived class memberships) implement Materializer; the
// loader invokes it exactly once, before the handle escapes. Backends that
// serve pre-inferred data (a remote endpoint) simply don't implement it.
package ontology
