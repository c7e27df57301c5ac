// Package cayley builds exhaustive operation tables for finite algebraic
// structures.
//
// A Cayley table enumerates op(a, b) for every ordered pair of carrier
// elements once, at construction, into a flat row-major buffer with the
// explicit index formula i*n + j. Every later query — associativity,
// commutativity, cancellation, identity discovery, lookup — scans the
// table alone and never re-invokes the operation.
//
// The element ordering is captured once from the carrier snapshot and is
// arbitrary but stable for the lifetime of the table; the table is never
// mutated after construction.
package cayley
