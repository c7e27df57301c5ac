// Package set provides a generic finite set: a duplicate-free,
// order-irrelevant container over any comparable element type.
//
// Set is the carrier container for every algebraic structure in this
// module. The algebra packages consume only membership, iteration and the
// classic set algebra (union, intersection, difference); nothing depends
// on the internal representation.
//
// All operations are pure with respect to their receivers except Add,
// AddAll and Remove, which mutate in place. Structures built from a Set
// clone it at construction time, so later mutation of the source never
// affects a validated structure.
//
// Complexity: membership, insertion and removal are O(1) amortized;
// the binary set operations are linear in the operand sizes.
package set
