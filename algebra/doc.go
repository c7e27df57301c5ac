// Package algebra implements the layered hierarchy of finite algebraic
// structures with one binary operation:
//
//	Groupoid  — carrier + closed operation
//	Semigroup — Groupoid + associativity
//	Monoid    — Semigroup + two-sided identity
//	Group     — Monoid + inverse for every element
//
// Each constructor validates exactly one law beyond the previous level and
// either returns a fully validated structure or a sentinel error naming
// the violated law. An invalid structure value is never observable.
//
// Validation is deliberately brute force — the literal definitional
// algorithm over the finite carrier:
//
//	closure        O(n²) operation applications
//	associativity  O(n³)
//	identity       O(n)
//	inverses       O(n²) (supplied-inverse path is O(n))
//
// No number-theoretic shortcut replaces these scans; correctness by
// definition is the point of this package.
//
// Structures are immutable after construction. The carrier is cloned on
// the way in, the Group precomputes its inverse table once, and every
// later query is read-only, so values may be shared freely across
// goroutines without locking.
package algebra
