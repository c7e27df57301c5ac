// Package finitealgebra is an in-memory verification engine for finite
// abstract algebra — from the basic closure axiom all the way up to
// quotient groups and Cayley tables.
//
// 🚀 What is finitealgebra?
//
//	A modern, zero-dependency library that brings together:
//		• Structure hierarchy: Groupoid → Semigroup → Monoid → Group,
//		  every law verified exhaustively at construction time
//		• Subgroups & normal subgroups: criterion and conjugation checks
//		• Cosets & Lagrange's theorem: partitions, index, divisor analysis
//		• Factor (quotient) groups: induced operation with a verified
//		  representative-independence guarantee
//		• Element order, group exponent & cyclic-group analysis
//		• Euler's totient φ(n) and generator counting
//		• Center & centralizer queries
//		• Cayley tables: full operation enumeration + table-only law scans
//
// ✨ Why choose finitealgebra?
//
//   - Correctness by definition – every axiom is checked by the literal
//     brute-force algorithm, never a shortcut
//   - No invalid values – a structure that fails validation is never
//     observable; constructors return a specific sentinel error instead
//   - Pure Go – no cgo, no hidden deps, no I/O during computation
//   - Immutable – every structure is frozen after construction, safe to
//     share across goroutines without locks
//
// Under the hood, everything is organized into small focused packages:
//
//	set/      — finite-set container: membership, iteration, set algebra
//	algebra/  — Groupoid, Semigroup, Monoid, Group + validation hierarchy
//	subgroup/ — Subgroup, NormalSubgroup, Coset, Lagrange's theorem
//	quotient/ — FactorGroup over cosets of a normal subgroup
//	order/    — element order & group exponent
//	cyclic/   — generators, cyclic subgroups, Euler's totient
//	center/   — center & centralizer of a group
//	cayley/   — exhaustive operation tables
//
// Quick example, ℤ₆ under addition modulo 6:
//
//	carrier := set.New(0, 1, 2, 3, 4, 5)
//	op := func(a, b int) int { return (a + b) % 6 }
//	inv := func(a int) int { return (6 - a) % 6 }
//	g, err := algebra.NewGroup(carrier, op, 0, inv)
//
// g is now a fully validated group: closed, associative, with identity 0
// and a precomputed inverse table. Dive into the package docs for cosets,
// quotients and generator discovery.
//
//	go get github.com/katalvlaran/finitealgebra
package finitealgebra
