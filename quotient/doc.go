// Package quotient builds factor groups G/N: the group whose elements are
// the cosets of a normal subgroup N in G, with the induced operation
//
//	(aN) ∘ (bN) = (a∘b)N
//
// The operation picks arbitrary representatives and resolves the result
// by lookup in the precomputed element→coset index, never by
// recomputation. It is well defined exactly because N is normal; the
// NormalSubgroup constructor upstream is the gate that makes an
// ill-defined quotient unconstructible. CheckRepresentativeIndependence
// verifies the well-definedness property exhaustively, and Verify
// re-checks the full group laws on the quotient as a self-check.
package quotient
