// Package order computes per-element and per-group order invariants of a
// finite group:
//
//	element order  — the smallest n ≥ 1 with aⁿ = e
//	group exponent — the smallest n ≥ 1 with aⁿ = e for every a,
//	                 equal to the LCM of all element orders
//
// OfElement iterates powers of the element up to |G| steps. For a genuine
// finite group the identity always recurs within that bound; if it does
// not, ErrInfiniteOrder is returned, which signals an invariant violation
// upstream rather than an actual infinite order.
package order
