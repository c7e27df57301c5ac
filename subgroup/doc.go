// Package subgroup implements subgroup verification and the coset
// machinery built on it:
//
//	Subgroup       — a subset of a parent group's carrier satisfying the
//	                 subgroup criterion a∘b⁻¹ ∈ H for all a, b ∈ H
//	NormalSubgroup — a subgroup closed under conjugation g∘n∘g⁻¹ by every
//	                 parent element, cross-checkable via gN = Ng
//	Coset          — a one-sided translate of a subgroup by a
//	                 representative element
//	Lagrange       — the left-coset partition of the parent carrier,
//	                 index computation and divisor analysis
//
// A Subgroup holds a non-owning reference to its parent Group and is only
// meaningful while that parent is in use; nothing here mutates the parent.
// Two cosets are equal exactly when their derived element sets are equal —
// equality never depends on which representative built them.
//
// All checks are the literal definitional algorithms: the subgroup
// criterion is O(|H|²) operation applications, conjugation closure is
// O(|G|·|N|), and the coset partition touches every parent element once
// per built coset.
package subgroup
