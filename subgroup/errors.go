// Package subgroup: sentinel error set. Construction failures name the
// specific violated law; tests match with errors.Is.

package subgroup

import "errors"

var (
	// ErrEmptySubset is returned when the candidate subset has no elements.
	// A subgroup is nonempty by definition (it contains the identity).
	ErrEmptySubset = errors.New("subgroup: candidate subset is empty")

	// ErrNotInParent is returned when the candidate subset contains an
	// element outside the parent group's carrier.
	ErrNotInParent = errors.New("subgroup: subset element not in parent group")

	// ErrNotSubgroup is returned when the subset fails the subgroup
	// criterion: some a∘b⁻¹ lands outside the subset.
	ErrNotSubgroup = errors.New("subgroup: subset does not satisfy the subgroup criterion")

	// ErrNotNormal is returned when some conjugate g∘n∘g⁻¹ lands outside
	// the subgroup.
	ErrNotNormal = errors.New("subgroup: subgroup is not normal")

	// ErrDifferentParents is returned by binary subgroup operations whose
	// operands belong to different parent groups.
	ErrDifferentParents = errors.New("subgroup: subgroups have different parent groups")

	// ErrNotInCarrier indicates a coset representative or query element
	// outside the parent carrier. Recoverable, reported per call.
	ErrNotInCarrier = errors.New("subgroup: element not in parent carrier")
)
