// Package algebra: sentinel error set (unified, consistent).
// All constructors and queries MUST return these sentinels and tests MUST
// check them via errors.Is. No function panics on user-triggered
// conditions.

package algebra

import "errors"

var (
	// ErrNotClosed is returned when op(a, b) lands outside the carrier for
	// some pair (a, b). Reported by NewGroupoid and, defensively, by
	// Operate if an unvalidated operation ever reaches it.
	ErrNotClosed = errors.New("algebra: operation is not closed over the carrier")

	// ErrNotAssociative is returned when (a∘b)∘c ≠ a∘(b∘c) for some triple.
	ErrNotAssociative = errors.New("algebra: operation is not associative")

	// ErrIdentityNotInSet is returned when the identity candidate is not a
	// member of the carrier.
	ErrIdentityNotInSet = errors.New("algebra: identity element is not in the carrier")

	// ErrInvalidIdentity is returned when the identity candidate fails
	// e∘a = a or a∘e = a for some a.
	ErrInvalidIdentity = errors.New("algebra: element does not satisfy the identity laws")

	// ErrInverseNotInSet is returned when a supplied inverse lies outside
	// the carrier.
	ErrInverseNotInSet = errors.New("algebra: inverse element is not in the carrier")

	// ErrInvalidInverse is returned when a supplied inverse fails
	// a∘a⁻¹ = e or a⁻¹∘a = e.
	ErrInvalidInverse = errors.New("algebra: element does not satisfy the inverse laws")

	// ErrNotInCarrier indicates a query referenced an element outside the
	// carrier. Recoverable, reported per call.
	ErrNotInCarrier = errors.New("algebra: element not in carrier")

	// ErrNoIdentity indicates the structure has no two-sided identity.
	// Structural absence, not an input error.
	ErrNoIdentity = errors.New("algebra: no identity element exists")

	// ErrNotInvertible indicates an element has no inverse in the structure.
	ErrNotInvertible = errors.New("algebra: element is not invertible")

	// ErrEmptyProduct is returned by Semigroup.Product for zero operands:
	// without an identity the empty product is undefined.
	ErrEmptyProduct = errors.New("algebra: empty product is not defined in a semigroup")

	// ErrZeroPower is returned by Semigroup.Power for n = 0: without an
	// identity a⁰ is undefined.
	ErrZeroPower = errors.New("algebra: zero power is not defined in a semigroup")
)
