package algebra

import "github.com/katalvlaran/finitealgebra/set"

// Groupoid is a finite carrier set together with a closed binary
// operation. It is the base level of the structure hierarchy; every
// stronger structure embeds it.
type Groupoid[T comparable] struct {
	elements *set.Set[T]
	op       BinaryOp[T]
}

// NewGroupoid validates closure over every ordered pair and returns the
// groupoid, or ErrNotClosed on the first violation.
//
// The carrier is cloned; later mutation of elements does not affect the
// returned structure.
//
// Complexity: O(n²) operation applications, n = |elements|.
func NewGroupoid[T comparable](elements *set.Set[T], op BinaryOp[T]) (*Groupoid[T], error) {
	g := &Groupoid[T]{elements: elements.Clone(), op: op}

	for _, a := range g.elements.Elements() {
		for _, b := range g.elements.Elements() {
			if !g.elements.Contains(op(a, b)) {
				return nil, ErrNotClosed
			}
		}
	}

	return g, nil
}

// Operate applies the binary operation to a and b.
// Returns ErrNotInCarrier if either operand is foreign, and ErrNotClosed
// if the result escapes the carrier (unreachable after validation; kept
// as a tripwire for a misbehaving operation closure).
func (g *Groupoid[T]) Operate(a, b T) (T, error) {
	var zero T
	if !g.elements.Contains(a) || !g.elements.Contains(b) {
		return zero, ErrNotInCarrier
	}

	res := g.op(a, b)
	if !g.elements.Contains(res) {
		return zero, ErrNotClosed
	}

	return res, nil
}

// Set returns a copy of the carrier set.
func (g *Groupoid[T]) Set() *set.Set[T] {
	return g.elements.Clone()
}

// Contains reports whether e belongs to the carrier.
func (g *Groupoid[T]) Contains(e T) bool {
	return g.elements.Contains(e)
}

// Order returns the carrier size |S|.
func (g *Groupoid[T]) Order() int {
	return g.elements.Len()
}

// IsAssociative re-checks (a∘b)∘c = a∘(b∘c) for every triple.
// Always true for a Semigroup or stronger; exposed so callers can probe a
// bare groupoid before promoting it.
// Complexity: O(n³)
func (g *Groupoid[T]) IsAssociative() bool {
	elems := g.elements.Elements()
	for _, a := range elems {
		for _, b := range elems {
			for _, c := range elems {
				if g.op(g.op(a, b), c) != g.op(a, g.op(b, c)) {
					return false
				}
			}
		}
	}

	return true
}

// IsCommutative checks a∘b = b∘a for every pair.
// Complexity: O(n²)
func (g *Groupoid[T]) IsCommutative() bool {
	elems := g.elements.Elements()
	for _, a := range elems {
		for _, b := range elems {
			if g.op(a, b) != g.op(b, a) {
				return false
			}
		}
	}

	return true
}

// IsIdempotent checks a∘a = a for every element.
// Complexity: O(n)
func (g *Groupoid[T]) IsIdempotent() bool {
	for _, a := range g.elements.Elements() {
		if g.op(a, a) != a {
			return false
		}
	}

	return true
}

// HasLeftCancellation checks: a∘b = a∘c implies b = c.
// Complexity: O(n³)
func (g *Groupoid[T]) HasLeftCancellation() bool {
	elems := g.elements.Elements()
	for _, a := range elems {
		for _, b := range elems {
			for _, c := range elems {
				if b != c && g.op(a, b) == g.op(a, c) {
					return false
				}
			}
		}
	}

	return true
}

// HasRightCancellation checks: b∘a = c∘a implies b = c.
// Complexity: O(n³)
func (g *Groupoid[T]) HasRightCancellation() bool {
	elems := g.elements.Elements()
	for _, a := range elems {
		for _, b := range elems {
			for _, c := range elems {
				if b != c && g.op(b, a) == g.op(c, a) {
					return false
				}
			}
		}
	}

	return true
}

// HasCancellation reports whether both cancellation laws hold.
func (g *Groupoid[T]) HasCancellation() bool {
	return g.HasLeftCancellation() && g.HasRightCancellation()
}
