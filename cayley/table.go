package cayley

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/finitealgebra/set"
)

var (
	// ErrNotInTable indicates a lookup on an element the table does not hold.
	ErrNotInTable = errors.New("cayley: element not in table")

	// ErrNoIdentity indicates the table encodes no two-sided identity.
	ErrNoIdentity = errors.New("cayley: no identity element found")
)

// Structure is the minimal surface a table is built from: a carrier
// snapshot and the validated operation. Every level of the algebra
// hierarchy satisfies it.
type Structure[T comparable] interface {
	Set() *set.Set[T]
	Operate(a, b T) (T, error)
}

// Table is the complete enumeration of an operation over a finite
// carrier. Results live in a flat row-major slice: the product of
// elements[i] and elements[j] sits at data[i*n+j].
type Table[T comparable] struct {
	elements []T       // fixed ordering, captured once
	index    map[T]int // element → row/column position
	data     []T       // row-major results, len n*n
}

// New enumerates every ordered pair of s's carrier and stores the
// results. An operation error surfaces unchanged (unreachable for a
// validated structure).
// Complexity: O(n²) operation applications, O(n²) memory.
func New[T comparable](s Structure[T]) (*Table[T], error) {
	elements := s.Set().Elements()
	n := len(elements)

	index := make(map[T]int, n)
	for i, e := range elements {
		index[e] = i
	}

	data := make([]T, n*n)
	for i, a := range elements {
		for j, b := range elements {
			res, err := s.Operate(a, b)
			if err != nil {
				return nil, err
			}
			data[i*n+j] = res
		}
	}

	return &Table[T]{elements: elements, index: index, data: data}, nil
}

// at returns the stored product of the i-th and j-th elements.
func (t *Table[T]) at(i, j int) T {
	return t.data[i*len(t.elements)+j]
}

// Lookup returns a∘b from the table, never invoking the operation.
// Complexity: O(1)
func (t *Table[T]) Lookup(a, b T) (T, error) {
	i, ok := t.index[a]
	if !ok {
		var zero T

		return zero, ErrNotInTable
	}
	j, ok := t.index[b]
	if !ok {
		var zero T

		return zero, ErrNotInTable
	}

	return t.at(i, j), nil
}

// Elements returns the table's fixed element ordering.
func (t *Table[T]) Elements() []T {
	out := make([]T, len(t.elements))
	copy(out, t.elements)

	return out
}

// Size returns the number of elements (the table is Size×Size).
func (t *Table[T]) Size() int {
	return len(t.elements)
}

// IsAssociative checks (a∘b)∘c = a∘(b∘c) for every triple, by table
// lookups only. A table whose stored products escape the element set
// (possible with an unvalidated Structure) reports false: the chained
// lookup has no row to continue from.
// Complexity: O(n³)
func (t *Table[T]) IsAssociative() bool {
	n := len(t.elements)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			ij, ok := t.index[t.at(i, j)]
			if !ok {
				return false
			}
			for k := 0; k < n; k++ {
				jk, ok := t.index[t.at(j, k)]
				if !ok {
					return false
				}
				if t.at(ij, k) != t.at(i, jk) {
					return false
				}
			}
		}
	}

	return true
}

// IsCommutative checks a∘b = b∘a for every pair, by table lookups only.
// Complexity: O(n²)
func (t *Table[T]) IsCommutative() bool {
	n := len(t.elements)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if t.at(i, j) != t.at(j, i) {
				return false
			}
		}
	}

	return true
}

// FindIdentity scans for a two-sided identity row/column pair, returning
// ErrNoIdentity when none exists.
// Complexity: O(n²)
func (t *Table[T]) FindIdentity() (T, error) {
	n := len(t.elements)
	for i := 0; i < n; i++ {
		isIdentity := true
		for j := 0; j < n; j++ {
			if t.at(i, j) != t.elements[j] || t.at(j, i) != t.elements[j] {
				isIdentity = false
				break
			}
		}
		if isIdentity {
			return t.elements[i], nil
		}
	}

	var zero T

	return zero, ErrNoIdentity
}

// HasLeftCancellation checks that every row is a permutation of the
// carrier: a∘b = a∘c implies b = c.
// Complexity: O(n²)
func (t *Table[T]) HasLeftCancellation() bool {
	n := len(t.elements)
	for i := 0; i < n; i++ {
		seen := make(map[T]struct{}, n)
		for j := 0; j < n; j++ {
			res := t.at(i, j)
			if _, dup := seen[res]; dup {
				return false
			}
			seen[res] = struct{}{}
		}
	}

	return true
}

// HasRightCancellation checks that every column is a permutation of the
// carrier: b∘a = c∘a implies b = c.
// Complexity: O(n²)
func (t *Table[T]) HasRightCancellation() bool {
	n := len(t.elements)
	for j := 0; j < n; j++ {
		seen := make(map[T]struct{}, n)
		for i := 0; i < n; i++ {
			res := t.at(i, j)
			if _, dup := seen[res]; dup {
				return false
			}
			seen[res] = struct{}{}
		}
	}

	return true
}

// HasCancellation reports whether both cancellation laws hold.
func (t *Table[T]) HasCancellation() bool {
	return t.HasLeftCancellation() && t.HasRightCancellation()
}

// Format renders the table as padded text using toStr for elements.
// The top-left cell holds the operation symbol ∘.
func (t *Table[T]) Format(toStr func(T) string) string {
	width := 3
	for _, e := range t.elements {
		if w := utf8.RuneCountInString(toStr(e)) + 2; w > width {
			width = w
		}
	}

	pad := func(s string) string {
		return strings.Repeat(" ", width-utf8.RuneCountInString(s)) + s
	}

	var b strings.Builder
	b.WriteString(pad("∘"))
	for _, e := range t.elements {
		b.WriteString(pad(toStr(e)))
	}
	b.WriteByte('\n')

	n := len(t.elements)
	for i := 0; i < n; i++ {
		b.WriteString(pad(toStr(t.elements[i])))
		for j := 0; j < n; j++ {
			b.WriteString(pad(toStr(t.at(i, j))))
		}
		b.WriteByte('\n')
	}

	return b.String()
}
