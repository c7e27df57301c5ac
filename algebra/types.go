package algebra

// BinaryOp is a total binary operation over the element type T.
// It is treated as an opaque capability: closure over a given carrier is a
// contract checked by NewGroupoid, never assumed.
type BinaryOp[T comparable] func(a, b T) T

// InverseFn produces the inverse candidate for an element. NewGroup
// verifies every candidate against the group laws before accepting it.
type InverseFn[T comparable] func(a T) T
