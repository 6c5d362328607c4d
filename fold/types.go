// Package fold defines function types, numeric constraints, options and
// error sentinels shared by the fold/reduce entry points.
package fold

import "errors"

// Sentinel errors for fold execution.
var (
	// ErrNilTransform is returned when a nil Transform is supplied.
	ErrNilTransform = errors.New("fold: transform must not be nil")

	// ErrNilCombiner is returned when a nil Combiner is supplied.
	ErrNilCombiner = errors.New("fold: combiner must not be nil")
)

// Transform is a pure unary function applied to each element before it is
// combined into the running result. It must be side-effect free; Fold may
// assume calling it twice with the same argument yields the same value.
type Transform[T any] func(T) T

// Combiner is a pure binary function merging a transformed element (first
// argument) with the fold of the remaining elements (second argument).
// Fold preserves right-fold argument order, so non-commutative combiners
// behave exactly as written.
type Combiner[T any] func(T, T) T

// Numeric constrains type parameters to built-in numeric types.
// cmp.Ordered is deliberately not used here: it admits ~string, which has
// no multiplicative structure and would make Product-style wrappers ill-typed.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Option configures Fold behavior via functional arguments.
type Option[T any] func(*Options[T])

// Options holds parameters customizing a single Fold invocation.
type Options[T any] struct {
	// Identity is the value returned for an empty sequence and seeded at
	// the right end of the fold. It should be the identity element of the
	// Combiner: 0 for addition, 1 for multiplication, and so on.
	Identity T
}

// DefaultOptions returns Options with the zero value of T as Identity.
//
// The zero value is the correct identity for additive combiners only.
// Multiplicative folds left on the default collapse to zero — supply
// WithIdentity(1) for those. See the package documentation.
func DefaultOptions[T any]() Options[T] {
	var zero T

	return Options[T]{Identity: zero}
}

// WithIdentity sets the empty-sequence value and right-end seed of the fold.
func WithIdentity[T any](v T) Option[T] {
	return func(o *Options[T]) {
		o.Identity = v
	}
}
