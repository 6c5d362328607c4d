// Package fold — named transforms, combiners and the classic numeric
// specializations built on Fold.
//
// These are the textbook instantiations: every wrapper is one Fold call
// with the appropriate transform, combiner and identity, so their
// semantics follow directly from Fold's contract.
package fold

// Square returns x².
func Square[T Numeric](x T) T { return x * x }

// Cube returns x³.
func Cube[T Numeric](x T) T { return x * x * x }

// Keep returns x unchanged — the no-op Transform for folds that only combine.
func Keep[T any](x T) T { return x }

// Add returns a+b — the additive Combiner. Identity: 0.
func Add[T Numeric](a, b T) T { return a + b }

// Mul returns a·b — the multiplicative Combiner. Identity: 1.
func Mul[T Numeric](a, b T) T { return a * b }

// Sum returns the sum of all elements; 0 for an empty slice.
func Sum[T Numeric](xs []T) T {
	// Keep and Add are non-nil: the error path of Fold is unreachable.
	total, _ := Fold(xs, Keep[T], Add[T])

	return total
}

// Product returns the product of all elements; 1 for an empty slice.
func Product[T Numeric](xs []T) T {
	p, _ := Fold(xs, Keep[T], Mul[T], WithIdentity[T](1))

	return p
}

// SumOfSquares returns Σ x²; 0 for an empty slice.
func SumOfSquares[T Numeric](xs []T) T {
	total, _ := Fold(xs, Square[T], Add[T])

	return total
}

// SumOfCubes returns Σ x³; 0 for an empty slice.
func SumOfCubes[T Numeric](xs []T) T {
	total, _ := Fold(xs, Cube[T], Add[T])

	return total
}

// ProductOfSquares returns Π x²; 1 for an empty slice.
func ProductOfSquares[T Numeric](xs []T) T {
	p, _ := Fold(xs, Square[T], Mul[T], WithIdentity[T](1))

	return p
}

// ProductOfCubes returns Π x³; 1 for an empty slice.
func ProductOfCubes[T Numeric](xs []T) T {
	p, _ := Fold(xs, Cube[T], Mul[T], WithIdentity[T](1))

	return p
}
