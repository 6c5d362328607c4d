package fold

// Fold — generic right fold over a slice.
//
// Description:
//
//	Fold collapses xs to a single value by applying transform to every
//	element and merging the results with combine, associating to the
//	right:
//
//	    Fold([x0, x1, ..., xn-1]) =
//	        combine(transform(x0),
//	            combine(transform(x1),
//	                ... combine(transform(xn-1), identity) ... ))
//
//	The identity sits at the far right and is returned unchanged for an
//	empty slice. It defaults to the zero value of T and is overridden
//	with WithIdentity.
//
// Algorithm Outline:
//  1. Apply options; validate transform and combine are non-nil.
//  2. acc = identity.
//  3. For i = len(xs)-1 down to 0: acc = combine(transform(xs[i]), acc).
//  4. Return acc.
//
//	The loop walks the slice from the tail so the evaluation order is
//	exactly that of the naive recursive right fold, without its two
//	costs: no call-stack growth proportional to len(xs) and no repeated
//	re-slicing of the remainder.
//
// Evaluation order:
//
//	Right-fold order is part of the contract. For non-commutative
//	combiners the result differs from a left fold and Fold guarantees
//	the right-associated one. Use Reduce for left-to-right accumulation.
//
// Complexity:
//
//	Time   = O(n) — one transform and one combine per element
//	Memory = O(1) extra
//
// Errors:
//   - ErrNilTransform — transform is nil.
//   - ErrNilCombiner  — combine is nil.
func Fold[T any](xs []T, transform Transform[T], combine Combiner[T], opts ...Option[T]) (T, error) {
	o := DefaultOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}

	if transform == nil {
		var zero T

		return zero, ErrNilTransform
	}
	if combine == nil {
		var zero T

		return zero, ErrNilCombiner
	}

	// Walk tail→head: identical value and evaluation order to the
	// recursive combine(transform(head), Fold(tail)) formulation.
	acc := o.Identity
	for i := len(xs) - 1; i >= 0; i-- {
		acc = combine(transform(xs[i]), acc)
	}

	return acc, nil
}
