package fold

import "iter"

// Reduce — general left-to-right accumulation.
//
// Description:
//
//	Reduce folds xs into a single value of a possibly different type A,
//	starting from initial and feeding each element to accumulate:
//
//	    Reduce([x0, x1, ..., xn-1], init, f) =
//	        f(... f(f(init, x0), x1) ..., xn-1)
//
//	Unlike Fold, the accumulator type is independent of the element
//	type, which makes Reduce the right tool for building strings, maps
//	or aggregates from element streams.
//
// Contract:
//   - accumulate must be non-nil when xs is non-empty; it is never
//     called for an empty slice, in which case initial is returned as-is.
//   - Left-to-right order is guaranteed.
//
// Complexity: O(n) time, O(1) extra memory.
func Reduce[T, A any](xs []T, initial A, accumulate func(A, T) A) A {
	acc := initial
	for _, x := range xs {
		acc = accumulate(acc, x)
	}

	return acc
}

// ReduceSeq is Reduce over a Go 1.23 iterator instead of a slice.
//
// The sequence must be finite; ReduceSeq consumes it entirely.
// Pairs naturally with seq.Sequence.All and slices.Values.
//
// Complexity: O(n) time, O(1) extra memory.
func ReduceSeq[T, A any](it iter.Seq[T], initial A, accumulate func(A, T) A) A {
	acc := initial
	for x := range it {
		acc = accumulate(acc, x)
	}

	return acc
}
