// Package fold reduces an ordered, finite sequence of elements to a single
// value by combining a per-element transform with a binary combiner.
//
// 🚀 What is fold?
//
//	A fold (also called reduce) collapses a sequence step by step:
//	each element is first passed through a unary Transform, then merged
//	into the running result with a binary Combiner.  It is the backbone
//	of countless aggregations:
//	  • sums & products (plain or of squares/cubes)
//	  • min/max and other order statistics
//	  • building maps, sets or strings from element streams
//	  • any "many values in, one value out" computation
//
// ✨ Key features:
//   - Fold — right fold with explicit evaluation order, safe for
//     non-commutative combiners
//   - Reduce / ReduceSeq — general left accumulation with a distinct
//     accumulator type, over slices or Go 1.23 iter.Seq streams
//   - caller-supplied identity via WithIdentity (the empty-sequence value)
//   - named building blocks: Square, Cube, Add, Mul
//   - ready-made wrappers: Sum, Product, SumOfSquares, ProductOfCubes, …
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlfold/fold"
//
//	// sum of squares: 1+4+9 = 14
//	total, err := fold.Fold([]int{1, 2, 3}, fold.Square, fold.Add)
//
//	// product of squares needs the multiplicative identity:
//	prod, err := fold.Fold([]int{2, 3}, fold.Square, fold.Mul,
//	    fold.WithIdentity(1)) // 4*9 = 36
//
// ⚠️ Identity pitfall:
//
//	The default identity is the zero value of T.  That is correct for
//	additive folds and deliberately wrong for multiplicative ones —
//	combine(4, combine(9, 0)) == 0.  Supply WithIdentity(1) (or the
//	identity of your combiner) whenever the combiner is not addition-like.
//
// Performance:
//
//   - Time:   O(n) for n elements, one transform + one combine per element
//   - Memory: O(1) extra — iterative, no recursion, no re-slicing
//
// See examples in example_test.go and runnable demos under examples/.
package fold
