// Package seq provides an immutable, ordered, finite sequence type —
// the value-semantics input that fold-style aggregations assume.
//
// 🚀 What is Sequence?
//
//	A Sequence[T] is a snapshot of elements taken at construction time.
//	Nothing ever mutates it: Append and Concat return new sequences,
//	Values hands out a fresh copy, and the head/tail decomposition used
//	by recursive definitions is available without re-copying the tail.
//
// ✨ Key features:
//   - From / FromSlice — defensive copy on construction
//   - Head / Tail — the classic car/cdr decomposition, O(1)
//   - At, Len, IsEmpty — bounds-checked positional access
//   - Append / Concat — persistent (copy-on-write) growth
//   - All — Go 1.23 range-over-func iteration, feeding fold.ReduceSeq
//
// ⚙️ Usage:
//
//	import (
//	    "github.com/katalvlaran/lvlfold/fold"
//	    "github.com/katalvlaran/lvlfold/seq"
//	)
//
//	s := seq.From(1, 2, 3)
//	total := fold.ReduceSeq(s.All(), 0, func(acc, x int) int { return acc + x*x })
//
// Guarantees:
//
//	Sharing is safe because the backing storage is write-once: every
//	constructor copies, and no method writes through an existing backing
//	array. Tail therefore re-slices in O(1) without breaking immutability.
package seq
