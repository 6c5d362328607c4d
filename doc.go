// Package lvlfold is a small, pure library for folding ordered sequences —
// generic reduce, immutable sequences, and first-class function helpers.
//
// 🚀 What is lvlfold?
//
//	A zero-I/O toolkit that brings together:
//		• fold — right fold with caller-supplied identity, plus Reduce /
//		  ReduceSeq for general left accumulation over slices and iterators
//		• Named building blocks: Square, Cube, Add, Mul, Keep
//		• Ready-made specializations: Sum, Product, SumOfSquares,
//		  SumOfCubes, ProductOfSquares, ProductOfCubes
//		• seq — immutable, ordered Sequence values with O(1) head/tail
//		  decomposition and Go 1.23 iteration
//		• fn — Identity, Constant, Pipe, Compose, Curry & friends
//
// ✨ Why choose lvlfold?
//
//   - Beginner-friendly — minimal API, clear, intuitive naming
//   - Pure Go — no cgo, no hidden deps, no shared mutable state
//   - Explicit semantics — right-fold order guaranteed, identity is
//     always the caller's choice, empty-sequence behavior documented
//   - Extensible — every aggregate is one Fold/Reduce call away
//
// Everything is organized under three subpackages:
//
//	fold/ — Fold, Reduce, ReduceSeq, transforms, combiners & wrappers
//	seq/  — immutable Sequence[T] with snapshot construction
//	fn/   — first-class function composition helpers
//
// Quick example:
//
//	total, _ := fold.Fold([]int{1, 2, 3}, fold.Square, fold.Add) // 14
//
// Dive into the per-package docs and examples/ for full walkthroughs.
//
//	go get github.com/katalvlaran/lvlfold
package lvlfold
