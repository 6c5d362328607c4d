// Package fn provides small first-class function helpers — identity,
// constant, composition and currying — for wiring transforms and
// combiners together without ad-hoc closures.
//
// 🚀 Why a helpers package?
//
//	Higher-order code reads best when the plumbing has names. Instead of
//	writing a fresh closure at every call site, compose the pieces:
//	  • Pipe(v, f, g)     — apply f then g to a value
//	  • Compose(f, g)     — build g∘f… read right-to-left, apply later
//	  • Compose2(f, g)    — typed two-step composition across types
//	  • Curry / Uncurry   — adapt binary functions to one-argument shape
//	  • Identity, Constant — the trivial building blocks
//
// ⚙️ Usage:
//
//	import (
//	    "github.com/katalvlaran/lvlfold/fn"
//	    "github.com/katalvlaran/lvlfold/fold"
//	)
//
//	// square then double, as a reusable transform
//	sqDouble := fn.Compose(
//	    func(x int) int { return 2 * x },
//	    fold.Square,
//	)
//	total, _ := fold.Fold([]int{1, 2, 3}, sqDouble, fold.Add) // 2+8+18 = 28
//
// All helpers are pure: no state, no side effects, safe everywhere.
package fn
