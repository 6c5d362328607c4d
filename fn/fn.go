package fn

// Identity returns its argument unchanged. It is the unit of Compose and
// the no-op Transform for folds that only combine.
func Identity[T any](v T) T {
	return v
}

// Constant returns a nullary function that always yields v.
func Constant[T any](v T) func() T {
	return func() T {
		return v
	}
}

// Pipe applies fns to value left to right: Pipe(v, f, g) == g(f(v)).
func Pipe[T any](value T, fns ...func(T) T) T {
	result := value
	for _, f := range fns {
		result = f(result)
	}

	return result
}

// Compose composes fns right to left: Compose(f, g)(v) == f(g(v)),
// matching the mathematical reading f∘g.
func Compose[T any](fns ...func(T) T) func(T) T {
	return func(value T) T {
		result := value
		for i := len(fns) - 1; i >= 0; i-- {
			result = fns[i](result)
		}

		return result
	}
}

// Compose2 is typed left-to-right composition across two steps:
// Compose2(f, g)(a) == g(f(a)). Unlike Compose, the intermediate type may
// differ from both endpoint types.
func Compose2[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Curry converts a binary function into its one-argument-at-a-time form:
// Curry(f)(a)(b) == f(a, b). Useful for partially applying a Combiner.
func Curry[A, B, C any](f func(A, B) C) func(A) func(B) C {
	return func(a A) func(B) C {
		return func(b B) C {
			return f(a, b)
		}
	}
}

// Uncurry inverts Curry: Uncurry(Curry(f)) == f.
func Uncurry[A, B, C any](f func(A) func(B) C) func(A, B) C {
	return func(a A, b B) C {
		return f(a)(b)
	}
}
