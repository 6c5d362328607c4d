package seq

import (
	"fmt"
	"iter"
)

// Sequence is an immutable, ordered, finite list of elements.
//
// The zero value is a valid empty sequence. Sequences are plain values:
// copy them freely, share them across goroutines — there is no mutable
// state to race on.
//
// Invariant: the backing slice is write-once. Every constructor copies its
// input, and no method ever writes through elems, so derived sequences
// (Tail) may share storage safely.
type Sequence[T any] struct {
	elems []T
}

// From builds a Sequence from the given elements.
func From[T any](xs ...T) Sequence[T] {
	return FromSlice(xs)
}

// FromSlice builds a Sequence from a copy of xs; later mutation of xs does
// not affect the sequence.
func FromSlice[T any](xs []T) Sequence[T] {
	if len(xs) == 0 {
		return Sequence[T]{}
	}
	elems := make([]T, len(xs))
	copy(elems, xs)

	return Sequence[T]{elems: elems}
}

// Len returns the number of elements.
func (s Sequence[T]) Len() int { return len(s.elems) }

// IsEmpty reports whether the sequence has no elements.
func (s Sequence[T]) IsEmpty() bool { return len(s.elems) == 0 }

// At returns the element at position i.
// Returns ErrIndexOutOfRange if i is outside [0, Len).
func (s Sequence[T]) At(i int) (T, error) {
	if i < 0 || i >= len(s.elems) {
		var zero T

		return zero, fmt.Errorf("%w: %d with length %d", ErrIndexOutOfRange, i, len(s.elems))
	}

	return s.elems[i], nil
}

// Head returns the first element.
// Returns ErrEmptySequence on an empty sequence.
func (s Sequence[T]) Head() (T, error) {
	if len(s.elems) == 0 {
		var zero T

		return zero, ErrEmptySequence
	}

	return s.elems[0], nil
}

// Tail returns the sequence without its first element, in O(1) by
// re-slicing the shared write-once storage.
// Returns ErrEmptySequence on an empty sequence.
func (s Sequence[T]) Tail() (Sequence[T], error) {
	if len(s.elems) == 0 {
		return Sequence[T]{}, ErrEmptySequence
	}

	return Sequence[T]{elems: s.elems[1:]}, nil
}

// Values returns a fresh copy of the elements; mutating it does not affect
// the sequence.
func (s Sequence[T]) Values() []T {
	if len(s.elems) == 0 {
		return nil
	}
	out := make([]T, len(s.elems))
	copy(out, s.elems)

	return out
}

// Append returns a new sequence with xs added at the end; the receiver is
// unchanged.
func (s Sequence[T]) Append(xs ...T) Sequence[T] {
	if len(xs) == 0 {
		return s
	}
	elems := make([]T, 0, len(s.elems)+len(xs))
	elems = append(elems, s.elems...)
	elems = append(elems, xs...)

	return Sequence[T]{elems: elems}
}

// Concat returns a new sequence holding the elements of s followed by the
// elements of other.
func (s Sequence[T]) Concat(other Sequence[T]) Sequence[T] {
	return s.Append(other.elems...)
}

// All returns a Go 1.23 iterator over the elements in order.
// Pairs with fold.ReduceSeq and the range statement.
func (s Sequence[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range s.elems {
			if !yield(x) {
				return
			}
		}
	}
}
