package seq

import "errors"

var (
	// ErrEmptySequence indicates Head or Tail was called on an empty sequence.
	ErrEmptySequence = errors.New("seq: sequence is empty")
	// ErrIndexOutOfRange indicates a positional access outside [0, Len).
	ErrIndexOutOfRange = errors.New("seq: index out of range")
)
