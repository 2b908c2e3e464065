package collections

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Collection operations.
var (
	// ErrInvalidArgument is returned when a value handed to a traversal
	// operation is not a collection, or an element lacks the property or
	// method an operation asked for.
	ErrInvalidArgument = errors.New("collections: invalid argument")

	// ErrEmptyCollection is returned by [Reduce] when there is no element
	// to seed the accumulator with.
	ErrEmptyCollection = errors.New("collections: reduce of empty collection with no initial value")

	// ErrMismatchedLengths is returned by [FromPairs] when the key and value
	// slices have different lengths.
	ErrMismatchedLengths = errors.New("collections: keys and values must have the same length")

	// ErrNotMapping is returned when a write that needs string keys is
	// attempted on a Sequence. It wraps [ErrInvalidArgument].
	ErrNotMapping = fmt.Errorf("%w: operation requires a mapping", ErrInvalidArgument)
)
