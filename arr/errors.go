package arr

import "errors"

// ErrEmptyCollection is returned by [Reduce] when there is no element to
// seed the accumulator with.
var ErrEmptyCollection = errors.New("arr: reduce of empty slice with no initial value")
