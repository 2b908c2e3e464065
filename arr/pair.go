package arr

import "fmt"

// Optional holds a value that may be missing. [Zip] pads shorter inputs with
// a missing Optional.
type Optional[T any] struct {
	Value   T
	Present bool
}

// Just wraps v as a present Optional.
func Just[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Present: true}
}

// Missing returns the missing-value sentinel for T.
func Missing[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) { return o.Value, o.Present }

// String renders the value, or "<missing>".
func (o Optional[T]) String() string {
	if !o.Present {
		return "<missing>"
	}
	return fmt.Sprint(o.Value)
}

// Pair holds two values of possibly different types.
// It is the element type produced by [Zip2].
type Pair[A, B any] struct {
	First  A
	Second B
}

// String returns a human-readable representation: "(first, second)".
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

func at[T any](items []T, i int) Optional[T] {
	if i < len(items) {
		return Just(items[i])
	}
	return Missing[T]()
}
