// Package collections provides [Collection][T], a value that is either an
// ordered Sequence or a string-keyed Mapping, together with traversal and
// derived operations that accept both kinds interchangeably.
//
// # Overview
//
// Every operation is built on [Collection.Each], which calls
// fn(value, key, collection) for each element. For a Sequence the key holds
// the 0-based index; for a Mapping it holds the property name, and
// enumeration follows key insertion order.
//
//	c := collections.FromMap(map[string]int{"one": 1, "two": 2, "three": 3})
//	evens := c.Filter(func(n int) bool { return n%2 == 0 }) // Sequence [2]
//	sum := collections.Fold(c, func(acc, n int) int { return acc + n }, 0)
//
// [Reduce] is the unseeded fold: the first value seeds the accumulator, and
// an empty collection yields [ErrEmptyCollection] rather than a placeholder.
//
// # Runtime shapes
//
// [FromAny] accepts values whose shape is only known at runtime and fails
// fast with [ErrInvalidArgument] for anything that is not a slice, array or
// string-keyed map. [Pluck], [Invoke] and [SortBy] address element
// properties and methods by name through reflection and report
// [ErrInvalidArgument] when an element does not have them.
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters, so
// operations that change the element type are package-level functions:
// [Map], [Fold], [Pluck], [Invoke], [InvokeFunc].
//
// Derived operations never mutate their input and always return a Sequence.
// [Collection.Set], [Collection.Extend] and [Collection.Defaults] are the
// only writers, and only on a Mapping.
package collections
