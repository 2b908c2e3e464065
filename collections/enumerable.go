package collections

// Enumerable is the traversal surface the package-level folds and maps are
// written against. [Collection][T] satisfies it.
//
// Accept Enumerable in your own helpers so that they work for both
// Sequences and Mappings without caring which one they were given.
type Enumerable[T any] interface {
	// Each calls fn(value, key, collection) for every element in
	// enumeration order.
	Each(fn func(T, Key, *Collection[T]))

	// Count returns the number of elements.
	Count() int

	// Kind reports whether the elements are indexed or named.
	Kind() Kind
}

var _ Enumerable[int] = (*Collection[int])(nil)
