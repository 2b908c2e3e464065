package collections

import (
	"cmp"
	"fmt"
	"sort"

	"github.com/hasbyte1/go-underbar/arr"
)

// This file contains package-level generic functions for operations that
// either change the element type or need a constraint the Collection type
// parameter does not carry.
//
// Go generics do not allow methods to introduce their own type parameters, so
// these operations are stand-alone functions:
//
//	names := collections.Map(people, func(p Person) string { return p.Name })

// Reduce folds c without a seed: the first value in enumeration order seeds
// the accumulator and is never passed to fn.
// Returns [ErrEmptyCollection] when c has no elements.
func Reduce[T any](c Enumerable[T], fn func(acc, item T) T) (T, error) {
	var acc T
	seeded := false
	c.Each(func(item T, _ Key, _ *Collection[T]) {
		if !seeded {
			acc, seeded = item, true
			return
		}
		acc = fn(acc, item)
	})
	if !seeded {
		return acc, ErrEmptyCollection
	}
	return acc, nil
}

// Fold folds c into a value of type U starting from initial.
//
//	total := collections.Fold(prices, func(sum float64, p float64) float64 { return sum + p }, 0)
func Fold[T, U any](c Enumerable[T], fn func(acc U, item T) U, initial U) U {
	acc := initial
	c.Each(func(item T, _ Key, _ *Collection[T]) {
		acc = fn(acc, item)
	})
	return acc
}

// Map applies fn to every value and returns a new Sequence of the results
// in enumeration order.
//
//	lengths := collections.Map(words, func(s string) int { return len(s) })
func Map[T, U any](c Enumerable[T], fn func(T) U) *Collection[U] {
	out := make([]U, 0, c.Count())
	c.Each(func(item T, _ Key, _ *Collection[T]) {
		out = append(out, fn(item))
	})
	return &Collection[U]{kind: Sequence, items: out}
}

// Contains reports whether any value equals target. Values of different
// dynamic types, or of types that cannot be compared, are never equal.
func Contains[T any](c Enumerable[T], target T) bool {
	return Fold(c, func(found bool, item T) bool {
		if found {
			return true
		}
		return equal(item, target)
	}, false)
}

// IndexOf returns the enumeration position of the first value equal to
// target, or -1.
func IndexOf[T any](c Enumerable[T], target T) int {
	i := -1
	return Fold(c, func(found int, item T) int {
		i++
		if found == -1 && equal(item, target) {
			return i
		}
		return found
	}, -1)
}

// Pluck reads the property named key from every value and returns the
// results as a Sequence. key may be a struct field, a map key, a slice index
// or a dot-separated path through them ("address.city"). A property missing
// from a map yields nil.
//
// Returns [ErrInvalidArgument] when a value cannot hold properties (an int,
// say) or a struct lacks the exported field.
func Pluck[T any](c *Collection[T], key string) (*Collection[any], error) {
	out := make([]any, 0, c.Count())
	var firstErr error
	c.Each(func(item T, k Key, _ *Collection[T]) {
		if firstErr != nil {
			return
		}
		v, err := lookup(item, key)
		if err != nil {
			firstErr = fmt.Errorf("pluck %q at %s: %w", key, k, err)
			return
		}
		out = append(out, v)
	})
	if firstErr != nil {
		return nil, firstErr
	}
	return &Collection[any]{kind: Sequence, items: out}, nil
}

// Invoke calls the method named method on every value, passing args, and
// collects the results in order. A method with no results yields nil, one
// result yields that value, several results yield a []any.
//
//	upper, err := collections.Invoke(names, "ToUpper") // for a type with a ToUpper() method
//
// Returns [ErrInvalidArgument] when a value lacks the method or args do not
// fit its signature.
func Invoke[T any](c *Collection[T], method string, args ...any) (*Collection[any], error) {
	out := make([]any, 0, c.Count())
	var firstErr error
	c.Each(func(item T, k Key, _ *Collection[T]) {
		if firstErr != nil {
			return
		}
		v, err := callMethod(item, method, args)
		if err != nil {
			firstErr = fmt.Errorf("invoke %q at %s: %w", method, k, err)
			return
		}
		out = append(out, v)
	})
	if firstErr != nil {
		return nil, firstErr
	}
	return &Collection[any]{kind: Sequence, items: out}, nil
}

// InvokeFunc calls fn(value, args...) for every value. See [arr.Invoke].
func InvokeFunc[T, R any](c *Collection[T], fn func(T, ...any) R, args ...any) *Collection[R] {
	return &Collection[R]{kind: Sequence, items: arr.Invoke(c.items, fn, args...)}
}

// SortBy returns the values as a Sequence sorted ascending by the property
// named key (resolved like [Pluck]). Numbers, strings and booleans sort by
// their natural order; values missing the property sort last. Values with
// equal keys keep their relative order.
//
// Returns [ErrInvalidArgument] when the keys are not all of one orderable
// kind.
func SortBy[T any](c *Collection[T], key string) (*Collection[T], error) {
	keys := make([]sortKey, 0, c.Count())
	var firstErr error
	c.Each(func(item T, k Key, _ *Collection[T]) {
		if firstErr != nil {
			return
		}
		v, err := lookup(item, key)
		if err == nil {
			var sk sortKey
			sk, err = newSortKey(v)
			keys = append(keys, sk)
		}
		if err != nil {
			firstErr = fmt.Errorf("sortBy %q at %s: %w", key, k, err)
		}
	})
	if firstErr != nil {
		return nil, firstErr
	}
	if err := checkSortKeys(keys); err != nil {
		return nil, fmt.Errorf("sortBy %q: %w", key, err)
	}

	idx := make([]int, len(keys))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return keys[idx[a]].less(keys[idx[b]]) })
	out := make([]T, len(idx))
	for i, j := range idx {
		out[i] = c.items[j]
	}
	return &Collection[T]{kind: Sequence, items: out}, nil
}

// SortByFunc returns the values as a Sequence sorted ascending by the key fn
// derives. See [arr.SortBy].
func SortByFunc[T any, K cmp.Ordered](c *Collection[T], fn func(T) K) *Collection[T] {
	return &Collection[T]{kind: Sequence, items: arr.SortBy(c.items, fn)}
}
