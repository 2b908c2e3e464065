package arr

import (
	"fmt"
	"reflect"
)

// ─────────────────────────────────────────────────────────────────────────────
// Traversal
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(item, index) for every element, in index order.
// It has no return value and exists purely for its side effects.
func Each[T any](items []T, fn func(T, int)) {
	for i, item := range items {
		fn(item, i)
	}
}

// Reduce folds items into a single value without a seed. The first element
// becomes the accumulator and is never passed to fn; folding starts at the
// second element.
//
// Returns [ErrEmptyCollection] when items is empty, since there is no value
// to seed the accumulator with.
//
//	Reduce([]int{5}, func(acc, n int) int { return acc + n*n }) // → 5, nil
func Reduce[T any](items []T, fn func(acc, item T) T) (T, error) {
	var acc T
	seeded := false
	Each(items, func(item T, _ int) {
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

// Fold folds items into a value of type U starting from initial.
// fn is called for every element, the first one included.
//
//	Fold([]int{1, 2, 3}, func(acc, n int) int { return acc + n }, 0) // → 6
func Fold[T, U any](items []T, fn func(acc U, item T) U, initial U) U {
	acc := initial
	Each(items, func(item T, _ int) {
		acc = fn(acc, item)
	})
	return acc
}

// ─────────────────────────────────────────────────────────────────────────────
// Searching & testing
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first element.
// Returns the zero value and false when items is empty.
func First[T any](items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[0], true
}

// FirstN returns a copy of the first n elements, clipped to len(items).
// A negative n yields an empty slice.
func FirstN[T any](items []T, n int) []T {
	n = clamp(n, len(items))
	out := make([]T, n)
	copy(out, items[:n])
	return out
}

// Last returns the last element.
// Returns the zero value and false when items is empty.
func Last[T any](items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[len(items)-1], true
}

// LastN returns a copy of the last n elements. When n exceeds len(items) the
// whole slice is returned.
func LastN[T any](items []T, n int) []T {
	n = clamp(n, len(items))
	out := make([]T, n)
	copy(out, items[len(items)-n:])
	return out
}

func clamp(n, length int) int {
	if n < 0 {
		return 0
	}
	if n > length {
		return length
	}
	return n
}

// IndexOf returns the index of the first occurrence of target, or -1.
func IndexOf[T comparable](items []T, target T) int {
	i := -1
	return Fold(items, func(found int, item T) int {
		i++
		if found == -1 && item == target {
			return i
		}
		return found
	}, -1)
}

// Contains reports whether items holds target.
// Once a match is seen the fold stays true.
func Contains[T comparable](items []T, target T) bool {
	return Fold(items, func(found bool, item T) bool {
		if found {
			return true
		}
		return item == target
	}, false)
}

// Every reports whether every element satisfies fns[0]. Without a predicate,
// an element passes only if it is a true value of a bool kind, named bool
// types included.
// Every returns true for an empty slice.
func Every[T any](items []T, fns ...func(T) bool) bool {
	pred := predicateOrTrue(fns)
	return Fold(items, func(ok bool, item T) bool {
		if !ok {
			return false
		}
		return pred(item)
	}, true)
}

// Some reports whether at least one element satisfies fns[0]. The default
// predicate matches Every's.
// Some returns false for an empty slice.
func Some[T any](items []T, fns ...func(T) bool) bool {
	pred := predicateOrTrue(fns)
	return !Every(items, func(item T) bool { return !pred(item) })
}

func predicateOrTrue[T any](fns []func(T) bool) func(T) bool {
	if len(fns) > 0 && fns[0] != nil {
		return fns[0]
	}
	return isTrue[T]
}

func isTrue[T any](item T) bool {
	v := reflect.ValueOf(item)
	return v.Kind() == reflect.Bool && v.Bool()
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map returns a new slice holding fn(item) for each element, in order.
func Map[T, U any](items []T, fn func(T) U) []U {
	out := make([]U, 0, len(items))
	Each(items, func(item T, _ int) {
		out = append(out, fn(item))
	})
	return out
}

// Filter returns the elements for which fn returns true, preserving order.
func Filter[T any](items []T, fn func(T) bool) []T {
	out := make([]T, 0, len(items))
	Each(items, func(item T, _ int) {
		if fn(item) {
			out = append(out, item)
		}
	})
	return out
}

// Reject returns the elements for which fn returns false.
func Reject[T any](items []T, fn func(T) bool) []T {
	return Filter(items, func(item T) bool { return !fn(item) })
}

// Pluck extracts a value of type U from each element of type T.
func Pluck[T, U any](items []T, fn func(T) U) []U {
	return Map(items, fn)
}

// ─────────────────────────────────────────────────────────────────────────────
// Deduplication
// ─────────────────────────────────────────────────────────────────────────────

// Uniq removes elements whose string form (fmt.Sprint) was already seen.
// Values that print the same collide, so int 1 and string "1" count as one.
// The result keeps the first value seen for each string form, in the order
// those forms were first met.
func Uniq[T any](items []T) []T {
	return UniqBy(items, func(item T) string { return fmt.Sprint(item) })
}

// UniqBy removes elements whose key, as extracted by fn, was already seen.
func UniqBy[T any, K comparable](items []T, fn func(T) K) []T {
	seen := make(map[K]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		k := fn(item)
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			out = append(out, item)
		}
	}
	return out
}
