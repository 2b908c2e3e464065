package arr

import (
	"cmp"
	"math/rand/v2"
	"reflect"
	"sort"
)

// ─────────────────────────────────────────────────────────────────────────────
// Randomisation
// ─────────────────────────────────────────────────────────────────────────────

// Source picks a uniformly random int in [0, n). *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Shuffle returns a shuffled copy of items; items itself is left untouched.
// See [ShuffleWith] for the exact swap rule.
func Shuffle[T any](items []T) []T {
	return ShuffleWith(items, globalSource{})
}

// ShuffleWith returns a copy of items where, for each index i from first to
// last, the element at i is swapped with the element at src.IntN(len).
//
// The swap target is drawn from the whole slice at every step rather than
// from [i, len), so the permutations are not equally likely.
func ShuffleWith[T any](items []T, src Source) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := range out {
		j := src.IntN(len(out))
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Invocation & sorting
// ─────────────────────────────────────────────────────────────────────────────

// Invoke calls fn(item, args...) for each element and collects the results
// in order.
func Invoke[T, R any](items []T, fn func(T, ...any) R, args ...any) []R {
	return Map(items, func(item T) R { return fn(item, args...) })
}

// SortBy returns a copy of items sorted ascending by the key fn derives.
// Elements with equal keys keep their relative order.
func SortBy[T any, K cmp.Ordered](items []T, fn func(T) K) []T {
	keys := Map(items, fn)
	idx := make([]int, len(items))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return cmp.Less(keys[idx[a]], keys[idx[b]]) })
	return Map(idx, func(i int) T { return items[i] })
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing & Restructuring
// ─────────────────────────────────────────────────────────────────────────────

// Zip groups the elements of every array by index. The result is as long as
// the longest input; shorter inputs are padded with [Missing].
//
//	Zip([]int{1, 2, 3}, []int{10, 20})
//	// → [[1 10] [2 20] [3 <missing>]]
func Zip[T any](arrays ...[]T) [][]Optional[T] {
	longest := Fold(arrays, func(n int, a []T) int { return max(n, len(a)) }, 0)
	out := make([][]Optional[T], longest)
	for i := range out {
		row := make([]Optional[T], len(arrays))
		for j, a := range arrays {
			row[j] = at(a, i)
		}
		out[i] = row
	}
	return out
}

// Zip2 pairs the elements of a and b by index, padding the shorter side with
// [Missing].
//
//	Zip2([]string{"a", "b", "c", "d"}, []int{1, 2, 3})
//	// → [(a, 1) (b, 2) (c, 3) (d, <missing>)]
func Zip2[A, B any](a []A, b []B) []Pair[Optional[A], Optional[B]] {
	n := max(len(a), len(b))
	out := make([]Pair[Optional[A], Optional[B]], n)
	for i := 0; i < n; i++ {
		out[i] = Pair[Optional[A], Optional[B]]{First: at(a, i), Second: at(b, i)}
	}
	return out
}

// Collapse flattens a slice of slices into a single flat slice.
func Collapse[T any](items [][]T) []T {
	total := 0
	for _, chunk := range items {
		total += len(chunk)
	}
	out := make([]T, 0, total)
	for _, chunk := range items {
		out = append(out, chunk...)
	}
	return out
}

// Flatten concatenates nested slices and arrays of any element type into one
// flat slice, keeping element order. With shallow set only one level of
// nesting is removed.
//
//	Flatten([]any{1, []any{2, []any{3, []int{4}}}}, false) // → [1 2 3 4]
//	Flatten([]any{1, []any{2, []any{3}}}, true)           // → [1 2 [3]]
func Flatten(items []any, shallow bool) []any {
	out := make([]any, 0, len(items))
	var flatten func(v reflect.Value, depth int)
	flatten = func(v reflect.Value, depth int) {
		for i := 0; i < v.Len(); i++ {
			elem := v.Index(i)
			if elem.Kind() == reflect.Interface && !elem.IsNil() {
				elem = elem.Elem()
			}
			if isList(elem) && (!shallow || depth == 0) {
				flatten(elem, depth+1)
				continue
			}
			out = append(out, elem.Interface())
		}
	}
	flatten(reflect.ValueOf(items), 0)
	return out
}

func isList(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		return true
	}
	return false
}

// ─────────────────────────────────────────────────────────────────────────────
// Set operations
// ─────────────────────────────────────────────────────────────────────────────

// Intersection returns the elements of the first array that are present in
// every other array. Order and duplicates follow the first array.
func Intersection[T comparable](arrays ...[]T) []T {
	if len(arrays) == 0 {
		return []T{}
	}
	sets := Map(arrays[1:], toSet[T])
	return Filter(arrays[0], func(item T) bool {
		return Every(sets, func(set map[T]struct{}) bool {
			_, ok := set[item]
			return ok
		})
	})
}

// Difference returns the elements of items that appear in none of others,
// preserving the order of items.
func Difference[T comparable](items []T, others ...[]T) []T {
	exclude := toSet(Collapse(others))
	return Reject(items, func(item T) bool {
		_, ok := exclude[item]
		return ok
	})
}

func toSet[T comparable](items []T) map[T]struct{} {
	set := make(map[T]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}
