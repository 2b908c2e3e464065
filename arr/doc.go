// Package arr provides standalone generic helpers for Go slices. Every
// derived operation is built on [Each], [Reduce] or [Fold].
//
// # Traversal core
//
// Every collection helper is built from two primitives:
//
//	arr.Each(items, func(item T, i int) { ... })
//	arr.Fold(items, func(acc U, item T) U { ... }, initial)
//
// [Reduce] is the unseeded form of [Fold]: the first element seeds the
// accumulator and is not passed to the reducer. Reducing an empty slice
// returns [ErrEmptyCollection] instead of a placeholder value.
//
// # Slice helpers
//
// All helpers are generic and operate on plain []T values, never mutating
// their input:
//
//	evens  := arr.Filter([]int{1, 2, 3, 4, 5}, func(n int) bool { return n%2 == 0 })
//	names  := arr.Pluck(users, func(u User) string { return u.Name })
//	pairs  := arr.Zip2([]string{"a", "b"}, []int{1})  // → [(a, 1) (b, <missing>)]
//	flat   := arr.Flatten([]any{1, []any{2, []any{3}}}, false) // → [1 2 3]
//
// # Equality
//
// [Contains], [IndexOf], [Intersection] and [Difference] compare with ==.
// [Uniq] compares string forms, so values that print the same collide.
package arr
