// Package objects provides helpers for string-keyed maps: shallow merging
// with [Extend] and [Defaults], and dot-notation access to nested
// map[string]any values with [Get], [Set] and [Has].
//
// Extend and Defaults mutate and return their target:
//
//	opts, err := objects.Defaults(userOpts, map[string]any{"retries": 3, "verbose": false})
package objects
