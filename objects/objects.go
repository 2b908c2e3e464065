package objects

// Extend copies every key of each source into target, left to right, and
// returns target. Later sources overwrite earlier ones and target's own
// values.
//
//	opts, _ := objects.Extend(map[string]any{"a": 1}, map[string]any{"a": 2, "b": 2})
//	// → {"a": 2, "b": 2}
//
// Returns [ErrNilTarget] when target is nil.
func Extend[M ~map[string]V, V any](target M, sources ...M) (M, error) {
	if target == nil {
		return nil, ErrNilTarget
	}
	for _, source := range sources {
		for k, v := range source {
			target[k] = v
		}
	}
	return target, nil
}

// Defaults is like [Extend] but never overwrites a key already present in
// target. Presence is checked before every assignment, so a key filled in by
// an earlier source also blocks later sources.
//
//	opts, _ := objects.Defaults(map[string]any{"a": 1}, map[string]any{"a": 2, "b": 2})
//	// → {"a": 1, "b": 2}
func Defaults[M ~map[string]V, V any](target M, sources ...M) (M, error) {
	if target == nil {
		return nil, ErrNilTarget
	}
	for _, source := range sources {
		for k, v := range source {
			if _, exists := target[k]; !exists {
				target[k] = v
			}
		}
	}
	return target, nil
}
