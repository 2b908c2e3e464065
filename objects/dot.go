package objects

import "strings"

// Property paths address values inside nested map[string]any objects with
// dot-separated names. collections.Pluck and collections.SortBy resolve
// their key argument through Get, so "address.city" reaches one level down.
//
//	stooge := map[string]any{
//	    "name":    "moe",
//	    "address": map[string]any{"city": "Brooklyn"},
//	}
//
//	Get(stooge, "address.city")   → "Brooklyn", true
//	Has(stooge, "address.zip")    → false
//	Set(stooge, "address.zip", "11201")

// Get returns the value at path. The boolean is false when a segment is
// absent or an intermediate value is not a map[string]any.
func Get(obj map[string]any, path string) (any, bool) {
	for {
		head, rest, deeper := strings.Cut(path, ".")
		v, ok := obj[head]
		if !ok || !deeper {
			return v, ok
		}
		if obj, ok = v.(map[string]any); !ok {
			return nil, false
		}
		path = rest
	}
}

// Set stores value at path, creating intermediate objects as needed. A
// non-object value sitting on the path is replaced by an object.
func Set(obj map[string]any, path string, value any) {
	head, rest, deeper := strings.Cut(path, ".")
	if !deeper {
		obj[head] = value
		return
	}
	child, ok := obj[head].(map[string]any)
	if !ok {
		child = map[string]any{}
		obj[head] = child
	}
	Set(child, rest, value)
}

// Has reports whether a value exists at path.
func Has(obj map[string]any, path string) bool {
	_, ok := Get(obj, path)
	return ok
}
