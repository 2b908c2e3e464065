package collections

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strconv"

	"github.com/hasbyte1/go-underbar/arr"
)

// Kind tells whether a Collection is an ordered sequence or a string-keyed
// mapping.
type Kind int

const (
	// Sequence is an ordered list addressed by 0-based index.
	Sequence Kind = iota
	// Mapping is a set of string keys, enumerated in insertion order.
	Mapping
)

func (k Kind) String() string {
	if k == Mapping {
		return "mapping"
	}
	return "sequence"
}

// Key identifies an element during traversal. Index is the element's
// position in enumeration order; Name is the property name of a Mapping
// element and empty for a Sequence.
type Key struct {
	Index int
	Name  string
	named bool
}

// String returns the property name for Mapping keys and the decimal index
// for Sequence keys.
func (k Key) String() string {
	if k.named {
		return k.Name
	}
	return strconv.Itoa(k.Index)
}

// Collection is either an ordered sequence of T or a mapping from string
// keys to T. Traversal helpers accept both kinds interchangeably.
//
// Derived operations (Filter, Map, Pluck, ...) never mutate the receiver and
// always produce a Sequence, whatever the input kind. Only [Collection.Set],
// [Collection.Extend] and [Collection.Defaults] write to a Mapping.
//
// # Creating a collection
//
//	c := collections.New(1, 2, 3)
//	m := collections.FromMap(map[string]int{"a": 1, "b": 2})
//	p, _ := collections.FromPairs([]string{"z", "a"}, []int{26, 1})
//	x, err := collections.FromAny(someValue) // ErrInvalidArgument for non-collections
type Collection[T any] struct {
	kind  Kind
	items []T
	keys  []string
	pos   map[string]int
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Sequence from a variadic list of items (copied).
func New[T any](items ...T) *Collection[T] {
	return From(items)
}

// From creates a Sequence from a slice (the slice is copied).
func From[T any](items []T) *Collection[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Collection[T]{kind: Sequence, items: dst}
}

// Empty creates an empty Sequence of type T.
func Empty[T any]() *Collection[T] {
	return &Collection[T]{kind: Sequence, items: []T{}}
}

// NewMapping creates an empty Mapping of type T.
func NewMapping[T any]() *Collection[T] {
	return &Collection[T]{kind: Mapping, items: []T{}, keys: []string{}, pos: map[string]int{}}
}

// FromMap creates a Mapping from m. Go maps carry no order, so keys are
// inserted in lexical order; use [FromPairs] or [Collection.Set] to control
// enumeration order.
func FromMap[T any](m map[string]T) *Collection[T] {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	c := NewMapping[T]()
	for _, k := range keys {
		c.put(k, m[k])
	}
	return c
}

// FromPairs creates a Mapping whose keys are enumerated in the given order.
// A repeated key keeps its first position and its last value.
// Returns [ErrMismatchedLengths] if len(keys) != len(values).
func FromPairs[T any](keys []string, values []T) (*Collection[T], error) {
	if len(keys) != len(values) {
		return nil, ErrMismatchedLengths
	}
	c := NewMapping[T]()
	for i, k := range keys {
		c.put(k, values[i])
	}
	return c, nil
}

// FromAny inspects v at runtime: slices and arrays become a Sequence, maps
// with string keys become a Mapping (keys in lexical order). Anything else is
// rejected with [ErrInvalidArgument].
func FromAny(v any) (*Collection[any], error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		items := make([]any, rv.Len())
		for i := range items {
			items[i] = rv.Index(i).Interface()
		}
		return &Collection[any]{kind: Sequence, items: items}, nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("%w: map key type %s is not a string", ErrInvalidArgument, rv.Type().Key())
		}
		m := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			m[iter.Key().String()] = iter.Value().Interface()
		}
		return FromMap(m), nil
	case reflect.Invalid:
		return nil, fmt.Errorf("%w: nil is not a collection", ErrInvalidArgument)
	default:
		return nil, fmt.Errorf("%w: %T is not a collection", ErrInvalidArgument, v)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Kind reports whether c is a Sequence or a Mapping.
func (c *Collection[T]) Kind() Kind { return c.kind }

// Count returns the number of items in the collection.
func (c *Collection[T]) Count() int { return len(c.items) }

// IsEmpty reports whether the collection contains no items.
func (c *Collection[T]) IsEmpty() bool { return len(c.items) == 0 }

// All returns a copy of the values in enumeration order.
func (c *Collection[T]) All() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Values returns the values as a new Sequence.
func (c *Collection[T]) Values() *Collection[T] { return From(c.items) }

// Keys returns the property names of a Mapping in enumeration order, or
// the decimal indices of a Sequence.
func (c *Collection[T]) Keys() []string {
	out := make([]string, 0, len(c.items))
	c.Each(func(_ T, k Key, _ *Collection[T]) {
		out = append(out, k.String())
	})
	return out
}

// At returns the item at position i in enumeration order.
func (c *Collection[T]) At(i int) (T, bool) {
	var zero T
	if i < 0 || i >= len(c.items) {
		return zero, false
	}
	return c.items[i], true
}

// Get returns the value stored under name in a Mapping. On a Sequence, name
// is parsed as an index.
func (c *Collection[T]) Get(name string) (T, bool) {
	var zero T
	if c.kind == Sequence {
		i, err := strconv.Atoi(name)
		if err != nil {
			return zero, false
		}
		return c.At(i)
	}
	i, ok := c.pos[name]
	if !ok {
		return zero, false
	}
	return c.items[i], true
}

// Set stores value under name. A new name is appended to the enumeration
// order; an existing one keeps its position.
// Returns [ErrNotMapping] on a Sequence.
func (c *Collection[T]) Set(name string, value T) error {
	if c.kind != Mapping {
		return ErrNotMapping
	}
	c.put(name, value)
	return nil
}

func (c *Collection[T]) put(name string, value T) {
	if i, ok := c.pos[name]; ok {
		c.items[i] = value
		return
	}
	c.pos[name] = len(c.items)
	c.keys = append(c.keys, name)
	c.items = append(c.items, value)
}

// ToMap returns the entries as a plain Go map.
func (c *Collection[T]) ToMap() map[string]T {
	out := make(map[string]T, len(c.items))
	c.Each(func(v T, k Key, _ *Collection[T]) {
		out[k.String()] = v
	})
	return out
}

// MarshalJSON encodes a Sequence as a JSON array and a Mapping as a JSON
// object with keys in enumeration order.
func (c *Collection[T]) MarshalJSON() ([]byte, error) {
	if c.kind == Sequence {
		return json.Marshal(c.items)
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range c.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(c.items[i])
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// String returns a JSON representation of the collection.
// It implements [fmt.Stringer].
func (c *Collection[T]) String() string {
	b, err := c.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("%v", c.items)
	}
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Traversal
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(value, key, c) for every element. Sequences are visited in
// index order, Mappings in key insertion order.
func (c *Collection[T]) Each(fn func(T, Key, *Collection[T])) {
	items, keys := c.items, c.keys
	for i, item := range items {
		k := Key{Index: i}
		if c.kind == Mapping {
			k.Name, k.named = keys[i], true
		}
		fn(item, k, c)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Derived operations (type-preserving)
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns a Sequence of the values for which fn returns true.
func (c *Collection[T]) Filter(fn func(T) bool) *Collection[T] {
	out := make([]T, 0, len(c.items))
	c.Each(func(item T, _ Key, _ *Collection[T]) {
		if fn(item) {
			out = append(out, item)
		}
	})
	return &Collection[T]{kind: Sequence, items: out}
}

// Reject returns a Sequence of the values for which fn returns false.
// It is the complement of [Collection.Filter].
func (c *Collection[T]) Reject(fn func(T) bool) *Collection[T] {
	return c.Filter(func(item T) bool { return !fn(item) })
}

// First returns the first value in enumeration order.
func (c *Collection[T]) First() (T, bool) { return arr.First(c.items) }

// FirstN returns the first n values as a Sequence.
func (c *Collection[T]) FirstN(n int) *Collection[T] { return From(arr.FirstN(c.items, n)) }

// Last returns the last value in enumeration order.
func (c *Collection[T]) Last() (T, bool) { return arr.Last(c.items) }

// LastN returns the last n values as a Sequence, or every value when n
// exceeds Count.
func (c *Collection[T]) LastN(n int) *Collection[T] { return From(arr.LastN(c.items, n)) }

// Every reports whether every value satisfies fns[0]. Without a predicate a
// value passes only if it is a true value of a bool kind.
func (c *Collection[T]) Every(fns ...func(T) bool) bool {
	pred := predicateOrTrue(fns)
	return Fold(c, func(ok bool, item T) bool {
		if !ok {
			return false
		}
		return pred(item)
	}, true)
}

// Some reports whether any value satisfies fns[0]. The default predicate
// matches [Collection.Every].
func (c *Collection[T]) Some(fns ...func(T) bool) bool {
	pred := predicateOrTrue(fns)
	return !c.Every(func(item T) bool { return !pred(item) })
}

func predicateOrTrue[T any](fns []func(T) bool) func(T) bool {
	if len(fns) > 0 && fns[0] != nil {
		return fns[0]
	}
	return func(item T) bool {
		v := reflect.ValueOf(item)
		return v.Kind() == reflect.Bool && v.Bool()
	}
}

// Uniq returns a Sequence without values whose string form was already
// seen, in first-seen order. See [arr.Uniq].
func (c *Collection[T]) Uniq() *Collection[T] {
	return &Collection[T]{kind: Sequence, items: arr.Uniq(c.items)}
}

// Shuffle returns the values as a shuffled Sequence. See [arr.ShuffleWith].
func (c *Collection[T]) Shuffle() *Collection[T] {
	return &Collection[T]{kind: Sequence, items: arr.Shuffle(c.items)}
}

// ─────────────────────────────────────────────────────────────────────────────
// Object utilities
// ─────────────────────────────────────────────────────────────────────────────

// Extend copies every entry of each source into c, left to right, later
// sources overwriting earlier ones. Sequence sources contribute their
// indices as keys; nil sources are skipped. Returns c, or [ErrNotMapping] when c is a Sequence.
func (c *Collection[T]) Extend(sources ...*Collection[T]) (*Collection[T], error) {
	if c.kind != Mapping {
		return nil, ErrNotMapping
	}
	for _, src := range sources {
		if src == nil {
			continue
		}
		src.Each(func(v T, k Key, _ *Collection[T]) {
			c.put(k.String(), v)
		})
	}
	return c, nil
}

// Defaults is like [Collection.Extend] but never overwrites a key already
// present in c, including keys added by an earlier source.
func (c *Collection[T]) Defaults(sources ...*Collection[T]) (*Collection[T], error) {
	if c.kind != Mapping {
		return nil, ErrNotMapping
	}
	for _, src := range sources {
		if src == nil {
			continue
		}
		src.Each(func(v T, k Key, _ *Collection[T]) {
			if _, exists := c.pos[k.String()]; !exists {
				c.put(k.String(), v)
			}
		})
	}
	return c, nil
}
