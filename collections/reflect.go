package collections

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/hasbyte1/go-underbar/objects"
)

// equal compares with == when both values share a comparable dynamic type.
func equal(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}

// indirect follows pointers and interfaces, returning the zero Value on nil.
func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

// lookup resolves a dot-separated property path against item.
func lookup(item any, path string) (any, error) {
	if m, ok := item.(map[string]any); ok {
		if v, found := objects.Get(m, path); found {
			return v, nil
		}
	}

	cur := reflect.ValueOf(item)
	for _, seg := range strings.Split(path, ".") {
		cur = indirect(cur)
		switch cur.Kind() {
		case reflect.Invalid:
			return nil, nil
		case reflect.Map:
			kt := cur.Type().Key()
			if kt.Kind() != reflect.String {
				return nil, fmt.Errorf("%w: cannot read %q from %s", ErrInvalidArgument, seg, cur.Type())
			}
			cur = cur.MapIndex(reflect.ValueOf(seg).Convert(kt))
		case reflect.Struct:
			f, ok := cur.Type().FieldByName(seg)
			if !ok || !f.IsExported() {
				return nil, fmt.Errorf("%w: %s has no exported field %q", ErrInvalidArgument, cur.Type(), seg)
			}
			v, err := cur.FieldByIndexErr(f.Index)
			if err != nil {
				return nil, nil
			}
			cur = v
		case reflect.Slice, reflect.Array:
			i, err := strconv.Atoi(seg)
			if err != nil {
				return nil, fmt.Errorf("%w: %q is not an index into %s", ErrInvalidArgument, seg, cur.Type())
			}
			if i < 0 || i >= cur.Len() {
				return nil, nil
			}
			cur = cur.Index(i)
		default:
			return nil, fmt.Errorf("%w: cannot read %q from %s", ErrInvalidArgument, seg, cur.Type())
		}
	}
	if !cur.IsValid() {
		return nil, nil
	}
	return cur.Interface(), nil
}

// callMethod calls the exported method name on item with args.
func callMethod(item any, name string, args []any) (any, error) {
	v := reflect.ValueOf(item)
	if !v.IsValid() {
		return nil, fmt.Errorf("%w: cannot call %q on nil", ErrInvalidArgument, name)
	}
	m := v.MethodByName(name)
	if !m.IsValid() {
		return nil, fmt.Errorf("%w: %T has no method %q", ErrInvalidArgument, item, name)
	}
	in, err := callArgs(m.Type(), args)
	if err != nil {
		return nil, fmt.Errorf("%T.%s: %w", item, name, err)
	}

	out := m.Call(in)
	switch len(out) {
	case 0:
		return nil, nil
	case 1:
		return out[0].Interface(), nil
	default:
		results := make([]any, len(out))
		for i, r := range out {
			results[i] = r.Interface()
		}
		return results, nil
	}
}

func callArgs(ft reflect.Type, args []any) ([]reflect.Value, error) {
	n := ft.NumIn()
	if ft.IsVariadic() {
		if len(args) < n-1 {
			return nil, fmt.Errorf("%w: want at least %d arguments, got %d", ErrInvalidArgument, n-1, len(args))
		}
	} else if len(args) != n {
		return nil, fmt.Errorf("%w: want %d arguments, got %d", ErrInvalidArgument, n, len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, a := range args {
		var pt reflect.Type
		if ft.IsVariadic() && i >= n-1 {
			pt = ft.In(n - 1).Elem()
		} else {
			pt = ft.In(i)
		}
		if a == nil {
			in[i] = reflect.Zero(pt)
			continue
		}
		av := reflect.ValueOf(a)
		if !av.Type().AssignableTo(pt) {
			return nil, fmt.Errorf("%w: argument %d is %s, want %s", ErrInvalidArgument, i, av.Type(), pt)
		}
		in[i] = av
	}
	return in, nil
}

type sortClass int

const (
	classMissing sortClass = iota
	classNumber
	classString
	classBool
)

func (c sortClass) String() string {
	switch c {
	case classNumber:
		return "number"
	case classString:
		return "string"
	case classBool:
		return "bool"
	}
	return "missing"
}

// numKind records which field of a sortKey holds an exact numeric value.
type numKind int

const (
	numInt numKind = iota
	numUint
	numFloat
)

type sortKey struct {
	class sortClass
	num   numKind
	i     int64
	u     uint64
	f     float64
	str   string
}

func newSortKey(v any) (sortKey, error) {
	rv := indirect(reflect.ValueOf(v))
	switch rv.Kind() {
	case reflect.Invalid:
		return sortKey{class: classMissing}, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return sortKey{class: classNumber, num: numInt, i: rv.Int()}, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return sortKey{class: classNumber, num: numUint, u: rv.Uint()}, nil
	case reflect.Float32, reflect.Float64:
		return sortKey{class: classNumber, num: numFloat, f: rv.Float()}, nil
	case reflect.String:
		return sortKey{class: classString, str: rv.String()}, nil
	case reflect.Bool:
		k := sortKey{class: classBool, num: numInt}
		if rv.Bool() {
			k.i = 1
		}
		return k, nil
	}
	return sortKey{}, fmt.Errorf("%w: %s values are not orderable", ErrInvalidArgument, rv.Type())
}

func checkSortKeys(keys []sortKey) error {
	class := classMissing
	for _, k := range keys {
		if k.class == classMissing {
			continue
		}
		if class == classMissing {
			class = k.class
			continue
		}
		if k.class != class {
			return fmt.Errorf("%w: cannot order %s keys against %s keys", ErrInvalidArgument, k.class, class)
		}
	}
	return nil
}

func (k sortKey) less(other sortKey) bool {
	if k.class == classMissing || other.class == classMissing {
		return k.class != classMissing && other.class == classMissing
	}
	if k.class == classString {
		return k.str < other.str
	}
	return lessNumber(k, other)
}

// lessNumber compares integers exactly and falls back to float64 only when
// a float is involved.
func lessNumber(a, b sortKey) bool {
	switch {
	case a.num == numInt && b.num == numInt:
		return a.i < b.i
	case a.num == numUint && b.num == numUint:
		return a.u < b.u
	case a.num == numInt && b.num == numUint:
		return a.i < 0 || uint64(a.i) < b.u
	case a.num == numUint && b.num == numInt:
		return b.i >= 0 && a.u < uint64(b.i)
	}
	return a.float() < b.float()
}

func (k sortKey) float() float64 {
	switch k.num {
	case numInt:
		return float64(k.i)
	case numUint:
		return float64(k.u)
	}
	return k.f
}
