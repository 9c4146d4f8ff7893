package tmpl

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/hasbyte1/go-utils/arr"
)

// Resolve navigates root by a dotted path with optional [i] indexes, as in
// "user.roles[-1].name". It reports false for an empty or malformed path, a
// missing key, an out-of-range index, or a step into a value of the wrong
// kind. Resolve never modifies root.
func Resolve(root Value, path string) (Value, bool) {
	return resolveAny(root, path)
}

// resolveAny is Resolve over plain Go data. Only the value the path lands
// on is converted, so the rest of the tree is never visited.
func resolveAny(root any, path string) (Value, bool) {
	segments, err := arr.ParsePath(path)
	if err != nil {
		return Value{}, false
	}
	leaf, ok := walk(root, segments)
	if !ok {
		return Value{}, false
	}
	return From(leaf), true
}

func walk(cur any, segments []arr.Segment) (any, bool) {
	for _, seg := range segments {
		var ok bool
		if cur, ok = child(cur, seg.Key); !ok {
			return nil, false
		}
		if cur, ok = index(cur, seg.Indexes); !ok {
			return nil, false
		}
	}
	return cur, true
}

func index(cur any, indexes []int) (any, bool) {
	for _, i := range indexes {
		var ok bool
		if cur, ok = elem(cur, i); !ok {
			return nil, false
		}
	}
	return cur, true
}

// ─────────────────────────────────────────────────────────────────────────────
// One-level access over plain Go data
// ─────────────────────────────────────────────────────────────────────────────

// maxIndirections bounds pointer chasing in deref.
const maxIndirections = 32

// shapeOf classifies x the way From would without converting it. Only
// KindNull, KindList and KindMap are meaningful; every scalar reports
// KindString.
func shapeOf(x any) Kind {
	switch t := x.(type) {
	case nil:
		return KindNull
	case Value:
		return t.Kind()
	case *Value:
		if t == nil {
			return KindNull
		}
		return t.Kind()
	case []byte, json.Number, fmt.Stringer:
		return KindString
	case []string:
		return KindList
	}
	rv, ok := deref(x)
	if !ok {
		return KindNull
	}
	if rv.Type() != reflect.TypeOf(x) {
		return shapeOf(rv.Interface())
	}
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			return KindMap
		}
	case reflect.Struct:
		return KindMap
	case reflect.Slice:
		if rv.IsNil() {
			return KindNull
		}
		return KindList
	case reflect.Array:
		return KindList
	}
	return KindString
}

// deref follows pointers and interfaces from x. It reports false for nil and
// for chains longer than maxIndirections.
func deref(x any) (reflect.Value, bool) {
	rv := reflect.ValueOf(x)
	for n := 0; n < maxIndirections; n++ {
		switch rv.Kind() {
		case reflect.Invalid:
			return rv, false
		case reflect.Pointer, reflect.Interface:
			if rv.IsNil() {
				return rv, false
			}
			rv = rv.Elem()
		default:
			return rv, true
		}
	}
	return rv, false
}

// child returns the entry stored under key in a map-shaped value.
func child(x any, key string) (any, bool) {
	switch t := x.(type) {
	case Value:
		return t.Get(key)
	case *Value:
		if t == nil {
			return nil, false
		}
		return t.Get(key)
	case map[string]any:
		v, ok := t[key]
		return v, ok
	}
	rv, ok := deref(x)
	if !ok {
		return nil, false
	}
	if rv.Type() != reflect.TypeOf(x) {
		return child(rv.Interface(), key)
	}
	if shapeOf(x) != KindMap {
		return nil, false
	}
	switch rv.Kind() {
	case reflect.Map:
		v := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
		if !v.IsValid() {
			return nil, false
		}
		return v.Interface(), true
	case reflect.Struct:
		rt := rv.Type()
		for i := 0; i < rt.NumField(); i++ {
			if name, ok := fieldName(rt.Field(i)); ok && name == key {
				return rv.Field(i).Interface(), true
			}
		}
	}
	return nil, false
}

// elem returns the i-th item of a list-shaped value. Negative indexes count
// from the end.
func elem(x any, i int) (any, bool) {
	switch t := x.(type) {
	case Value:
		return t.Index(i)
	case *Value:
		if t == nil {
			return nil, false
		}
		return t.Index(i)
	case []any:
		pos, ok := arr.ResolveIndex(i, len(t))
		if !ok {
			return nil, false
		}
		return t[pos], true
	}
	rv, ok := deref(x)
	if !ok {
		return nil, false
	}
	if rv.Type() != reflect.TypeOf(x) {
		return elem(rv.Interface(), i)
	}
	if shapeOf(x) != KindList {
		return nil, false
	}
	pos, ok := arr.ResolveIndex(i, rv.Len())
	if !ok {
		return nil, false
	}
	return rv.Index(pos).Interface(), true
}
