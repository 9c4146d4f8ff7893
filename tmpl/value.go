package tmpl

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/hasbyte1/go-utils/arr"
)

// Kind identifies the variant held by a [Value].
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindList
	KindMap
)

var kindNames = [...]string{"null", "bool", "int", "float", "string", "list", "map"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is the dynamic data a template is rendered against. The zero Value
// is null.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	list []Value
	m    map[string]Value
}

func Null() Value                  { return Value{} }
func Bool(b bool) Value            { return Value{kind: KindBool, b: b} }
func Int(i int64) Value            { return Value{kind: KindInt, i: i} }
func Float(f float64) Value        { return Value{kind: KindFloat, f: f} }
func String(s string) Value        { return Value{kind: KindString, s: s} }
func List(items ...Value) Value    { return Value{kind: KindList, list: items} }
func Map(m map[string]Value) Value { return Value{kind: KindMap, m: m} }

func (v Value) Kind() Kind   { return v.kind }
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsMap returns the entries of a map value.
func (v Value) AsMap() (map[string]Value, bool) {
	return v.m, v.kind == KindMap
}

// AsList returns the items of a list value.
func (v Value) AsList() ([]Value, bool) {
	return v.list, v.kind == KindList
}

// Get returns the entry stored under key in a map value.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindMap {
		return Value{}, false
	}
	item, ok := v.m[key]
	return item, ok
}

// Index returns the i-th item of a list value. Negative indexes count from
// the end.
func (v Value) Index(i int) (Value, bool) {
	if v.kind != KindList {
		return Value{}, false
	}
	pos, ok := arr.ResolveIndex(i, len(v.list))
	if !ok {
		return Value{}, false
	}
	return v.list[pos], true
}

// Len returns the number of items in a list or map, the byte length of a
// string and 0 otherwise.
func (v Value) Len() int {
	switch v.kind {
	case KindList:
		return len(v.list)
	case KindMap:
		return len(v.m)
	case KindString:
		return len(v.s)
	}
	return 0
}

// String stringifies v the way templates print it: numbers without
// trailing zeros, booleans as true/false, null as "", and lists and maps
// as JSON.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return formatFloat(v.f)
	case KindString:
		return v.s
	case KindList, KindMap:
		out, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(out)
	}
	return ""
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return decimal.NewFromFloat(f).String()
}

// Interface converts v back to plain Go values: nil, bool, int64, float64,
// string, []any and map[string]any.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	case KindList:
		return arr.Map(v.list, func(item Value, _ int) any { return item.Interface() })
	case KindMap:
		out := make(map[string]any, len(v.m))
		for k, item := range v.m {
			out[k] = item.Interface()
		}
		return out
	}
	return nil
}

// MarshalJSON encodes v. Non-finite floats encode as null.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNull:
		return []byte("null"), nil
	case KindFloat:
		if math.IsNaN(v.f) || math.IsInf(v.f, 0) {
			return []byte("null"), nil
		}
		return []byte(formatFloat(v.f)), nil
	case KindList:
		if v.list == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.list)
	case KindMap:
		if v.m == nil {
			return []byte("{}"), nil
		}
		return json.Marshal(v.m)
	}
	return json.Marshal(v.Interface())
}

// FromJSON decodes a JSON document into a Value. Integral numbers become
// [KindInt] values.
func FromJSON(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return Value{}, fmt.Errorf("tmpl: decode json: %w", err)
	}
	return From(raw), nil
}

// From converts an arbitrary Go value. Maps need string keys; structs are
// read through their exported fields, honouring json tag names and "-".
// Types implementing fmt.Stringer become strings. A map, slice or pointer
// that contains itself converts to null at the point where it repeats.
//
//	tmpl.From(map[string]any{"items": []string{"a", "b"}})
func From(x any) Value {
	return new(converter).from(x)
}

// converter tracks the containers on the current conversion path.
type converter struct {
	active map[ref]struct{}
}

type ref struct {
	ptr uintptr
	typ reflect.Type
}

// enter marks rv as in progress. It reports false when rv is already on the
// path, i.e. when descending into it would cycle.
func (c *converter) enter(rv reflect.Value) (ref, bool) {
	r := ref{ptr: rv.Pointer(), typ: rv.Type()}
	if _, ok := c.active[r]; ok {
		return r, false
	}
	if c.active == nil {
		c.active = make(map[ref]struct{})
	}
	c.active[r] = struct{}{}
	return r, true
}

func (c *converter) leave(r ref) { delete(c.active, r) }

func (c *converter) from(x any) Value {
	switch t := x.(type) {
	case nil:
		return Null()
	case Value:
		return t
	case *Value:
		if t == nil {
			return Null()
		}
		return *t
	case bool:
		return Bool(t)
	case string:
		return String(t)
	case []byte:
		return String(string(t))
	case int:
		return Int(int64(t))
	case int8:
		return Int(int64(t))
	case int16:
		return Int(int64(t))
	case int32:
		return Int(int64(t))
	case int64:
		return Int(t)
	case uint8:
		return Int(int64(t))
	case uint16:
		return Int(int64(t))
	case uint32:
		return Int(int64(t))
	case uint:
		return fromUint(uint64(t))
	case uint64:
		return fromUint(t)
	case float32:
		f, _ := strconv.ParseFloat(strconv.FormatFloat(float64(t), 'g', -1, 32), 64)
		return Float(f)
	case float64:
		return Float(t)
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return Int(i)
		}
		if f, err := t.Float64(); err == nil {
			return Float(f)
		}
		return String(t.String())
	case []string:
		return List(arr.Map(t, func(item string, _ int) Value { return String(item) })...)
	case fmt.Stringer:
		if rv := reflect.ValueOf(t); rv.Kind() == reflect.Pointer && rv.IsNil() {
			return Null()
		}
		return String(t.String())
	}
	return c.fromReflect(reflect.ValueOf(x))
}

func fromUint(u uint64) Value {
	if u > math.MaxInt64 {
		return Float(float64(u))
	}
	return Int(int64(u))
}

func (c *converter) fromReflect(rv reflect.Value) Value {
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return Null()
		}
		r, ok := c.enter(rv)
		if !ok {
			return Null()
		}
		defer c.leave(r)
		return c.from(rv.Elem().Interface())
	case reflect.Interface:
		if rv.IsNil() {
			return Null()
		}
		return c.from(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice {
			if rv.IsNil() {
				return Null()
			}
			if rv.Len() > 0 {
				r, ok := c.enter(rv)
				if !ok {
					return Null()
				}
				defer c.leave(r)
			}
		}
		items := make([]Value, rv.Len())
		for i := range items {
			items[i] = c.from(rv.Index(i).Interface())
		}
		return List(items...)
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return String(fmt.Sprint(rv.Interface()))
		}
		if rv.IsNil() {
			return Map(map[string]Value{})
		}
		r, ok := c.enter(rv)
		if !ok {
			return Null()
		}
		defer c.leave(r)
		out := make(map[string]Value, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[iter.Key().String()] = c.from(iter.Value().Interface())
		}
		return Map(out)
	case reflect.Struct:
		return c.fromStruct(rv)
	case reflect.Bool:
		return Bool(rv.Bool())
	case reflect.String:
		return String(rv.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return fromUint(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float())
	case reflect.Invalid:
		return Null()
	}
	return String(fmt.Sprint(rv.Interface()))
}

func (c *converter) fromStruct(rv reflect.Value) Value {
	rt := rv.Type()
	out := make(map[string]Value, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		if name, ok := fieldName(rt.Field(i)); ok {
			out[name] = c.from(rv.Field(i).Interface())
		}
	}
	return Map(out)
}

// fieldName returns the key a struct field is exposed under, or false for
// unexported fields and fields tagged json:"-".
func fieldName(field reflect.StructField) (string, bool) {
	if !field.IsExported() {
		return "", false
	}
	tag, ok := field.Tag.Lookup("json")
	if !ok {
		return field.Name, true
	}
	name, _, _ := strings.Cut(tag, ",")
	switch name {
	case "-":
		return "", false
	case "":
		return field.Name, true
	}
	return name, true
}

// Keys returns the sorted keys of a map value.
func (v Value) Keys() []string {
	keys := make([]string, 0, len(v.m))
	for k := range v.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
