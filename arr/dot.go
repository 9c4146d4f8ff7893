package arr

// ─────────────────────────────────────────────────────────────────────────────
// Path helpers for map[string]any
//
// Keys are dot-separated and may index into []any values with [i]. Negative
// indexes count from the end of the slice.
//
//	m := map[string]any{
//	    "user": map[string]any{
//	        "name": "Alice",
//	        "tags": []any{"admin", "ops"},
//	    },
//	}
//
//	Get(m, "user.name")     → "Alice"
//	Get(m, "user.tags[-1]") → "ops"
//	Set(m, "user.age", 30)
//	Has(m, "user.tags[5]")  → false
// ─────────────────────────────────────────────────────────────────────────────

// Dot flattens a nested map[string]any into a single-level map using dot
// notation for the keys. Slices are kept as leaf values.
//
//	Dot(map[string]any{"a": map[string]any{"b": 1}})
//	// → map[string]any{"a.b": 1}
func Dot(m map[string]any) map[string]any {
	out := make(map[string]any)
	dotFlatten("", m, out)
	return out
}

func dotFlatten(prefix string, m map[string]any, out map[string]any) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok && len(nested) > 0 {
			dotFlatten(key, nested, out)
		} else {
			out[key] = v
		}
	}
}

// Undot expands a flat dot-notation map into a nested map[string]any. Keys
// that are not valid paths are skipped.
//
//	Undot(map[string]any{"a.b": 1, "a.c": 2})
//	// → map[string]any{"a": map[string]any{"b": 1, "c": 2}}
func Undot(m map[string]any) map[string]any {
	out := make(map[string]any)
	for key, val := range m {
		Set(out, key, val)
	}
	return out
}

// Get retrieves a value from m using a path such as "user.tags[0]".
// Returns def[0] (or nil) when the path does not resolve.
//
//	Get(m, "user.address.city")        // "London"
//	Get(m, "user.missing", "default")  // "default"
func Get(m map[string]any, key string, def ...any) any {
	if val, ok := Lookup(m, key); ok {
		return val
	}
	if len(def) > 0 {
		return def[0]
	}
	return nil
}

// Lookup is like [Get] but reports whether the path resolved. A stored nil
// value resolves successfully.
func Lookup(m map[string]any, key string) (any, bool) {
	segments, err := ParsePath(key)
	if err != nil {
		return nil, false
	}
	return lookupSegments(m, segments)
}

func lookupSegments(m map[string]any, segments []Segment) (any, bool) {
	var current any = m
	for _, seg := range segments {
		nested, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		if current, ok = nested[seg.Key]; !ok {
			return nil, false
		}
		if current, ok = indexInto(current, seg.Indexes); !ok {
			return nil, false
		}
	}
	return current, true
}

func indexInto(val any, indexes []int) (any, bool) {
	for _, i := range indexes {
		list, ok := val.([]any)
		if !ok {
			return nil, false
		}
		pos, ok := ResolveIndex(i, len(list))
		if !ok {
			return nil, false
		}
		val = list[pos]
	}
	return val, true
}

// Set writes value into m at the path, creating intermediate maps as needed.
// Indexed segments only address existing slice elements; an out-of-range
// index or a malformed path leaves m untouched.
//
//	Set(m, "user.address.postcode", "EC1")
//	Set(m, "user.tags[0]", "owner")
func Set(m map[string]any, key string, value any) {
	segments, err := ParsePath(key)
	if err != nil {
		return
	}
	current := m
	for i, seg := range segments {
		last := i == len(segments)-1
		if len(seg.Indexes) == 0 {
			if last {
				current[seg.Key] = value
				return
			}
			nested, ok := current[seg.Key].(map[string]any)
			if !ok {
				nested = make(map[string]any)
				current[seg.Key] = nested
			}
			current = nested
			continue
		}
		container, ok := indexInto(current[seg.Key], seg.Indexes[:len(seg.Indexes)-1])
		if !ok {
			return
		}
		list, ok := container.([]any)
		if !ok {
			return
		}
		pos, ok := ResolveIndex(seg.Indexes[len(seg.Indexes)-1], len(list))
		if !ok {
			return
		}
		if last {
			list[pos] = value
			return
		}
		nested, ok := list[pos].(map[string]any)
		if !ok {
			nested = make(map[string]any)
			list[pos] = nested
		}
		current = nested
	}
}

// Has reports whether the path exists in m.
func Has(m map[string]any, key string) bool {
	_, ok := Lookup(m, key)
	return ok
}

// HasAll reports whether all paths exist in m.
func HasAll(m map[string]any, keys ...string) bool {
	for _, key := range keys {
		if !Has(m, key) {
			return false
		}
	}
	return true
}

// HasAny reports whether any of the paths exist in m.
func HasAny(m map[string]any, keys ...string) bool {
	for _, key := range keys {
		if Has(m, key) {
			return true
		}
	}
	return false
}

// Forget removes the value at the path from m. A final [i] removes that
// element from its slice, shifting the rest down. Intermediate maps are not
// cleaned up, and a path that does not resolve leaves m untouched.
//
//	Forget(m, "user.address.city")
//	Forget(m, "user.tags[-1]")
func Forget(m map[string]any, key string) {
	segments, err := ParsePath(key)
	if err != nil {
		return
	}
	parent := m
	if len(segments) > 1 {
		val, ok := lookupSegments(m, segments[:len(segments)-1])
		if !ok {
			return
		}
		if parent, ok = val.(map[string]any); !ok {
			return
		}
	}
	last := segments[len(segments)-1]
	if len(last.Indexes) == 0 {
		delete(parent, last.Key)
		return
	}
	outer, idx := last.Indexes[:len(last.Indexes)-1], last.Indexes[len(last.Indexes)-1]
	container, ok := indexInto(parent[last.Key], outer)
	if !ok {
		return
	}
	list, ok := container.([]any)
	if !ok {
		return
	}
	pos, ok := ResolveIndex(idx, len(list))
	if !ok {
		return
	}
	trimmed := append(list[:pos:pos], list[pos+1:]...)
	if len(outer) == 0 {
		parent[last.Key] = trimmed
		return
	}
	holder, _ := indexInto(parent[last.Key], outer[:len(outer)-1])
	holderList := holder.([]any)
	hpos, _ := ResolveIndex(outer[len(outer)-1], len(holderList))
	holderList[hpos] = trimmed
}

// Only returns a new map containing only the specified top-level keys.
func Only(m map[string]any, keys ...string) map[string]any {
	out := make(map[string]any, len(keys))
	for _, k := range keys {
		if v, ok := m[k]; ok {
			out[k] = v
		}
	}
	return out
}

// Except returns a shallow copy of m without the specified top-level keys.
func Except(m map[string]any, keys ...string) map[string]any {
	drop := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		drop[k] = struct{}{}
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		if _, skip := drop[k]; !skip {
			out[k] = v
		}
	}
	return out
}

// Merge merges src into dst, returning dst.
// Values in src overwrite values in dst for matching keys.
// Nested maps are merged recursively.
func Merge(dst, src map[string]any) map[string]any {
	for k, srcVal := range src {
		dstVal, ok := dst[k]
		if ok {
			dstMap, dstIsMap := dstVal.(map[string]any)
			srcMap, srcIsMap := srcVal.(map[string]any)
			if dstIsMap && srcIsMap {
				Merge(dstMap, srcMap)
				continue
			}
		}
		dst[k] = srcVal
	}
	return dst
}
