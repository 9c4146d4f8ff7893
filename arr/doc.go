// Package arr provides standalone helper functions for Go slices and for
// path-based access into nested map[string]any values.
//
// # Slice helpers
//
// All slice helpers are generic and operate on plain []T values:
//
//	evens  := arr.Filter([]int{1, 2, 3, 4, 5}, func(n, _ int) bool { return n%2 == 0 })
//	words  := arr.Compact([]string{"a", "", "b"})      // → [a b]
//	chunks := arr.Chunk([]int{1, 2, 3, 4, 5}, 2)       // → [[1 2] [3 4] [5]]
//
// # Paths
//
// A path is a dot-separated list of keys, each optionally followed by one or
// more [i] indexes into a slice. Negative indexes count from the end:
//
//	m := map[string]any{
//	    "user": map[string]any{
//	        "name":  "Alice",
//	        "roles": []any{"admin", "ops"},
//	    },
//	}
//	arr.Get(m, "user.name")        // → "Alice"
//	arr.Get(m, "user.roles[-1]")   // → "ops"
//	arr.Set(m, "user.address.city", "London")
//	arr.Has(m, "user.roles[2]")    // → false
//	flat := arr.Dot(m)             // → {"user.name": "Alice", ...}
//
// [ParsePath] exposes the same grammar to other packages; the tmpl package
// resolves template placeholders with it.
package arr
