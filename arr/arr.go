package arr

// ─────────────────────────────────────────────────────────────────────────────
// Searching
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first element, optionally matching fns[0].
// Returns the zero value and false when items is empty or no element matches.
func First[T any](items []T, fns ...func(T) bool) (T, bool) {
	var zero T
	for _, item := range items {
		if len(fns) == 0 || fns[0](item) {
			return item, true
		}
	}
	return zero, false
}

// Last returns the last element, optionally matching fns[0].
// Returns the zero value and false when items is empty or no element matches.
func Last[T any](items []T, fns ...func(T) bool) (T, bool) {
	var zero T
	for i := len(items) - 1; i >= 0; i-- {
		if len(fns) == 0 || fns[0](items[i]) {
			return items[i], true
		}
	}
	return zero, false
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map applies fn(item, index) to each element and returns a new slice.
func Map[T, U any](items []T, fn func(T, int) U) []U {
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = fn(item, i)
	}
	return out
}

// Filter returns elements for which fn(item, index) returns true.
func Filter[T any](items []T, fn func(T, int) bool) []T {
	out := make([]T, 0, len(items))
	for i, item := range items {
		if fn(item, i) {
			out = append(out, item)
		}
	}
	return out
}

// Reject returns elements for which fn returns false.
func Reject[T any](items []T, fn func(T, int) bool) []T {
	return Filter(items, func(item T, i int) bool { return !fn(item, i) })
}

// Reduce folds items into a single value of type U.
func Reduce[T, U any](items []T, fn func(U, T, int) U, initial U) U {
	result := initial
	for i, item := range items {
		result = fn(result, item, i)
	}
	return result
}

// Compact drops zero values ("" for strings, 0 for numbers, nil pointers).
//
//	Compact([]string{"a", "", "b"}) // → [a b]
func Compact[T comparable](items []T) []T {
	var zero T
	return Filter(items, func(item T, _ int) bool { return item != zero })
}

// Unique returns a new slice with duplicates removed, preserving the first
// occurrence.
func Unique[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; !ok {
			seen[item] = struct{}{}
			out = append(out, item)
		}
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Restructuring
// ─────────────────────────────────────────────────────────────────────────────

// Chunk splits items into consecutive groups of size.
// The last group may contain fewer than size elements.
func Chunk[T any](items []T, size int) [][]T {
	if size <= 0 || len(items) == 0 {
		return [][]T{}
	}
	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for i := 0; i < len(items); i += size {
		end := min(i+size, len(items))
		chunk := make([]T, end-i)
		copy(chunk, items[i:end])
		chunks = append(chunks, chunk)
	}
	return chunks
}

// Reverse returns a reversed copy of items.
func Reverse[T any](items []T) []T {
	n := len(items)
	out := make([]T, n)
	for i, item := range items {
		out[n-1-i] = item
	}
	return out
}

// Pair holds two values of possibly different types. It is the element type
// produced by [Zip].
type Pair[A, B any] struct {
	First  A
	Second B
}

// Zip pairs elements from a and b at the same index.
// Stops at the length of the shorter slice.
func Zip[A, B any](a []A, b []B) []Pair[A, B] {
	n := min(len(a), len(b))
	out := make([]Pair[A, B], n)
	for i := 0; i < n; i++ {
		out[i] = Pair[A, B]{First: a[i], Second: b[i]}
	}
	return out
}

// Combine creates a map from equal-length key and value slices.
// Returns [ErrMismatchedLengths] if the lengths differ.
func Combine[K comparable, V any](keys []K, values []V) (map[K]V, error) {
	if len(keys) != len(values) {
		return nil, ErrMismatchedLengths
	}
	out := make(map[K]V, len(keys))
	for i, k := range keys {
		out[k] = values[i]
	}
	return out, nil
}
