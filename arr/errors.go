package arr

import "errors"

// Sentinel errors returned by arr helpers.
var (
	// ErrMismatchedLengths is returned by [Combine] when the key and value
	// slices have different lengths.
	ErrMismatchedLengths = errors.New("arr: keys and values must have the same length")

	// ErrInvalidPath is returned by [ParsePath] when a path is empty, has an
	// empty segment, or contains a malformed [i] index.
	ErrInvalidPath = errors.New("arr: invalid path")
)
