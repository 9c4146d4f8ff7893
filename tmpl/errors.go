package tmpl

import "errors"

// Sentinel errors returned by [Parse], [New] and [Registry] methods.
// [Format] itself never fails.
var (
	// ErrInvalidFormatter is returned by [Parse] when a formatter in the
	// chain has a bad name or unbalanced parentheses.
	ErrInvalidFormatter = errors.New("tmpl: invalid formatter syntax")

	// ErrEmptyFormatterName is returned by [Registry.Register] and
	// [Registry.Alias] for an empty name.
	ErrEmptyFormatterName = errors.New("tmpl: formatter name must not be empty")

	// ErrNilFormatter is returned by [Registry.Register] for a nil function.
	ErrNilFormatter = errors.New("tmpl: formatter must not be nil")

	// ErrInvalidChain is returned by [Registry.Alias] when the chain does not
	// parse or names a formatter that is not registered.
	ErrInvalidChain = errors.New("tmpl: invalid formatter chain")
)
