package tmpl

import (
	"fmt"
	"sort"
	"sync"
)

// Registry is a name-keyed set of formatters. It starts from
// [DefaultFormatters] and is safe for concurrent use; a sync.RWMutex
// serialises Register and Alias while lookups proceed in parallel.
//
// Each [Engine] owns its own Registry, so registering a formatter never
// affects other engines or the package-level [Format].
type Registry struct {
	mu         sync.RWMutex
	formatters map[string]FormatterFunc
}

// NewRegistry returns a Registry holding the default formatters overlaid by
// user. User entries with the same name replace the defaults; nil entries
// are skipped.
func NewRegistry(user map[string]FormatterFunc) *Registry {
	r := &Registry{formatters: DefaultFormatters()}
	for name, fn := range user {
		if name != "" && fn != nil {
			r.formatters[name] = fn
		}
	}
	return r
}

// Register adds or replaces a named formatter.
//
//	r.Register("reverse", func(v string, _ []string) string { ... })
func (r *Registry) Register(name string, fn FormatterFunc) error {
	if name == "" {
		return ErrEmptyFormatterName
	}
	if fn == nil {
		return ErrNilFormatter
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.formatters[name] = fn
	return nil
}

// Alias registers name as a shorthand for a chain of formatters that are
// already registered:
//
//	r.Alias("code", "trim:upper:pad(8,-)")
//	// {sku:code} ≡ {sku:trim:upper:pad(8,-)}
//
// The chain is bound when Alias is called; later changes to the formatters
// it names do not affect it. Arguments passed to the alias are ignored.
func (r *Registry) Alias(name, chain string) error {
	if name == "" {
		return ErrEmptyFormatterName
	}
	calls, err := ParseChain(chain)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidChain, chain, err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	bound := make([]FormatterFunc, len(calls))
	for i, call := range calls {
		fn, ok := r.formatters[call.Name]
		if !ok {
			return fmt.Errorf("%w: %q names unknown formatter %q", ErrInvalidChain, chain, call.Name)
		}
		bound[i] = fn
	}
	r.formatters[name] = func(value string, _ []string) string {
		for i, fn := range bound {
			value = fn(value, calls[i].Args)
		}
		return value
	}
	return nil
}

// Lookup returns the formatter registered under name.
func (r *Registry) Lookup(name string) (FormatterFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.formatters[name]
	return fn, ok
}

// Has reports whether a formatter is registered under name.
func (r *Registry) Has(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.formatters))
	for name := range r.formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
