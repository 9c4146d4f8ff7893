package tmpl

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/hasbyte1/go-utils/arr"
)

// Options configures an [Engine]. The zero value selects the default
// formatters and no logging.
type Options struct {
	// Formatters are merged over the defaults; entries with a default's
	// name replace it.
	Formatters map[string]FormatterFunc

	// Aliases maps a new formatter name to a chain of registered ones,
	// e.g. {"code": "trim:upper"}. Aliases are bound in name order, so an
	// alias may build on one that sorts before it.
	Aliases map[string]string

	// Logger receives debug entries for placeholders that fall back:
	// unresolved paths, malformed chains, unknown formatters and
	// formatters that panic. Nil disables logging.
	Logger *log.Logger
}

// Engine renders templates against a fixed formatter registry. It is safe
// for concurrent use.
type Engine struct {
	registry *Registry
	logger   *log.Logger
}

// New builds an Engine from opts. It fails when an alias cannot be bound.
func New(opts Options) (*Engine, error) {
	e := &Engine{registry: NewRegistry(opts.Formatters), logger: opts.Logger}
	for _, name := range sortedKeys(opts.Aliases) {
		if err := e.registry.Alias(name, opts.Aliases[name]); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// lenientEngine is New without failure: unbindable aliases are dropped.
func lenientEngine(opts Options) *Engine {
	e := &Engine{registry: NewRegistry(opts.Formatters), logger: opts.Logger}
	for _, name := range sortedKeys(opts.Aliases) {
		if err := e.registry.Alias(name, opts.Aliases[name]); err != nil {
			e.debug("alias dropped", "alias", name, "err", err)
		}
	}
	return e
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Registry exposes the engine's formatters for further registration.
func (e *Engine) Registry() *Registry { return e.registry }

// Format renders template with the default formatters.
//
// Named mode applies when data is a map and no values follow it:
//
//	tmpl.Format("Hello, {name}!", map[string]any{"name": "Alice"})
//	// → "Hello, Alice!"
//
// Otherwise placeholders are positional. A lone list is used as the
// positional values; anything else is prepended to values:
//
//	tmpl.Format("{0} and {1}", "tea", "cake") // → "tea and cake"
//	tmpl.Format("{0}", []string{"test"})      // → "test"
func Format(template string, data any, values ...any) string {
	return lenientEngine(Options{}).Format(template, data, values...)
}

// FormatWith is [Format] with custom options. Aliases that cannot be bound
// are ignored.
func FormatWith(template string, data any, opts Options, values ...any) string {
	return lenientEngine(opts).Format(template, data, values...)
}

// Format renders template. "{{" and "}}" produce literal braces; every other
// {...} region is a placeholder. A placeholder that cannot be resolved and
// has no default is copied through verbatim, as is an unterminated '{'.
func (e *Engine) Format(template string, data any, values ...any) string {
	lookup := e.lookupFor(data, values)
	var b strings.Builder
	b.Grow(len(template))
	for i := 0; i < len(template); {
		switch c := template[i]; c {
		case '{':
			if i+1 < len(template) && template[i+1] == '{' {
				b.WriteByte('{')
				i += 2
				continue
			}
			end := strings.IndexByte(template[i+1:], '}')
			if end < 0 {
				b.WriteString(template[i:])
				return b.String()
			}
			b.WriteString(e.substitute(template[i+1:i+1+end], lookup))
			i += end + 2
		case '}':
			b.WriteByte('}')
			if i+1 < len(template) && template[i+1] == '}' {
				i += 2
			} else {
				i++
			}
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String()
}

type lookupFunc func(path string) (Value, bool)

// lookupFor picks the mode. Paths are walked over data as given; only the
// value a placeholder lands on is converted to a Value.
func (e *Engine) lookupFor(data any, values []any) lookupFunc {
	shape := shapeOf(data)
	if shape == KindMap && len(values) == 0 {
		return func(path string) (Value, bool) { return resolveAny(data, path) }
	}
	positional := data
	if shape != KindList || len(values) > 0 {
		positional = append([]any{data}, values...)
	}
	return func(path string) (Value, bool) { return resolvePositional(positional, path) }
}

// resolvePositional resolves "<n>" followed by optional [i] indexes and
// .key segments against the n-th positional value.
func resolvePositional(positional any, path string) (Value, bool) {
	segments, err := arr.ParsePath(path)
	if err != nil {
		return Value{}, false
	}
	head := segments[0]
	for _, r := range head.Key {
		if r < '0' || r > '9' {
			return Value{}, false
		}
	}
	n, err := strconv.Atoi(head.Key)
	if err != nil {
		return Value{}, false
	}
	v, ok := elem(positional, n)
	if !ok {
		return Value{}, false
	}
	if v, ok = index(v, head.Indexes); !ok {
		return Value{}, false
	}
	if v, ok = walk(v, segments[1:]); !ok {
		return Value{}, false
	}
	return From(v), true
}

func (e *Engine) substitute(body string, lookup lookupFunc) string {
	ph, parseErr := Parse(body)
	v, ok := lookup(ph.Path)
	if !ok {
		if ph.HasDefault {
			return ph.Default
		}
		e.debug("placeholder unresolved", "placeholder", ph.Raw)
		return ph.Raw
	}
	if v.IsNull() && !ph.HasDefault {
		e.debug("placeholder is null", "placeholder", ph.Raw)
		return ph.Raw
	}
	out := v.String()
	if parseErr != nil {
		e.debug("formatter chain ignored", "placeholder", ph.Raw, "err", parseErr)
		return out
	}
	for _, call := range ph.Formatters {
		out = e.apply(call, out)
	}
	return out
}

// apply runs one formatter. Unknown names and panicking formatters leave
// value unchanged.
func (e *Engine) apply(call Call, value string) (out string) {
	fn, ok := e.registry.Lookup(call.Name)
	if !ok {
		e.debug("unknown formatter", "formatter", call.Name)
		return value
	}
	defer func() {
		if r := recover(); r != nil {
			e.debug("formatter panicked", "formatter", call.Name, "panic", fmt.Sprint(r))
			out = value
		}
	}()
	return fn(value, call.Args)
}

func (e *Engine) debug(msg string, keyvals ...any) {
	if e.logger != nil {
		e.logger.Debug(msg, keyvals...)
	}
}
