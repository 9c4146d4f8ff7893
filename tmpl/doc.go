// Package tmpl is a small string formatter with named and positional
// placeholders, path navigation, defaults and chainable formatters.
//
// # Modes
//
// A map argument on its own selects named mode; anything else is positional:
//
//	tmpl.Format("Hello, {name}!", map[string]any{"name": "Alice"}) // → "Hello, Alice!"
//	tmpl.Format("{0} + {1}", 2, 3)                                  // → "2 + 3"
//	tmpl.Format("Literal {{0}} and value {0}", []string{"test"})    // → "Literal {0} and value test"
//
// # Placeholders
//
//	{path}                     value at path
//	{items[0]} {items[-1]}     list indexes, negative from the end
//	{user.name|Unknown}        default when the path does not resolve
//	{count:plural(item,items)} formatter chain, applied left to right
//	{id:pad(4,0):upper}
//
// In positional mode the path starts with the position: {0}, {1.name},
// {0[2]}.
//
// An unresolved placeholder without a default stays in the output verbatim.
// Unknown formatters are skipped, and a malformed chain is dropped while the
// value is still printed. Format never returns an error.
//
// # Formatters
//
// upper, lower, pad, plural and number are always available (see
// [DefaultFormatters]). [ExtraFormatters] adds title, trim, truncate and
// hash. Custom formatters and chain aliases are supplied through [Options]
// or registered on an [Engine]'s [Registry]:
//
//	e, _ := tmpl.New(tmpl.Options{
//	    Formatters: map[string]tmpl.FormatterFunc{"shout": func(v string, _ []string) string {
//	        return strings.ToUpper(v) + "!"
//	    }},
//	    Aliases: map[string]string{"sku": "trim:upper:pad(8,-)"},
//	})
//	e.Format("{name:shout}", map[string]any{"name": "hey"}) // → "HEY!"
//
// # Values
//
// Data is converted into a [Value], a tagged variant of null, bool, int,
// float, string, list and map. [From] accepts ordinary Go maps, slices,
// structs and scalars; [FromJSON] decodes JSON directly.
package tmpl
