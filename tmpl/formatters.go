package tmpl

import (
	"encoding/hex"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FormatterFunc transforms the current string of a placeholder. args are
// the trimmed arguments written in parentheses after the formatter name.
type FormatterFunc func(value string, args []string) string

// DefaultFormatters returns a fresh map holding the built-in formatters:
//
//	upper            {name:upper}           "ada" → "ADA"
//	lower            {name:lower}           "ADA" → "ada"
//	pad(len, char)   {id:pad(4,0)}          "42"  → "0042"
//	plural(one, many){n:plural(item,items)} "1"   → "item"
//	number(locale, min, max)  {p:number(en,2,2)}  "3.5" → "3.50"
//
// upper and lower take an optional BCP 47 locale for language-specific
// case mappings, e.g. {name:upper(tr)}.
func DefaultFormatters() map[string]FormatterFunc {
	return map[string]FormatterFunc{
		"upper":  Upper,
		"lower":  Lower,
		"pad":    Pad,
		"plural": Plural,
		"number": Number,
	}
}

// ExtraFormatters returns opt-in formatters that are not registered by
// default: title, trim, truncate and hash.
func ExtraFormatters() map[string]FormatterFunc {
	return map[string]FormatterFunc{
		"title":    Title,
		"trim":     Trim,
		"truncate": Truncate,
		"hash":     Hash,
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Case mapping
// ─────────────────────────────────────────────────────────────────────────────

// localeArg parses args[0] as a language tag, falling back to the root
// locale for a missing or malformed tag.
func localeArg(args []string) language.Tag {
	if len(args) == 0 || args[0] == "" {
		return language.Und
	}
	tag, err := language.Parse(args[0])
	if err != nil {
		return language.Und
	}
	return tag
}

// Upper maps value to upper case.
func Upper(value string, args []string) string {
	return cases.Upper(localeArg(args)).String(value)
}

// Lower maps value to lower case.
func Lower(value string, args []string) string {
	return cases.Lower(localeArg(args)).String(value)
}

// Title capitalises the first letter of every word.
func Title(value string, args []string) string {
	return cases.Title(localeArg(args)).String(value)
}

// ─────────────────────────────────────────────────────────────────────────────
// Layout
// ─────────────────────────────────────────────────────────────────────────────

// maxPadLength is the largest length Pad will fill to.
const maxPadLength = 1 << 16

// Pad left-pads value with args[1] (default "0") until it is at least
// args[0] characters long. A multi-character fill is repeated and cut to fit.
// A missing or non-numeric length, or one above 65536, leaves value
// unchanged.
func Pad(value string, args []string) string {
	if len(args) == 0 {
		return value
	}
	length, err := strconv.Atoi(args[0])
	if err != nil || length > maxPadLength {
		return value
	}
	fill := "0"
	if len(args) > 1 && args[1] != "" {
		fill = args[1]
	}
	missing := length - utf8.RuneCountInString(value)
	if missing <= 0 {
		return value
	}
	fillRunes := []rune(fill)
	var b strings.Builder
	for i := 0; i < missing; i++ {
		b.WriteRune(fillRunes[i%len(fillRunes)])
	}
	b.WriteString(value)
	return b.String()
}

// Trim removes leading and trailing whitespace.
func Trim(value string, _ []string) string {
	return strings.TrimSpace(value)
}

// Truncate cuts value to args[0] characters and appends args[1] (default
// "...") when anything was removed.
func Truncate(value string, args []string) string {
	if len(args) == 0 {
		return value
	}
	limit, err := strconv.Atoi(args[0])
	if err != nil || limit < 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	suffix := "..."
	if len(args) > 1 {
		suffix = args[1]
	}
	return string(runes[:limit]) + suffix
}

// ─────────────────────────────────────────────────────────────────────────────
// Numbers
// ─────────────────────────────────────────────────────────────────────────────

func parseDecimal(value string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	return d, err == nil
}

// Plural returns args[0] when value parses as exactly 1 and args[1]
// otherwise. Unparseable values count as 0. With fewer than two arguments
// value is returned unchanged.
func Plural(value string, args []string) string {
	if len(args) < 2 {
		return value
	}
	d, _ := parseDecimal(value)
	if d.Equal(decimal.NewFromInt(1)) {
		return args[0]
	}
	return args[1]
}

const (
	defaultMinFraction = 0
	defaultMaxFraction = 20
	maxFraction        = 100
)

// Number renders value with between args[1] (default 0) and args[2]
// (default 20) fractional digits, rounding half away from zero. Zeros past
// the minimum are trimmed. args[0] is a locale; it is accepted for
// compatibility and output always uses ASCII digits with a '.' separator.
// A value that is not a number is returned unchanged.
func Number(value string, args []string) string {
	d, ok := parseDecimal(value)
	if !ok {
		return value
	}
	minF := fractionArg(args, 1, defaultMinFraction)
	maxF := fractionArg(args, 2, defaultMaxFraction)
	if maxF < minF {
		maxF = minF
	}
	out := d.StringFixed(int32(maxF))
	intPart, frac, found := strings.Cut(out, ".")
	if !found {
		return out
	}
	for len(frac) > minF && strings.HasSuffix(frac, "0") {
		frac = frac[:len(frac)-1]
	}
	if frac == "" {
		return intPart
	}
	return intPart + "." + frac
}

func fractionArg(args []string, i, def int) int {
	if len(args) <= i || args[i] == "" {
		return def
	}
	n, err := strconv.Atoi(args[i])
	if err != nil {
		return def
	}
	return min(max(n, 0), maxFraction)
}

// ─────────────────────────────────────────────────────────────────────────────
// Digests
// ─────────────────────────────────────────────────────────────────────────────

var hashers = map[string]func([]byte) []byte{
	"blake2b":     func(b []byte) []byte { sum := blake2b.Sum256(b); return sum[:] },
	"blake2b-512": func(b []byte) []byte { sum := blake2b.Sum512(b); return sum[:] },
	"sha3":        func(b []byte) []byte { sum := sha3.Sum256(b); return sum[:] },
	"sha3-512":    func(b []byte) []byte { sum := sha3.Sum512(b); return sum[:] },
}

// Hash replaces value with its hex digest. args[0] picks the algorithm:
// blake2b (default), blake2b-512, sha3 or sha3-512. An unknown algorithm
// leaves value unchanged.
func Hash(value string, args []string) string {
	algo := "blake2b"
	if len(args) > 0 && args[0] != "" {
		algo = strings.ToLower(args[0])
	}
	fn, ok := hashers[algo]
	if !ok {
		return value
	}
	return hex.EncodeToString(fn([]byte(value)))
}
