package calc

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Currency maps a symbol to a positive integer multiplier. Symbols must not
// be digits, whitespace, '.', '=', parentheses or operators.
//
//	calc.Currency{'$': 100, '€': 100}
type Currency map[rune]int64

// Validate reports the first invalid entry, wrapped in [ErrInvalidCurrency].
func (c Currency) Validate() error {
	for sym, mult := range c {
		if !validSymbol(sym) {
			return fmt.Errorf("%w: reserved symbol %q", ErrInvalidCurrency, sym)
		}
		if mult <= 0 {
			return fmt.Errorf("%w: multiplier %d for %q must be positive", ErrInvalidCurrency, mult, sym)
		}
	}
	return nil
}

// Merge returns a new table holding the entries of c overlaid by others, in
// order. Invalid entries are dropped.
func (c Currency) Merge(others ...Currency) Currency {
	out := make(Currency, len(c))
	for _, table := range append([]Currency{c}, others...) {
		for sym, mult := range table {
			if validSymbol(sym) && mult > 0 {
				out[sym] = mult
			}
		}
	}
	return out
}

func validSymbol(r rune) bool {
	if unicode.IsDigit(r) || unicode.IsSpace(r) || r == utf8.RuneError {
		return false
	}
	return !strings.ContainsRune(".+-*/^()=", r)
}

// substitute rewrites every "<symbol><digits>[.<digits>]" into
// "(<amount>*<multiplier>)". Rewritten text is never rescanned.
func (c Currency) substitute(s string) (string, error) {
	if len(c) == 0 {
		return s, nil
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		mult, ok := c[r]
		if !ok {
			b.WriteString(s[i : i+size])
			i += size
			continue
		}
		start := i + size
		end := scanAmount(s, start)
		if end == start {
			return "", fmt.Errorf("%w: currency symbol %q without an amount", ErrSyntax, r)
		}
		b.WriteByte('(')
		b.WriteString(s[start:end])
		b.WriteByte('*')
		b.WriteString(strconv.FormatInt(mult, 10))
		b.WriteByte(')')
		i = end
	}
	return b.String(), nil
}

// scanAmount returns the end of "<digits>[.<digits>]" starting at i, or i
// when s[i] is not a digit.
func scanAmount(s string, i int) int {
	j := scanDigits(s, i)
	if j == i {
		return i
	}
	if j+1 < len(s) && s[j] == '.' && isDigit(s[j+1]) {
		j = scanDigits(s, j+1)
	}
	return j
}
