package calc

import (
	"fmt"
	"strings"
	"unicode"
)

var signFolder = strings.NewReplacer("--", "+", "+-", "-", "-+", "-", "++", "+")

// foldSigns collapses runs of adjacent signs until none remain.
func foldSigns(s string) string {
	for {
		folded := signFolder.Replace(s)
		if folded == s {
			return s
		}
		s = folded
	}
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isOperator(c byte) bool { return strings.IndexByte("+-*/^", c) >= 0 }

func scanDigits(s string, i int) int {
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return i
}

// scanLiteral returns the end of a numeric literal at i: digits with at most
// one '.', holding at least one digit. It returns i when no literal starts
// there.
func scanLiteral(s string, i int) int {
	j := scanDigits(s, i)
	digits := j - i
	if j < len(s) && s[j] == '.' {
		k := scanDigits(s, j+1)
		digits += k - j - 1
		j = k
	}
	if digits == 0 {
		return i
	}
	return j
}

// tokenize splits a parenthesis-free, sign-folded expression into operands
// and the operators between them. A sign directly before an operand is
// attached to it.
func tokenize(s string) ([]number, []byte, error) {
	if s == "" {
		return nil, nil, fmt.Errorf("%w: empty expression", ErrSyntax)
	}
	var (
		vals []number
		ops  []byte
	)
	for i := 0; ; {
		neg := false
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			neg = s[i] == '-'
			i++
		}
		var (
			n  number
			ok bool
		)
		if strings.HasPrefix(s[i:], "NaN") {
			n, ok = nan, true
			i += 3
		} else if end := scanLiteral(s, i); end > i {
			n, ok = parseNumber(s[i:end])
			i = end
		}
		if !ok {
			return nil, nil, fmt.Errorf("%w: expected a number at offset %d in %q", ErrSyntax, i, s)
		}
		if neg {
			n = n.neg()
		}
		vals = append(vals, n)
		if i == len(s) {
			return vals, ops, nil
		}
		if !isOperator(s[i]) {
			return nil, nil, fmt.Errorf("%w: unexpected %q at offset %d in %q", ErrSyntax, s[i], i, s)
		}
		ops = append(ops, s[i])
		i++
		if i == len(s) {
			return nil, nil, fmt.Errorf("%w: dangling operator in %q", ErrSyntax, s)
		}
	}
}
