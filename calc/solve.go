package calc

import (
	"fmt"
	"math/big"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// variableTerm matches a signed term in one variable: "x", "-x", "2x",
// "2.5*y", ".5z".
var variableTerm = regexp.MustCompile(`^([+-]?)(?:(\d*\.?\d+)\*?)?([A-Za-z]+)$`)

// Solve solves a linear equation in one variable under the default options.
// Without '=' it behaves like [Evaluate]. A malformed equation yields "".
//
//	calc.Solve("2x+1+2=15") // → "6"
//	calc.Solve("4x=6")      // → "3/2"
func Solve(expr string, currency ...Currency) string {
	return lenient(currency).Solve(expr)
}

// Solve is the lenient form of [Calculator.SolveE].
func (c *Calculator) Solve(expr string) string {
	if !strings.Contains(expr, "=") {
		return c.Evaluate(expr)
	}
	out, err := c.SolveE(expr)
	if err != nil {
		c.debug("solve returned empty result", expr, err)
		return ""
	}
	return out
}

// SolveE isolates the variable of "L = R" and returns its value as an
// integer, a reduced fraction "num/den" or, for decimal operands, the
// unevaluated quotient "N/coefficient".
//
// Every constant on the variable side is moved across with its sign flipped.
// Several terms in the same variable are summed, so "2x+x=9" yields "3".
func (c *Calculator) SolveE(expr string) (string, error) {
	s := stripSpace(expr)
	if !strings.Contains(s, "=") {
		return c.Compute(s)
	}
	if strings.Count(s, "=") > 1 {
		return "", fmt.Errorf("%w: %q", ErrMultipleEquals, expr)
	}
	left, right, _ := strings.Cut(s, "=")
	if left == right {
		return "", fmt.Errorf("%w: %q", ErrTrivialEquation, expr)
	}
	left, err := c.currency.substitute(left)
	if err != nil {
		return "", err
	}
	right, err = c.currency.substitute(right)
	if err != nil {
		return "", err
	}

	varSide, numSide := left, right
	switch l, r := hasLetter(left), hasLetter(right); {
	case l && r:
		return "", fmt.Errorf("%w: letters on both sides of %q", ErrAmbiguousVariable, expr)
	case !l && !r:
		return "", fmt.Errorf("%w: %q", ErrNoVariable, expr)
	case r:
		varSide, numSide = right, left
	}
	if numSide == "" {
		return "", fmt.Errorf("%w: empty side in %q", ErrSyntax, expr)
	}

	coef, moved, err := splitVariableSide(varSide)
	if err != nil {
		return "", err
	}
	if coef.IsZero() {
		return "", fmt.Errorf("%w: %q", ErrZeroCoefficient, expr)
	}
	n, err := c.reduce(numSide + moved)
	if err != nil {
		return "", err
	}
	if n.nan {
		return "", fmt.Errorf("%w: %q", ErrNotANumber, expr)
	}
	return quotient(n.d, coef), nil
}

// splitVariableSide sums the coefficients of the variable terms and returns
// the remaining constants as sign-flipped text ready to append to the other
// side.
func splitVariableSide(side string) (decimal.Decimal, string, error) {
	coef := decimal.Zero
	variable := ""
	var moved strings.Builder
	for _, term := range splitTerms(side) {
		if term == "" || term == "+" || term == "-" {
			return coef, "", fmt.Errorf("%w: empty term in %q", ErrSyntax, side)
		}
		if !hasLetter(term) {
			moved.WriteString("-(")
			moved.WriteString(term)
			moved.WriteByte(')')
			continue
		}
		m := variableTerm.FindStringSubmatch(term)
		if m == nil {
			return coef, "", fmt.Errorf("%w: unsupported variable term %q", ErrSyntax, term)
		}
		if variable != "" && variable != m[3] {
			return coef, "", fmt.Errorf("%w: %q and %q", ErrAmbiguousVariable, variable, m[3])
		}
		variable = m[3]
		k := decimal.NewFromInt(1)
		if m[2] != "" {
			n, ok := parseNumber(m[2])
			if !ok {
				return coef, "", fmt.Errorf("%w: coefficient %q", ErrSyntax, m[2])
			}
			k = n.d
		}
		if m[1] == "-" {
			k = k.Neg()
		}
		coef = coef.Add(k)
	}
	return coef, moved.String(), nil
}

// splitTerms cuts side before every top-level '+' or '-' that acts as a
// binary operator. Each term keeps its leading sign.
func splitTerms(side string) []string {
	var terms []string
	depth, start := 0, 0
	for i := 0; i < len(side); i++ {
		switch ch := side[i]; ch {
		case '(':
			depth++
		case ')':
			depth--
		case '+', '-':
			if depth != 0 || i == 0 || strings.IndexByte("+-*/^(", side[i-1]) >= 0 {
				continue
			}
			terms = append(terms, side[start:i])
			start = i
		}
	}
	return append(terms, side[start:])
}

func quotient(n, coef decimal.Decimal) string {
	one := decimal.NewFromInt(1)
	if coef.Abs().Equal(one) {
		return number{d: n.Mul(coef)}.String()
	}
	if n.IsInteger() && coef.IsInteger() {
		num, den := n.BigInt(), coef.BigInt()
		if den.Sign() < 0 {
			num.Neg(num)
			den.Neg(den)
		}
		g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(num), den)
		num.Quo(num, g)
		den.Quo(den, g)
		if den.IsInt64() && den.Int64() == 1 {
			return num.String()
		}
		return num.String() + "/" + den.String()
	}
	if coef.IsNegative() {
		n, coef = n.Neg(), coef.Neg()
	}
	return number{d: n}.String() + "/" + number{d: coef}.String()
}

func hasLetter(s string) bool {
	for i := 0; i < len(s); i++ {
		if c := s[i] | 0x20; c >= 'a' && c <= 'z' {
			return true
		}
	}
	return false
}
