package calc

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// outputPlaces caps the fractional digits of every rendered result.
const outputPlaces = 10

// Exact integer powers are bounded by exponent and by the digit count of the
// result; anything larger goes through math.Pow.
const (
	maxIntExponent = 4096
	maxPowerDigits = 100000
)

// number is a decimal operand. A division by zero poisons it to NaN, and NaN
// propagates through every later operation.
type number struct {
	d   decimal.Decimal
	nan bool
}

var nan = number{nan: true}

// parseNumber reads a literal of the form digits[.digits], .digits or digits.
func parseNumber(lit string) (number, bool) {
	if lit == "NaN" {
		return nan, true
	}
	lit = strings.TrimSuffix(lit, ".")
	if strings.HasPrefix(lit, ".") {
		lit = "0" + lit
	}
	if lit == "" || lit == "0." {
		return number{}, false
	}
	d, err := decimal.NewFromString(lit)
	if err != nil {
		return number{}, false
	}
	return number{d: d}, true
}

func (n number) neg() number {
	if n.nan {
		return n
	}
	return number{d: n.d.Neg()}
}

// text renders n with up to places fractional digits, trailing zeros trimmed.
func (n number) text(places int32) string {
	if n.nan {
		return "NaN"
	}
	return n.d.Round(places).String()
}

// String is the canonical rendering.
func (n number) String() string { return n.text(outputPlaces) }

func apply(op byte, a, b number, precision int32) number {
	if a.nan || b.nan {
		return nan
	}
	switch op {
	case '+':
		return number{d: a.d.Add(b.d)}
	case '-':
		return number{d: a.d.Sub(b.d)}
	case '*':
		return number{d: a.d.Mul(b.d)}
	case '/':
		if b.d.IsZero() {
			return nan
		}
		return number{d: a.d.DivRound(b.d, precision)}
	case '^':
		return power(a.d, b.d, precision)
	}
	return nan
}

// power multiplies by squaring for integer exponents and falls back to
// math.Pow for fractional or very large ones.
func power(base, exp decimal.Decimal, precision int32) number {
	if exp.IsInteger() && exp.Abs().LessThanOrEqual(decimal.NewFromInt(maxIntExponent)) &&
		int64(base.NumDigits())*exp.Abs().IntPart() <= maxPowerDigits {
		n := exp.IntPart()
		neg := n < 0
		if neg {
			n = -n
		}
		result := decimal.NewFromInt(1)
		b := base
		for n > 0 {
			if n&1 == 1 {
				result = result.Mul(b)
			}
			b = b.Mul(b)
			n >>= 1
		}
		if neg {
			if result.IsZero() {
				return nan
			}
			result = decimal.NewFromInt(1).DivRound(result, precision)
		}
		return number{d: result.Round(precision)}
	}
	f := math.Pow(base.InexactFloat64(), exp.InexactFloat64())
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nan
	}
	return number{d: decimal.NewFromFloat(f).Round(precision)}
}

// Canonicalize renders a numeric literal as a canonical decimal string:
// no leading zeros on the integer part, no trailing fractional zeros, no
// trailing decimal point and at most 10 fractional digits. Anything that
// is not a signed numeric literal is returned unchanged.
//
//	Canonicalize("007.50") // → "7.5"
//	Canonicalize("-3.")    // → "-3"
func Canonicalize(s string) string {
	lit := strings.TrimSpace(s)
	neg := false
	switch {
	case strings.HasPrefix(lit, "-"):
		neg, lit = true, lit[1:]
	case strings.HasPrefix(lit, "+"):
		lit = lit[1:]
	}
	if end := scanLiteral(lit, 0); end != len(lit) || end == 0 {
		return s
	}
	n, ok := parseNumber(lit)
	if !ok {
		return s
	}
	if neg {
		n = n.neg()
	}
	return n.String()
}
