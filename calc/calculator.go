package calc

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

// Options configures a [Calculator].
type Options struct {
	// Currency is applied to every expression the calculator sees.
	Currency Currency

	// DivisionPrecision is the number of fractional digits kept for
	// quotients and for values spliced back out of parentheses. Results
	// are still rendered with at most 10 fractional digits. Zero selects
	// the default of 20; valid values are 10 to 100.
	DivisionPrecision int32

	// Logger receives a debug entry whenever a lenient call falls back.
	// Nil disables logging.
	Logger *log.Logger
}

// DefaultOptions returns the options used by the package-level functions.
func DefaultOptions() Options {
	return Options{DivisionPrecision: 20}
}

// Calculator evaluates expressions and solves equations under a fixed set of
// options. It holds no mutable state and is safe for concurrent use.
type Calculator struct {
	currency  Currency
	precision int32
	logger    *log.Logger
}

// New validates opts and returns a Calculator.
//
//	c, err := calc.New(calc.Options{Currency: calc.Currency{'$': 100}})
func New(opts Options) (*Calculator, error) {
	if err := opts.Currency.Validate(); err != nil {
		return nil, err
	}
	precision := opts.DivisionPrecision
	if precision == 0 {
		precision = DefaultOptions().DivisionPrecision
	}
	if precision < outputPlaces || precision > 100 {
		return nil, fmt.Errorf("%w: division precision %d outside [%d, 100]",
			ErrInvalidOption, opts.DivisionPrecision, outputPlaces)
	}
	return &Calculator{
		currency:  opts.Currency.Merge(),
		precision: precision,
		logger:    opts.Logger,
	}, nil
}

// Evaluate computes expr under the default options. Currency tables are
// merged left to right; invalid entries are ignored. An expression that
// cannot be parsed is returned unchanged.
//
//	calc.Evaluate("(1+1)+(1+1)+(1+1)") // → "6"
func Evaluate(expr string, currency ...Currency) string {
	return lenient(currency).Evaluate(expr)
}

func lenient(currency []Currency) *Calculator {
	return &Calculator{
		currency:  Currency(nil).Merge(currency...),
		precision: DefaultOptions().DivisionPrecision,
	}
}

// Evaluate computes expr, returning it unchanged when it cannot be parsed.
func (c *Calculator) Evaluate(expr string) string {
	out, err := c.Compute(expr)
	if err != nil {
		c.debug("evaluate fell back to input", expr, err)
		return expr
	}
	return out
}

// Compute is the strict form of [Calculator.Evaluate]. Whitespace is
// ignored, and an empty expression yields "".
func (c *Calculator) Compute(expr string) (string, error) {
	s := stripSpace(expr)
	if s == "" {
		return "", nil
	}
	n, err := c.reduce(s)
	if err != nil {
		return "", err
	}
	return n.String(), nil
}

// reduce substitutes currency, then folds innermost parentheses until a flat
// expression remains.
func (c *Calculator) reduce(s string) (number, error) {
	s, err := c.currency.substitute(s)
	if err != nil {
		return number{}, err
	}
	for {
		open := strings.LastIndexByte(s, '(')
		if open < 0 {
			break
		}
		rel := strings.IndexByte(s[open:], ')')
		if rel < 0 {
			return number{}, fmt.Errorf("%w: %q", ErrUnbalancedParens, s)
		}
		end := open + rel
		if (open > 0 && bindsToParen(s[open-1], ')')) || (end+1 < len(s) && bindsToParen(s[end+1], '(')) {
			return number{}, fmt.Errorf("%w: operand adjacent to parenthesis in %q", ErrSyntax, s)
		}
		inner, err := c.evalFlat(s[open+1 : end])
		if err != nil {
			return number{}, err
		}
		s = s[:open] + inner.text(c.precision) + s[end+1:]
	}
	if strings.IndexByte(s, ')') >= 0 {
		return number{}, fmt.Errorf("%w: %q", ErrUnbalancedParens, s)
	}
	return c.evalFlat(s)
}

// bindsToParen reports characters that may not touch a parenthesis from the
// outside without an operator in between. facing is the parenthesis that
// would close the gap, as in ")(".
func bindsToParen(b, facing byte) bool {
	return isDigit(b) || b == '.' || b == 'N' || b == facing
}

// evalFlat applies ^ right to left, then * and /, then + and -, both left
// to right.
func (c *Calculator) evalFlat(s string) (number, error) {
	vals, ops, err := tokenize(foldSigns(s))
	if err != nil {
		return number{}, err
	}
	for i := len(ops) - 1; i >= 0; i-- {
		if ops[i] == '^' {
			vals, ops = c.collapse(vals, ops, i)
		}
	}
	for _, group := range []string{"*/", "+-"} {
		for i := 0; i < len(ops); {
			if strings.IndexByte(group, ops[i]) < 0 {
				i++
				continue
			}
			vals, ops = c.collapse(vals, ops, i)
		}
	}
	return vals[0], nil
}

// collapse replaces vals[i] ops[i] vals[i+1] with its result.
func (c *Calculator) collapse(vals []number, ops []byte, i int) ([]number, []byte) {
	vals[i] = apply(ops[i], vals[i], vals[i+1], c.precision)
	vals = append(vals[:i+1], vals[i+2:]...)
	ops = append(ops[:i], ops[i+1:]...)
	return vals, ops
}

func (c *Calculator) debug(msg, expr string, err error) {
	if c.logger != nil {
		c.logger.Debug(msg, "expr", expr, "err", err)
	}
}
