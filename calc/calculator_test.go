package calc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-utils/calc"
)

func TestEvaluate(t *testing.T) {
	cases := []struct {
		name string
		expr string
		want string
	}{
		{"precedence", "2*3+4", "10"},
		{"decimal addition", "0.1+0.2", "0.3"},
		{"decimal division", "0.1/0.2", "0.5"},
		{"decimal multiplication", "1.1*1.1", "1.21"},
		{"decimal subtraction", "0.3-0.1", "0.2"},
		{"sibling parens", "(1+1)+(1+1)+(1+1)", "6"},
		{"nested parens", "((2+3)*(4-1))/5", "3"},
		{"leading unary minus", "-5+3", "-2"},
		{"negated group", "-(2+3)", "-5"},
		{"double negative", "2--3", "5"},
		{"sign run", "2+-+-3", "5"},
		{"sign after operator", "3*-2", "-6"},
		{"power", "2^10", "1024"},
		{"power right assoc", "2^3^2", "512"},
		{"power before multiply", "3*2^2", "12"},
		{"negative exponent", "2^-2", "0.25"},
		{"fractional exponent", "4^0.5", "2"},
		{"leading sign binds to base", "-2^2", "4"},
		{"left assoc division", "8/4/2", "1"},
		{"left assoc subtraction", "10-4-3", "3"},
		{"repeating fraction", "1/3", "0.3333333333"},
		{"repeating fraction recovers", "(1/3)*3", "1"},
		{"whitespace", " 1 +  2 * 3 ", "7"},
		{"single number", "007.500", "7.5"},
		{"leading plus", "+4", "4"},
		{"leading dot", ".5+.5", "1"},
		{"trailing dot", "3.+1", "4"},
		{"division by zero", "1/0", "NaN"},
		{"nan propagates", "1/0+2", "NaN"},
		{"nan inside parens", "(1/0)*2", "NaN"},
		{"empty", "", ""},
		{"blank", "   ", ""},
		{"negative zero", "0*-1", "0"},
		{"large integers", "99999999999999999999*10", "999999999999999999990"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, calc.Evaluate(tc.expr))
		})
	}
}

func TestEvaluate_MalformedReturnsInput(t *testing.T) {
	for _, expr := range []string{
		"2**3",
		"2+",
		"*2",
		"(1+2",
		"1+2)",
		"()",
		"2(3)",
		"(1)(2)",
		"(2)3",
		"abc",
		"1 + x",
		"1..2",
		"$5",
	} {
		t.Run(expr, func(t *testing.T) {
			assert.Equal(t, expr, calc.Evaluate(expr))
		})
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	for _, expr := range []string{"2*3+4", "0.1+0.2", "-7/2", "1/3", "1/0", "2^0.5"} {
		once := calc.Evaluate(expr)
		assert.Equal(t, once, calc.Evaluate(once), expr)
	}
}

func TestEvaluate_NegationSymmetry(t *testing.T) {
	for _, expr := range []string{"2*3+4", "0.1-0.7", "-5", "3/8", "2^3"} {
		value := calc.Evaluate(expr)
		negated := calc.Evaluate("-(" + expr + ")")
		assert.Equal(t, calc.Evaluate("0-"+value), negated, expr)
	}
}

func TestCompute_Errors(t *testing.T) {
	c, err := calc.New(calc.DefaultOptions())
	require.NoError(t, err)

	cases := map[string]error{
		"2**3":  calc.ErrSyntax,
		"1+":    calc.ErrSyntax,
		"2(3)":  calc.ErrSyntax,
		"(1+2":  calc.ErrUnbalancedParens,
		"1+2)":  calc.ErrUnbalancedParens,
		"1 % 2": calc.ErrSyntax,
	}
	for expr, want := range cases {
		_, err := c.Compute(expr)
		assert.ErrorIs(t, err, want, expr)
	}
}

func TestNew_Validation(t *testing.T) {
	_, err := calc.New(calc.Options{DivisionPrecision: 5})
	assert.ErrorIs(t, err, calc.ErrInvalidOption)

	_, err = calc.New(calc.Options{DivisionPrecision: 101})
	assert.ErrorIs(t, err, calc.ErrInvalidOption)

	_, err = calc.New(calc.Options{Currency: calc.Currency{'+': 10}})
	assert.ErrorIs(t, err, calc.ErrInvalidCurrency)

	c, err := calc.New(calc.Options{})
	require.NoError(t, err)
	assert.Equal(t, "0.5", c.Evaluate("1/2"))
}

func TestCalculator_Precision(t *testing.T) {
	c, err := calc.New(calc.Options{DivisionPrecision: 10})
	require.NoError(t, err)
	assert.Equal(t, "0.9999999999", c.Evaluate("(1/3)*3"))
}

func TestCanonicalize(t *testing.T) {
	cases := map[string]string{
		"10":            "10",
		"10.0":          "10",
		"-0.50":         "-0.5",
		"+3.":           "3",
		"0007":          "7",
		"-0":            "0",
		".25":           "0.25",
		"1.23456789012": "1.2345678901",
		"abc":           "abc",
		"1.2.3":         "1.2.3",
		"":              "",
	}
	for in, want := range cases {
		assert.Equal(t, want, calc.Canonicalize(in), in)
	}
}
