package calc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-utils/calc"
)

func TestEvaluate_Currency(t *testing.T) {
	usd := calc.Currency{'$': 100}
	cases := []struct {
		expr string
		want string
	}{
		{"$10*2", "2000"},
		{"$1.5", "150"},
		{"$1.25+$0.75", "200"},
		{"-$3", "-300"},
		{"($2+1)*2", "402"},
		{"2^$1", "1267650600228229401496703205376"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, calc.Evaluate(tc.expr, usd), tc.expr)
	}
}

func TestEvaluate_MultipleCurrencies(t *testing.T) {
	tables := []calc.Currency{{'$': 100}, {'€': 110, '$': 90}}
	assert.Equal(t, "200", calc.Evaluate("€1+$1", tables...))
}

func TestEvaluate_InvalidCurrencyEntriesIgnored(t *testing.T) {
	bad := calc.Currency{'+': 10, '£': 0, '¥': 3}
	assert.Equal(t, "6", calc.Evaluate("¥2", bad))
	assert.Equal(t, "3", calc.Evaluate("1+2", calc.Currency{'1': 5}))
}

func TestEvaluate_SymbolWithoutAmount(t *testing.T) {
	assert.Equal(t, "$+1", calc.Evaluate("$+1", calc.Currency{'$': 100}))
}

func TestCurrency_Validate(t *testing.T) {
	require.NoError(t, calc.Currency{'$': 100, '€': 1, 'k': 1000}.Validate())
	require.NoError(t, calc.Currency(nil).Validate())

	for _, bad := range []calc.Currency{
		{'7': 10},
		{'.': 10},
		{'*': 10},
		{'(': 10},
		{'=': 10},
		{' ': 10},
		{'$': 0},
		{'$': -5},
	} {
		assert.ErrorIs(t, bad.Validate(), calc.ErrInvalidCurrency, "%v", bad)
	}
}

func TestCurrency_Merge(t *testing.T) {
	merged := calc.Currency{'$': 100}.Merge(calc.Currency{'$': 1, '*': 2}, calc.Currency{'€': 5})
	assert.Equal(t, calc.Currency{'$': 1, '€': 5}, merged)
}
