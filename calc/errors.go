package calc

import "errors"

// Sentinel errors reported by [Calculator.Compute], [Calculator.SolveE] and
// [New]. The lenient entry points swallow them.
var (
	// ErrSyntax is returned for a structural error such as two consecutive
	// operators, a dangling operator or an unknown character.
	ErrSyntax = errors.New("calc: syntax error")

	// ErrUnbalancedParens is returned when parentheses do not pair up.
	ErrUnbalancedParens = errors.New("calc: unbalanced parentheses")

	// ErrInvalidCurrency is returned when a currency table has a reserved
	// symbol or a non-positive multiplier.
	ErrInvalidCurrency = errors.New("calc: invalid currency table")

	// ErrInvalidOption is returned by [New] for an out-of-range option.
	ErrInvalidOption = errors.New("calc: invalid option value")

	// ErrMultipleEquals is returned when an equation has more than one '='.
	ErrMultipleEquals = errors.New("calc: more than one '=' in equation")

	// ErrTrivialEquation is returned when both sides are textually equal.
	ErrTrivialEquation = errors.New("calc: both sides of the equation are identical")

	// ErrNoVariable is returned when neither side of an equation holds a
	// variable.
	ErrNoVariable = errors.New("calc: equation has no variable")

	// ErrAmbiguousVariable is returned when both sides hold letters or the
	// variable side names more than one variable.
	ErrAmbiguousVariable = errors.New("calc: equation variable is ambiguous")

	// ErrZeroCoefficient is returned when the variable's coefficients sum
	// to zero.
	ErrZeroCoefficient = errors.New("calc: variable coefficient is zero")

	// ErrNotANumber is returned when the numeric side of an equation
	// evaluates to NaN.
	ErrNotANumber = errors.New("calc: numeric side is not a number")
)
