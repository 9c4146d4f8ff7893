// Package calc evaluates small arithmetic expressions and solves linear
// equations in a single unknown.
//
// # Expressions
//
// [Evaluate] understands + - * / ^, parentheses and unary signs. Operands are
// kept in their decimal text form, so results carry no binary floating-point
// artefacts:
//
//	calc.Evaluate("2*3+4")     // → "10"
//	calc.Evaluate("0.1+0.2")   // → "0.3"
//	calc.Evaluate("-(2^3)/4")  // → "-2"
//	calc.Evaluate("1/0")       // → "NaN"
//
// Results are canonical decimal strings: no trailing fractional zeros, no
// trailing decimal point, at most 10 fractional digits.
//
// # Currency tables
//
// A [Currency] maps a symbol to an integer multiplier. Every "<symbol><amount>"
// is rewritten to "(<amount>*<multiplier>)" before evaluation:
//
//	calc.Evaluate("$10*2", calc.Currency{'$': 100}) // → "2000"
//
// # Equations
//
// [Solve] isolates the unknown in "L = R" where one side holds the variable:
//
//	calc.Solve("2x+1+2=15") // → "6"
//	calc.Solve("2x=3")      // → "3/2"
//
// # Failure handling
//
// Evaluate and Solve never panic and never return an error. Evaluate returns
// its input unchanged when the expression cannot be parsed; Solve returns ""
// for a malformed equation. A [Calculator] built with [New] also offers
// [Calculator.Compute] and [Calculator.SolveE], which report the cause as one
// of the sentinel errors in this package.
package calc
