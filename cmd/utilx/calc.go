package main

import (
	"fmt"
	"maps"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-utils/calc"
)

func newEvalCmd(a *app) *cobra.Command {
	var currency []string
	var strict bool
	cmd := &cobra.Command{
		Use:   "eval EXPR...",
		Short: "Evaluate arithmetic expressions",
		Long: `Evaluates each expression and prints one result per line.

Operators are + - * / ^ with parentheses. Division by zero prints NaN.
Without --strict an expression that cannot be parsed is printed unchanged.`,
		Example: `  utilx eval '0.1+0.2' '(1+1)*3'
  utilx eval '$10*2' --currency '$=100'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.calculator(currency)
			if err != nil {
				return err
			}
			for _, expr := range args {
				var out string
				if strict {
					if out, err = c.Compute(expr); err != nil {
						return err
					}
				} else {
					out = c.Evaluate(expr)
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&currency, "currency", nil, "currency symbol and multiplier, e.g. '$=100' (repeatable)")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail on expressions that cannot be parsed")
	return cmd
}

func newSolveCmd(a *app) *cobra.Command {
	var currency []string
	var strict bool
	cmd := &cobra.Command{
		Use:   "solve EQUATION",
		Short: "Solve a linear equation in one variable",
		Long: `Solves an equation such as 2x+1=7 and prints the value of the variable.
Non-integer results are printed as reduced fractions.

Without --strict an equation that cannot be solved prints an empty line.`,
		Example: `  utilx solve '2x+1+2=15'
  utilx solve '4x=6'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.calculator(currency)
			if err != nil {
				return err
			}
			var out string
			if strict {
				if out, err = c.SolveE(args[0]); err != nil {
					return err
				}
			} else {
				out = c.Solve(args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&currency, "currency", nil, "currency symbol and multiplier, e.g. '$=100' (repeatable)")
	cmd.Flags().BoolVar(&strict, "strict", false, "print the reason when the equation cannot be solved")
	return cmd
}

// calculator builds a Calculator from the config with the --currency flags
// layered on top. The loaded config is left as read.
func (a *app) calculator(flags []string) (*calc.Calculator, error) {
	cfg := *a.cfg
	cfg.Calc.Currency = make(map[string]int64, len(a.cfg.Calc.Currency)+len(flags))
	maps.Copy(cfg.Calc.Currency, a.cfg.Calc.Currency)
	for _, entry := range flags {
		sym, mult, err := parseCurrencyFlag(entry)
		if err != nil {
			return nil, err
		}
		cfg.Calc.Currency[sym] = mult
	}
	opts, err := cfg.CalcOptions(a.logger)
	if err != nil {
		return nil, err
	}
	return calc.New(opts)
}

func parseCurrencyFlag(entry string) (string, int64, error) {
	sym, raw, ok := strings.Cut(entry, "=")
	if !ok || sym == "" {
		return "", 0, fmt.Errorf("--currency %q: want SYMBOL=MULTIPLIER", entry)
	}
	mult, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return "", 0, fmt.Errorf("--currency %q: %w", entry, err)
	}
	return sym, mult, nil
}
