// Command utilx evaluates expressions, solves linear equations and renders
// templates from the command line.
//
//	utilx eval '2*(3+4)' '$5+1' --currency '$=100'
//	utilx solve '2x+1=7'
//	utilx format 'Hello, {name:upper}!' --data person.yaml
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
