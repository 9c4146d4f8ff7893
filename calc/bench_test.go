package calc_test

import (
	"testing"

	"github.com/hasbyte1/go-utils/calc"
)

func BenchmarkEvaluate_Flat(b *testing.B) {
	for i := 0; i < b.N; i++ {
		calc.Evaluate("1.25*4+3^2-10/4")
	}
}

func BenchmarkEvaluate_Nested(b *testing.B) {
	for i := 0; i < b.N; i++ {
		calc.Evaluate("((1+2)*(3+4))/((5-6)*(7+8))")
	}
}

func BenchmarkSolve(b *testing.B) {
	for i := 0; i < b.N; i++ {
		calc.Solve("3x+4-2=20")
	}
}
