package cg_test

import (
	"testing"

	"gonum.org/v1/gonum/floats"

	"github.com/spetznick/multigrid/cg"
)

// benchmarkSolve runs CG-Ritz on diag(linspace(1,5,n)) x = 1 with the
// given options, resetting the timer after setup.
func benchmarkSolve(b *testing.B, n int, opts cg.Options) {
	diag := floats.Span(make([]float64, n), 1, 5)
	rhs := make([]float64, n)
	for i := range rhs {
		rhs[i] = 1
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := cg.Solve(diag, rhs, &opts); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

// BenchmarkSolve_Small benchmarks a 100-dimensional diagonal system.
func BenchmarkSolve_Small(b *testing.B) {
	benchmarkSolve(b, 100, cg.DefaultOptions())
}

// BenchmarkSolve_Medium benchmarks a 10000-dimensional diagonal system.
func BenchmarkSolve_Medium(b *testing.B) {
	benchmarkSolve(b, 10000, cg.DefaultOptions())
}

// BenchmarkSolve_SingleIteration benchmarks the per-iteration cost alone.
func BenchmarkSolve_SingleIteration(b *testing.B) {
	opts := cg.DefaultOptions()
	opts.MaxIterations = 1
	benchmarkSolve(b, 10000, opts)
}
