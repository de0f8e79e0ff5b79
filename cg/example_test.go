package cg_test

import (
	"fmt"
	"log"

	"github.com/spetznick/multigrid/cg"
)

// ExampleSolve solves the identity system I·x = 1. CG finishes it in a
// single iteration, recording one exact-zero Ritz value.
func ExampleSolve() {
	diag := []float64{1, 1, 1, 1}
	b := []float64{1, 1, 1, 1}

	res, err := cg.Solve(diag, b, nil)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(res.X)
	fmt.Println(res.Iterations, res.Converged)
	fmt.Println(res.RitzValues)
	// Output:
	// [1 1 1 1]
	// 1 true
	// [0]
}

// ExampleSolve_nonConvergence caps the iteration count to observe how a
// caller detects non-convergence: no error, Converged=false, and one
// Ritz value per executed iteration.
func ExampleSolve_nonConvergence() {
	diag := []float64{1, 2, 3, 4}
	b := []float64{1, 1, 1, 1}

	opts := cg.DefaultOptions()
	opts.MaxIterations = 2

	res, err := cg.Solve(diag, b, &opts)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(res.Converged)
	fmt.Println(len(res.RitzValues))
	// Output:
	// false
	// 2
}
