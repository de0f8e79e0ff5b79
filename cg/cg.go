package cg

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Solve runs Conjugate Gradient with Ritz-value tracking on the diagonal
// system D x = b, where diag holds the diagonal entries of D. The initial
// guess is the zero vector, so the initial residual equals b.
// A nil opts selects DefaultOptions.
//
// Returns (Result, error). The inputs are never mutated, and repeated
// calls with identical inputs produce bit-identical results.
// Complexity: O(Iterations·n) time, O(n) memory.
func Solve(diag, b []float64, opts *Options) (Result, error) {
	if len(b) == 0 {
		return Result{}, ErrEmptySystem
	}
	if len(diag) != len(b) {
		return Result{}, ErrDimensionMismatch
	}

	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.MaxIterations < 1 || o.Tolerance <= 0 || o.Epsilon < 0 {
		return Result{}, ErrBadOption
	}

	n := len(b)
	x := make([]float64, n)
	r := make([]float64, n) // r = b - D·x = b for x = 0
	copy(r, b)
	p := make([]float64, n)
	copy(p, r)
	ap := make([]float64, n)
	rNew := make([]float64, n)

	res := Result{
		X:          x,
		RitzValues: make([]float64, 0, o.MaxIterations),
	}

	for k := 0; k < o.MaxIterations; k++ {
		floats.MulTo(ap, diag, p) // Ap = D·p, elementwise for a diagonal D

		rr := floats.Dot(r, r)
		pAp := floats.Dot(p, ap)
		if o.Epsilon > 0 && math.Abs(pAp) < o.Epsilon {
			return Result{}, ErrNumericalDegeneracy
		}
		alpha := rr / pAp

		floats.AddScaled(x, alpha, p)           // x = x + α p
		floats.AddScaledTo(rNew, r, -alpha, ap) // r_new = r - α Ap

		// The residual-energy ratio is both the recorded Ritz estimate
		// and the CG β coefficient; compute it once, use it twice.
		if o.Epsilon > 0 && math.Abs(rr) < o.Epsilon {
			return Result{}, ErrNumericalDegeneracy
		}
		ritz := floats.Dot(rNew, rNew) / rr
		res.RitzValues = append(res.RitzValues, ritz)
		res.Iterations = k + 1
		res.ResidualNorm = floats.Norm(rNew, 2)

		if res.ResidualNorm < o.Tolerance {
			res.Converged = true
			break
		}

		floats.Scale(ritz, p) // p = β p
		floats.Add(p, rNew)   // p = r_new + β p
		copy(r, rNew)
	}

	return res, nil
}
