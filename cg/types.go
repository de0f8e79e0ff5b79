// Package cg defines options, result type, and sentinel errors for the
// cg subpackage of github.com/spetznick/multigrid.
package cg

import "errors"

// Sentinel errors for CG solves.
var (
	// ErrEmptySystem indicates a zero-dimensional system (empty right-hand side).
	ErrEmptySystem = errors.New("cg: right-hand side must be non-empty")
	// ErrDimensionMismatch indicates diag and b have different lengths.
	ErrDimensionMismatch = errors.New("cg: diagonal and right-hand side lengths differ")
	// ErrBadOption indicates a non-positive MaxIterations or Tolerance, or a negative Epsilon.
	ErrBadOption = errors.New("cg: options must have MaxIterations ≥ 1, Tolerance > 0 and Epsilon ≥ 0")
	// ErrNumericalDegeneracy indicates a denominator in the α/β/Ritz updates
	// fell below Options.Epsilon in magnitude.
	ErrNumericalDegeneracy = errors.New("cg: numerical degeneracy: denominator below epsilon")
)

// Documented defaults — single source of truth for DefaultOptions.
const (
	// DefaultMaxIterations caps the CG loop when convergence is slow.
	DefaultMaxIterations = 100

	// DefaultTolerance is the residual 2-norm threshold for convergence.
	DefaultTolerance = 1e-8

	// DefaultEpsilon is the degeneracy guard: denominators with magnitude
	// below it fail the solve with ErrNumericalDegeneracy. It sits far
	// below any meaningful residual energy while still catching exact and
	// effective zeros. Epsilon = 0 disables the guard entirely, and the
	// literal IEEE arithmetic (NaN/Inf propagation) takes over.
	DefaultEpsilon = 1e-30
)

// Options configures a CG solve.
//
// Fields:
//   - MaxIterations — iteration cap; the loop always runs at least once
//     and at most MaxIterations times.
//   - Tolerance     — convergence threshold on the residual 2-norm.
//   - Epsilon       — degeneracy guard on denominators; 0 disables it.
//
// Example:
//
//	opts := cg.DefaultOptions()
//	opts.MaxIterations = 50
//	res, err := cg.Solve(diag, b, &opts)
type Options struct {
	MaxIterations int
	Tolerance     float64
	Epsilon       float64
}

// DefaultOptions returns the Options used when Solve receives nil:
// MaxIterations=100, Tolerance=1e-8, Epsilon=DefaultEpsilon.
func DefaultOptions() Options {
	return Options{
		MaxIterations: DefaultMaxIterations,
		Tolerance:     DefaultTolerance,
		Epsilon:       DefaultEpsilon,
	}
}

// Result holds the outcome of a CG solve.
//
// Non-convergence is visible, not exceptional: when the iteration cap is
// reached first, Converged is false and len(RitzValues) == MaxIterations.
type Result struct {
	// X is the final solution estimate.
	X []float64
	// RitzValues is the ordered per-iteration Ritz sequence; its length
	// equals Iterations.
	RitzValues []float64
	// ResidualNorm is the 2-norm of the final residual.
	ResidualNorm float64
	// Iterations is the number of CG iterations actually executed.
	Iterations int
	// Converged reports whether ResidualNorm dropped below Tolerance
	// within the iteration cap.
	Converged bool
}
