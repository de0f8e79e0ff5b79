package diffusion

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrNonPositiveSize indicates a requested matrix size below 1.
var ErrNonPositiveSize = errors.New("diffusion: matrix size must be positive")

// Defaults of the model problem.
const (
	// DefaultSize is the default number of unknowns.
	DefaultSize = 10
	// DefaultCoefficient is the default diffusion coefficient c.
	DefaultCoefficient = 0.1
)

// Matrix builds the size×size tridiagonal discretization of the diffusion
// equation with coefficient c: (2 + h²c) on the main diagonal, where
// h = 1/size is the mesh width, and −1 on the sub- and superdiagonal.
// The matrix is symmetric positive definite for c ≥ 0.
// Returns ErrNonPositiveSize when size < 1.
// Complexity: O(size²) time and memory.
func Matrix(size int, c float64) (*mat.Dense, error) {
	if size < 1 {
		return nil, ErrNonPositiveSize
	}
	h := 1 / float64(size)
	d := 2 + h*h*c

	a := mat.NewDense(size, size, nil)
	for i := 0; i < size; i++ {
		a.Set(i, i, d)
		if i > 0 {
			a.Set(i, i-1, -1)
			a.Set(i-1, i, -1)
		}
	}
	return a, nil
}

// ExactSolution evaluates the manufactured solution u(x) = eˣ(1−x).
func ExactSolution(x float64) float64 {
	return math.Exp(x) * (1 - x)
}

// RHS evaluates the source term f(x) = eˣ(c−1−cx−x) matching
// ExactSolution: u″ + c·u = f holds for u = ExactSolution.
func RHS(c, x float64) float64 {
	return math.Exp(x) * (c - 1 - c*x - x)
}

// BoundaryValues returns the boundary data (α, β) = (u(0), u(1)) = (1, 0)
// of the continuous problem.
func BoundaryValues() (alpha, beta float64) {
	return 1, 0
}
