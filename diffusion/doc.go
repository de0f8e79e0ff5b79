// Package diffusion provides the 1D diffusion model problem used to
// exercise the solver and transfer operators: the discretized system
// matrix, the closed-form exact solution and matching right-hand side,
// and the boundary values of the continuous problem.
//
// What:
//
//   - Matrix(size, c) — the size×size tridiagonal discretization of the
//     diffusion equation: (2 + h²c) on the diagonal with mesh width
//     h = 1/size, and −1 on both off-diagonals.
//   - ExactSolution(x) = eˣ(1−x) — the manufactured solution.
//   - RHS(c, x) = eˣ(c−1−cx−x) — the matching source term; it satisfies
//     u″ + c·u = f for u = ExactSolution.
//   - BoundaryValues() = (1, 0) — u at the interval ends, consistent
//     with ExactSolution(0) and ExactSolution(1).
//
// Why:
//
//   - Verification: a manufactured solution turns solver runs into exact
//     pass/fail checks.
//   - Level problems: the same stencil discretizes every grid in a
//     multigrid hierarchy.
//
// Complexity: Matrix is O(size²) time & memory (dense zero fill); the
// closed forms are O(1).
//
// Errors:
//
//   - ErrNonPositiveSize: requested matrix size is below 1.
package diffusion
