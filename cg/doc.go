// Package cg implements the Conjugate Gradient method with per-iteration
// Ritz-value tracking for diagonal symmetric positive-definite systems.
//
// What:
//
//   - Solve(diag, b, opts) iterates CG on the system D x = b, where the
//     matrix D is given by its diagonal entries. One Ritz value — the
//     residual-energy ratio (r_new·r_new)/(r·r) — is recorded per
//     iteration; the same quantity doubles as the CG β coefficient, so
//     it is computed once and reused in both roles.
//   - Result carries the solution, the ordered Ritz sequence, the final
//     residual 2-norm, the iteration count and a convergence flag.
//
// Why:
//
//   - Smoother analysis: the Ritz sequence tracks how the residual
//     spectrum contracts, which is what multigrid smoother studies need.
//   - Level solves: a diagonal (Jacobi-preconditioned) system is the
//     common smoking-gun test case when prototyping grid hierarchies.
//
// Algorithm outline (per iteration k, starting from x=0, r=p=b):
//
//	Ap    = diag ⊙ p
//	α     = (r·r) / (p·Ap)
//	x     = x + α p
//	r_new = r − α Ap
//	ritz  = (r_new·r_new) / (r·r)   — recorded, reused below as β
//	stop when ‖r_new‖₂ < Tolerance
//	p     = r_new + ritz·p ;  r = r_new
//
// Complexity:
//
//	Time   = O(k·n), k = iterations executed
//	Memory = O(n)
//
// Numerical policy:
//
//	By default Solve fails fast with ErrNumericalDegeneracy whenever a
//	denominator's magnitude drops below Options.Epsilon (exact zeros
//	included), e.g. for a zero right-hand side or a zero diagonal entry.
//	Setting Epsilon to 0 disables the guard and lets IEEE NaN/Inf
//	propagate through the arithmetic instead.
//
// Non-convergence is not an error: after MaxIterations the best
// available x is returned with Converged=false and exactly
// MaxIterations Ritz values, and callers inspect Result themselves.
//
// Errors:
//
//   - ErrEmptySystem:          the right-hand side is empty.
//   - ErrDimensionMismatch:    len(diag) differs from len(b).
//   - ErrBadOption:            MaxIterations < 1, Tolerance ≤ 0 or Epsilon < 0.
//   - ErrNumericalDegeneracy:  a guarded denominator fell below Epsilon.
package cg
