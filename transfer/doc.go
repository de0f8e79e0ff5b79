// Package transfer builds the grid-transfer operators that move vectors
// between a fine 1D grid and its coarsening: the restriction (coarsening)
// matrix and its scaled adjoint, the prolongation matrix.
//
// What:
//
//   - CoarseningMatrix(h) — the ((h+1)/2 × (h+1)) restriction operator.
//     Row i applies the normalized 1-2-1 stencil to fine points
//     (2i, 2i+1, 2i+2): weights (1, 2, 1)/4. Every row sums to 1.
//   - ProlongationMatrix(h) — exactly 2 × CoarseningMatrix(h)ᵀ, shape
//     ((h+1) × (h+1)/2). Built from the coarsening matrix so the pair
//     stays algebraically consistent: prolongation is the adjoint of
//     restriction up to the factor 2, the variational property multigrid
//     cycles rely on.
//
// Why:
//
//   - Restrict residuals from a fine grid to a coarse grid.
//   - Interpolate coarse-grid corrections back to the fine grid.
//   - Study smoothing/aliasing behavior of the 1-2-1 averaging stencil.
//
// Complexity:
//
//   - CoarseningMatrix:   O(h²) time & memory (dense zero fill dominates).
//   - ProlongationMatrix: O(h²) time & memory.
//
// Errors:
//
//   - ErrGridSize: h is not a positive even integer.
//
// Both constructors are pure: identical inputs yield bit-identical
// matrices, and callers may treat the results as immutable.
package transfer
