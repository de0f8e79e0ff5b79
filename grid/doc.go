// Package grid describes uniform one-dimensional grids on the unit
// interval [0,1] and the coarsening relation between them.
//
// What:
//
//   - Grid wraps a fine-grid size h (number of intervals) together with
//     the derived point count h+1 and mesh width 1/h.
//   - Coarsen produces the next-coarser grid with h/2 intervals, the
//     grid a restriction operator maps vectors onto.
//   - Nodes materializes the h+1 uniformly spaced abscissae.
//
// Why:
//
//   - Multigrid hierarchies: walk from a fine discretization down to the
//     coarsest admissible level.
//   - Model problems: evaluate closed-form solutions and right-hand
//     sides at the grid nodes.
//
// Complexity:
//
//   - New, Coarsen: O(1), Memory: O(1).
//   - Nodes: O(h), Memory: O(h).
//
// Errors:
//
//   - ErrGridSize: h is not a positive even integer.
//   - ErrCoarsest: the grid cannot be coarsened further.
package grid
