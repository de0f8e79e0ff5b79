// Package grid defines the core type and sentinel errors for the grid
// subpackage of github.com/spetznick/multigrid.
package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrGridSize indicates the requested fine-grid size is not a positive even integer.
	ErrGridSize = errors.New("grid: fine-grid size must be a positive even integer")
	// ErrCoarsest indicates the grid admits no further even coarsening step.
	ErrCoarsest = errors.New("grid: grid cannot be coarsened further")
)

// MinSize is the smallest admissible fine-grid size: two intervals, three points.
const MinSize = 2

// Grid is a uniform 1D grid on [0,1]. It is immutable once built.
// Size is the number of intervals h; Points is the number of grid points h+1;
// Spacing is the mesh width 1/h.
type Grid struct {
	Size    int
	Points  int
	Spacing float64
}
