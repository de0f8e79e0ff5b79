package transfer

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// ErrGridSize indicates the fine-grid size is not a positive even integer.
var ErrGridSize = errors.New("transfer: fine-grid size must be a positive even integer")

// MinGridSize is the smallest admissible fine-grid size.
const MinGridSize = 2

// Stencil weights of the restriction operator, before normalization.
const (
	stencilOuter = 1.0
	stencilInner = 2.0
	stencilNorm  = 1.0 / 4.0
)

// CoarseningMatrix builds the restriction operator for a fine grid with
// h intervals. The result has (h+1)/2 rows and h+1 columns; row i carries
// the 1-2-1 stencil at fine columns 2i, 2i+1, 2i+2, normalized by 1/4.
// A stencil point past the last fine column falls off the grid and is
// skipped, so the last coarse row may carry a truncated stencil.
// Returns ErrGridSize unless h is a positive even integer.
// Complexity: O(h²) time and memory.
func CoarseningMatrix(h int) (*mat.Dense, error) {
	if h < MinGridSize || h%2 != 0 {
		return nil, ErrGridSize
	}
	sizeFine := h + 1
	sizeCoarse := sizeFine / 2

	c := mat.NewDense(sizeCoarse, sizeFine, nil)
	for i := 0; i < sizeCoarse; i++ {
		c.Set(i, 2*i, stencilOuter)
		c.Set(i, 2*i+1, stencilInner)
		if col := 2*i + 2; col < sizeFine {
			c.Set(i, col, stencilOuter)
		}
	}
	c.Scale(stencilNorm, c)

	return c, nil
}

// ProlongationMatrix builds the interpolation operator for a fine grid
// with h intervals: exactly 2 × CoarseningMatrix(h)ᵀ, with (h+1) rows and
// (h+1)/2 columns. There is no independent construction — changing the
// coarsening stencil changes the prolongation with it, preserving the
// scaled-adjoint relationship.
// Returns ErrGridSize unless h is a positive even integer.
// Complexity: O(h²) time and memory.
func ProlongationMatrix(h int) (*mat.Dense, error) {
	c, err := CoarseningMatrix(h)
	if err != nil {
		return nil, err
	}
	var p mat.Dense
	p.Scale(2, c.T())
	return &p, nil
}
