package grid

// New constructs the uniform grid with h intervals on [0,1].
// Returns ErrGridSize unless h is a positive even integer.
// Complexity: O(1).
func New(h int) (Grid, error) {
	if h < MinSize || h%2 != 0 {
		return Grid{}, ErrGridSize
	}
	return Grid{
		Size:    h,
		Points:  h + 1,
		Spacing: 1 / float64(h),
	}, nil
}

// Coarsen returns the next-coarser grid, halving the number of intervals.
// Returns ErrCoarsest when the halved size would no longer be a valid
// even grid size (h/2 odd or below MinSize).
// Complexity: O(1).
func (g Grid) Coarsen() (Grid, error) {
	coarse, err := New(g.Size / 2)
	if err != nil {
		return Grid{}, ErrCoarsest
	}
	return coarse, nil
}

// Nodes returns the h+1 uniformly spaced abscissae x_i = i/h, i = 0..h.
// The first node is exactly 0 and the last exactly 1.
// Complexity: O(h) time and memory.
func (g Grid) Nodes() []float64 {
	if g.Size < MinSize {
		return nil
	}
	xs := make([]float64, g.Points)
	for i := range xs {
		xs[i] = float64(i) * g.Spacing
	}
	xs[g.Size] = 1 // avoid i/h rounding at the right endpoint
	return xs
}
