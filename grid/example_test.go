package grid_test

import (
	"errors"
	"fmt"
	"log"

	"github.com/spetznick/multigrid/grid"
)

// ExampleGrid_Coarsen walks a multigrid hierarchy from a 16-interval
// fine grid down to the coarsest admissible level.
func ExampleGrid_Coarsen() {
	g, err := grid.New(16)
	if err != nil {
		log.Fatal(err)
	}

	for {
		fmt.Printf("h=%d points=%d\n", g.Size, g.Points)
		coarse, err := g.Coarsen()
		if errors.Is(err, grid.ErrCoarsest) {
			break
		}
		g = coarse
	}
	// Output:
	// h=16 points=17
	// h=8 points=9
	// h=4 points=5
	// h=2 points=3
}
