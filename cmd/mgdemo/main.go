// Command mgdemo demonstrates the multigrid building blocks: it prints
// the grid hierarchy and the transfer operators for a chosen fine grid,
// shows the discretized diffusion matrix, solves a diagonal model system
// with CG-Ritz, and plots the recorded Ritz sequence.
package main

import (
	"flag"
	"fmt"
	"log"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/spetznick/multigrid/cg"
	"github.com/spetznick/multigrid/diffusion"
	"github.com/spetznick/multigrid/grid"
	"github.com/spetznick/multigrid/transfer"
)

func main() {
	size := flag.Int("size", 8, "fine-grid size h (positive even integer)")
	dim := flag.Int("n", diffusion.DefaultSize, "dimension of the diagonal demo system")
	plotPath := flag.String("plot", "ritz.png", "output path of the Ritz-sequence plot; empty disables plotting")
	flag.Parse()

	showGrids(*size)
	showOperators(*size)
	showDiffusion()

	res := solveDemo(*dim)
	if *plotPath != "" {
		if err := plotRitz(res.RitzValues, *plotPath); err != nil {
			log.Fatalf("plot Ritz sequence: %v", err)
		}
		fmt.Printf("Ritz-sequence plot written to %s\n", *plotPath)
	}
}

// showGrids prints the coarsening hierarchy starting from the h-interval grid.
func showGrids(h int) {
	g, err := grid.New(h)
	if err != nil {
		log.Fatalf("build fine grid: %v", err)
	}
	fmt.Println("Grid hierarchy:")
	for {
		fmt.Printf("  h=%-4d points=%-4d spacing=%g\n", g.Size, g.Points, g.Spacing)
		coarse, err := g.Coarsen()
		if err != nil {
			break
		}
		g = coarse
	}
	fmt.Println()
}

// showOperators prints the transfer operator pair for the h-interval grid,
// scaled to their integer stencils the way the reference script shows them.
func showOperators(h int) {
	c, err := transfer.CoarseningMatrix(h)
	if err != nil {
		log.Fatalf("build coarsening matrix: %v", err)
	}
	p, err := transfer.ProlongationMatrix(h)
	if err != nil {
		log.Fatalf("build prolongation matrix: %v", err)
	}

	var c4, p2 mat.Dense
	c4.Scale(4, c)
	p2.Scale(2, p)

	fmt.Println("Coarsening matrix (×4):")
	fmt.Printf("%v\n\n", mat.Formatted(&c4, mat.Prefix("")))
	fmt.Println("Prolongation matrix (×2):")
	fmt.Printf("%v\n\n", mat.Formatted(&p2, mat.Prefix("")))
}

// showDiffusion prints a small instance of the discretized diffusion matrix.
func showDiffusion() {
	a, err := diffusion.Matrix(4, diffusion.DefaultCoefficient)
	if err != nil {
		log.Fatalf("build diffusion matrix: %v", err)
	}
	fmt.Printf("Diffusion matrix (size=4, c=%g):\n", diffusion.DefaultCoefficient)
	fmt.Printf("%.4f\n\n", mat.Formatted(a, mat.Prefix("")))
}

// solveDemo runs CG-Ritz on the diagonal system diag(linspace(1,5,n)) x = 1.
func solveDemo(n int) cg.Result {
	diag := floats.Span(make([]float64, n), 1, 5)
	b := make([]float64, n)
	for i := range b {
		b[i] = 1
	}

	res, err := cg.Solve(diag, b, nil)
	if err != nil {
		log.Fatalf("solve demo system: %v", err)
	}
	fmt.Printf("CG-Ritz on diag(linspace(1,5,%d)) x = 1:\n", n)
	fmt.Printf("  solution:    %.6f\n", res.X)
	fmt.Printf("  ritz values: %.6f\n", res.RitzValues)
	fmt.Printf("  iterations:  %d  converged: %t  residual: %.3e\n\n",
		res.Iterations, res.Converged, res.ResidualNorm)
	return res
}

// plotRitz writes a line chart of the Ritz sequence to path.
func plotRitz(ritz []float64, path string) error {
	pts := make(plotter.XYs, len(ritz))
	for i, v := range ritz {
		pts[i].X = float64(i + 1)
		pts[i].Y = v
	}

	pl := plot.New()
	pl.Title.Text = "CG Ritz values"
	pl.X.Label.Text = "iteration"
	pl.Y.Label.Text = "ritz value"

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	pl.Add(line, plotter.NewGrid())

	return pl.Save(6*vg.Inch, 4*vg.Inch, path)
}
