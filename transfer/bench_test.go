package transfer_test

import (
	"testing"

	"github.com/spetznick/multigrid/transfer"
)

// benchmarkCoarsening builds the coarsening matrix for fine-grid size h
// b.N times, failing on unexpected errors.
func benchmarkCoarsening(b *testing.B, h int) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := transfer.CoarseningMatrix(h); err != nil {
			b.Fatalf("CoarseningMatrix failed: %v", err)
		}
	}
}

// benchmarkProlongation builds the prolongation matrix for fine-grid size h
// b.N times, failing on unexpected errors.
func benchmarkProlongation(b *testing.B, h int) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := transfer.ProlongationMatrix(h); err != nil {
			b.Fatalf("ProlongationMatrix failed: %v", err)
		}
	}
}

// BenchmarkCoarseningMatrix_Small benchmarks a 64-interval fine grid.
func BenchmarkCoarseningMatrix_Small(b *testing.B) { benchmarkCoarsening(b, 64) }

// BenchmarkCoarseningMatrix_Large benchmarks a 1024-interval fine grid.
func BenchmarkCoarseningMatrix_Large(b *testing.B) { benchmarkCoarsening(b, 1024) }

// BenchmarkProlongationMatrix_Small benchmarks a 64-interval fine grid.
func BenchmarkProlongationMatrix_Small(b *testing.B) { benchmarkProlongation(b, 64) }

// BenchmarkProlongationMatrix_Large benchmarks a 1024-interval fine grid.
func BenchmarkProlongationMatrix_Large(b *testing.B) { benchmarkProlongation(b, 1024) }
