package secsrc_test

import (
	"testing"

	"github.com/katalvlaran/wavefield/secsrc"
)

// benchmarkPositions runs the generator for one geometry, failing on
// unexpected configuration errors.
func benchmarkPositions(b *testing.B, g secsrc.Geometry) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := secsrc.Positions(g); err != nil {
			b.Fatalf("Positions failed: %v", err)
		}
	}
}

// BenchmarkPositions_Circular64 benchmarks a 64-element circular array.
func BenchmarkPositions_Circular64(b *testing.B) {
	benchmarkPositions(b, secsrc.Circular{Diameter: 3, N: 64})
}

// BenchmarkPositions_Box64 benchmarks a 64-element box array, including
// the corner-weight correction pass.
func BenchmarkPositions_Box64(b *testing.B) {
	benchmarkPositions(b, secsrc.Box{Length: 2, N: 64})
}

// BenchmarkPositions_RoundedBox256 benchmarks a dense rounded-box array.
func BenchmarkPositions_RoundedBox256(b *testing.B) {
	benchmarkPositions(b, secsrc.RoundedBox{Length: 2, CornerRadius: 0.4, N: 256})
}
