package gridgraph_test

import (
	"testing"

	"github.com/katalvlaran/spanviz/core"
	"github.com/katalvlaran/spanviz/gridgraph"
)

// BenchmarkNewMask measures predicate evaluation over the largest lattice
// for every shape.
func BenchmarkNewMask(b *testing.B) {
	for i := 0; i < b.N; i++ {
		for _, s := range core.Shapes() {
			_, _ = gridgraph.NewMask(60, s, gridgraph.DefaultMaskOptions())
		}
	}
}

// BenchmarkConnectedComponents measures region discovery on a 60×60 star.
func BenchmarkConnectedComponents(b *testing.B) {
	m, err := gridgraph.NewMask(60, core.ShapeStar, gridgraph.DefaultMaskOptions())
	if err != nil {
		b.Fatalf("setup NewMask failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.ConnectedComponents()
	}
}
