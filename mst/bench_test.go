package mst_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/spanviz/builder"
	"github.com/katalvlaran/spanviz/core"
	"github.com/katalvlaran/spanviz/mst"
)

func benchmarkEngine(b *testing.B, name string, size int) {
	g, err := builder.Generate(size, core.ShapeGrid, builder.WithSeed(7))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := mst.Run(context.Background(), name, g, nil, fast()); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPrim30(b *testing.B)          { benchmarkEngine(b, "prim", 30) }
func BenchmarkFredmanTarjan30(b *testing.B) { benchmarkEngine(b, "fredman-tarjan", 30) }
func BenchmarkKruskal30(b *testing.B)       { benchmarkEngine(b, "kruskal", 30) }
func BenchmarkIntegerWeight30(b *testing.B) { benchmarkEngine(b, "integer-weight", 30) }
func BenchmarkBoruvka30(b *testing.B)       { benchmarkEngine(b, "boruvka", 30) }
func BenchmarkReverseDelete15(b *testing.B) { benchmarkEngine(b, "reverse-delete", 15) }
