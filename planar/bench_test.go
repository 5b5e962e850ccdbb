package planar_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/planarity/planar"
)

func BenchmarkTestAndEmbed_Path(b *testing.B) {
	vertices, edges := path(10_000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := planar.TestAndEmbed(vertices, edges); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTestAndEmbed_Grid(b *testing.B) {
	vertices, edges := grid(100, 100)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := planar.TestAndEmbed(vertices, edges); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTestAndEmbed_Triangulation(b *testing.B) {
	vertices, edges := stacked(5_000, rand.New(rand.NewSource(1)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := planar.TestAndEmbed(vertices, edges); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkIsPlanar_NonPlanar(b *testing.B) {
	vertices, edges := completeBipartite(30, 3)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if ok, err := planar.IsPlanar(vertices, edges); err != nil || ok {
			b.Fatal("K30,3 must be rejected by the testing pass")
		}
	}
}
