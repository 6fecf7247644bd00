package bicomp_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/biconn/bicomp"
	"github.com/katalvlaran/biconn/core"
)

// benchGraph builds a connected graph: a spanning path plus extra random
// chords, seeded for reproducible benchmarks.
func benchGraph(b *testing.B, n, chords int) *core.Graph {
	b.Helper()
	g, err := core.NewGraph(n)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < n-1; i++ {
		_ = g.AddEdge(i, i+1)
	}
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < chords; i++ {
		_ = g.AddEdge(rng.Intn(n), rng.Intn(n))
	}

	return g
}

// BenchmarkTraverse measures one full pass over a 10k-vertex graph.
func BenchmarkTraverse(b *testing.B) {
	g := benchGraph(b, 10_000, 20_000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d, _ := bicomp.New(g)
		_ = d.Traverse(0, bicomp.NoParent)
	}
}

// BenchmarkComponents measures replaying the recorded structure, the part
// the original timing driver looped over.
func BenchmarkComponents(b *testing.B) {
	d, _ := bicomp.New(benchGraph(b, 10_000, 20_000))
	_ = d.Traverse(0, bicomp.NoParent)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = d.Components()
	}
}

// BenchmarkTraverse_DeepPath stresses the explicit stack on a pure path.
func BenchmarkTraverse_DeepPath(b *testing.B) {
	g := benchGraph(b, 100_000, 0)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d, _ := bicomp.New(g)
		_ = d.Traverse(0, bicomp.NoParent)
	}
}
