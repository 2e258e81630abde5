package reach_test

import (
	"testing"

	"github.com/katalvlaran/reachly/core"
	"github.com/katalvlaran/reachly/reach"
)

// benchChainGraph builds the map graph 1→2→…→n.
func benchChainGraph(n int) core.MapGraph {
	g := make(core.MapGraph, n)
	for i := 1; i < n; i++ {
		g[i] = core.NewNeighborSet(i + 1)
	}
	g[n] = core.NewNeighborSet()

	return g
}

// benchNodeRing builds a node-graph ring of n vertices valued 0..n-1
// and returns the first.
func benchNodeRing(n int) *core.Vertex[int] {
	vs := make([]*core.Vertex[int], n)
	for i := range vs {
		vs[i] = core.NewVertex(i)
	}
	for i := range vs {
		vs[i].Neighbors = []*core.Vertex[int]{vs[(i+1)%n]}
	}

	return vs[0]
}

// BenchmarkOddVertices_Ring measures the counting walk over a cyclic
// node graph of size N.
func BenchmarkOddVertices_Ring(b *testing.B) {
	const N = 10000
	start := benchNodeRing(N)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = reach.OddVertices(start)
	}
}

// BenchmarkSortedReachable_Ring measures collect-and-sort over the same
// ring shape.
func BenchmarkSortedReachable_Ring(b *testing.B) {
	const N = 10000
	start := benchNodeRing(N)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = reach.SortedReachable(start)
	}
}

// BenchmarkSortedReachableIDs_Chain measures the map-graph collector on
// a linear chain of size N.
func BenchmarkSortedReachableIDs_Chain(b *testing.B) {
	const N = 10000
	g := benchChainGraph(N)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = reach.SortedReachableIDs(g, 1)
	}
}

// BenchmarkPositivePathExists_Chain measures the filtered existence
// search end to end on a chain (worst case: full exploration).
func BenchmarkPositivePathExists_Chain(b *testing.B) {
	const N = 10000
	g := benchChainGraph(N)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = reach.PositivePathExists(g, 1, N)
	}
}
