package bfs_test

import (
	"testing"

	"github.com/katalvlaran/vertigo/bfs"
	"github.com/katalvlaran/vertigo/core"
	"github.com/katalvlaran/vertigo/ident"
)

func BenchmarkBFS_Chain(b *testing.B) {
	const n = 10_000
	g := core.NewGraph[int](core.WithCapacity[int](n + 1))
	prev := g.AddVertex(0)
	for i := 1; i <= n; i++ {
		cur := g.AddVertex(i)
		_ = g.AddEdge(prev, cur)
		prev = cur
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it := bfs.New(g)
		for _, ok := it.Next(); ok; _, ok = it.Next() {
		}
	}
}

func BenchmarkBFS_Fanout(b *testing.B) {
	// One root fanning out to a thousand leaves. Kept moderate: every
	// insertion re-sorts the root's outbound list.
	const n = 1000
	g := core.NewGraph[int](core.WithCapacity[int](n + 1))
	root := g.AddVertex(0)
	leaves := make([]ident.ID, n)
	for i := 0; i < n; i++ {
		leaves[i] = g.AddVertex(i + 1)
		_ = g.AddEdge(root, leaves[i])
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it := bfs.New(g)
		for _, ok := it.Next(); ok; _, ok = it.Next() {
		}
	}
}
