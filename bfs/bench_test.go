package bfs_test

import (
	"testing"

	"github.com/katalvlaran/graphsample/bfs"
	"github.com/katalvlaran/graphsample/builder"
)

// BenchmarkBFS_Chain measures BFS on a linear chain graph of size N.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	g := builder.MustBuild(nil, builder.Path(N))

	b.ReportAllocs()
	b.SetBytes(int64(g.Order() + g.Size()))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}

// BenchmarkBFS_RandomSparse runs BFS on a 2000-node random digraph.
func BenchmarkBFS_RandomSparse(b *testing.B) {
	g := builder.MustBuild([]builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(2000, 0.003))

	b.ReportAllocs()
	b.SetBytes(int64(g.Order() + g.Size()))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, i%g.Order())
	}
}
