package bfs_test

import (
	"testing"

	"github.com/katalvlaran/topcorr/bfs"
)

// BenchmarkBFS_Grid runs BFS on an M×M grid (M² nodes, 2·M·(M−1) edges).
func BenchmarkBFS_Grid(b *testing.B) {
	const M = 100
	var edges [][2]int
	for i := 0; i < M; i++ {
		for j := 0; j < M; j++ {
			id := i*M + j
			if i+1 < M {
				edges = append(edges, [2]int{id, id + M})
			}
			if j+1 < M {
				edges = append(edges, [2]int{id, id + 1})
			}
		}
	}
	g := build(b, M*M, edges)
	g.Freeze()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}

// BenchmarkDiameter_Chain measures the all-sources walk on a 200-node path.
func BenchmarkDiameter_Chain(b *testing.B) {
	var edges [][2]int
	for i := 1; i < 200; i++ {
		edges = append(edges, [2]int{i - 1, i})
	}
	g := build(b, 200, edges)
	g.Freeze()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Diameter(g)
	}
}
