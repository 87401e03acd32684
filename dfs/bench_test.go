package dfs_test

import (
	"testing"

	"github.com/katalvlaran/labyrinth/dfs"
	"github.com/katalvlaran/labyrinth/gridgraph"
)

// serpentine builds an n×n maze whose only route snakes row by row.
func serpentine(b *testing.B, n int) *gridgraph.Grid {
	b.Helper()
	cells := make([][]bool, n)
	for r := range cells {
		cells[r] = make([]bool, n)
		switch {
		case r%2 == 0:
			for c := range cells[r] {
				cells[r][c] = true
			}
		case r%4 == 1:
			cells[r][n-1] = true
		default:
			cells[r][0] = true
		}
	}
	g, err := gridgraph.NewGrid(cells)
	if err != nil {
		b.Fatalf("NewGrid: %v", err)
	}

	return g
}

// BenchmarkDFS_Serpentine measures the worst case for per-entry path copies.
func BenchmarkDFS_Serpentine(b *testing.B) {
	g := serpentine(b, 41)
	start, goal, err := gridgraph.FindEndpoints(g)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS(g, start, goal)
	}
}
