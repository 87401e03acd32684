package search

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/gridgraph"
)

// Reconstruct walks parent links back from goal until a cell with no parent
// (the start) and returns the cells in start → goal order.
func Reconstruct(parent map[gridgraph.Coord]gridgraph.Coord, goal gridgraph.Coord) []gridgraph.Coord {
	path := []gridgraph.Coord{goal}
	for cur := goal; ; {
		prev, ok := parent[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// ValidatePath checks that path is a legal walk on g from start to goal:
// it is non-empty, every cell is open, and consecutive cells are exactly one
// orthogonal step apart. Returns nil for a valid walk.
func ValidatePath(g *gridgraph.Grid, start, goal gridgraph.Coord, path []gridgraph.Coord) error {
	if len(path) == 0 {
		return fmt.Errorf("search: empty path")
	}
	if path[0] != start {
		return fmt.Errorf("search: path starts at %v, want %v", path[0], start)
	}
	if last := path[len(path)-1]; last != goal {
		return fmt.Errorf("search: path ends at %v, want %v", last, goal)
	}
	for i, c := range path {
		if !g.IsOpen(c) {
			return fmt.Errorf("search: path cell %d %v is not open", i, c)
		}
		if i > 0 && gridgraph.Manhattan(path[i-1], c) != 1 {
			return fmt.Errorf("search: step %d %v → %v is not one orthogonal move", i, path[i-1], c)
		}
	}

	return nil
}
