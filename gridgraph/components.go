package gridgraph

// ConnectedComponents finds all contiguous regions of open cells under
// orthogonal connectivity.
// Returns a slice of components; each component lists its cells in BFS
// discovery order from the component's row-major first cell.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) ConnectedComponents() [][]Coord {
	seen := make([]bool, g.rows*g.cols)
	var comps [][]Coord

	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if !g.open[r][c] {
				continue // wall
			}
			root := Coord{Row: r, Col: c}
			if seen[g.index(root)] {
				continue
			}
			comps = append(comps, g.flood(root, seen))
		}
	}

	return comps
}

// Reachable returns the number of open cells in the region containing from,
// or 0 if from is a wall or out of bounds.
// Complexity: O(W·H).
func (g *Grid) Reachable(from Coord) int {
	if !g.IsOpen(from) {
		return 0
	}

	return len(g.flood(from, make([]bool, g.rows*g.cols)))
}

// flood collects the open region around root, marking seen as it goes.
func (g *Grid) flood(root Coord, seen []bool) []Coord {
	queue := []Coord{root}
	seen[g.index(root)] = true
	buf := make([]Coord, 0, len(offsets))

	for qi := 0; qi < len(queue); qi++ {
		buf = g.AppendNeighbors(buf[:0], queue[qi])
		for _, v := range buf {
			vi := g.index(v)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, v)
			}
		}
	}

	return queue
}
