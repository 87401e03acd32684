package gridgraph

import "fmt"

// FindEndpoints locates the maze entrance and exit.
// start is the first open column of row 0, goal the first open column of the
// last row. For a single-row grid both come from the same row.
// Returns an error wrapping ErrNoOpeningFound if either boundary row is solid.
// Complexity: O(W).
func FindEndpoints(g *Grid) (start, goal Coord, err error) {
	sc, ok := g.firstOpen(0)
	if !ok {
		return Coord{}, Coord{}, fmt.Errorf("%w: top row 0", ErrNoOpeningFound)
	}
	last := g.rows - 1
	gc, ok := g.firstOpen(last)
	if !ok {
		return Coord{}, Coord{}, fmt.Errorf("%w: bottom row %d", ErrNoOpeningFound, last)
	}

	return Coord{Row: 0, Col: sc}, Coord{Row: last, Col: gc}, nil
}

// firstOpen returns the lowest open column in row r.
func (g *Grid) firstOpen(r int) (int, bool) {
	for c, ok := range g.open[r] {
		if ok {
			return c, true
		}
	}

	return -1, false
}
