package gridgraph

import (
	"fmt"
	"strings"
)

// Coord identifies a cell by 0-indexed row and column.
type Coord struct {
	Row, Col int
}

// String renders c as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Less orders coordinates row-major.
func (c Coord) Less(o Coord) bool {
	if c.Row != o.Row {
		return c.Row < o.Row
	}

	return c.Col < o.Col
}

// Add returns c shifted by d.
func (c Coord) Add(d Coord) Coord {
	return Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

// Manhattan returns |Δrow| + |Δcol| between a and b.
// Admissible and consistent for unit-cost orthogonal moves.
func Manhattan(a, b Coord) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// Expansion order: down, up, right, left.
// Strategies that break ties by discovery order depend on it.
var offsets = [4]Coord{
	{Row: 1, Col: 0},
	{Row: -1, Col: 0},
	{Row: 0, Col: 1},
	{Row: 0, Col: -1},
}

// Grid is an immutable rectangular maze. Width and height are fixed at
// construction; open[r][c] reports whether the cell is passable.
type Grid struct {
	rows, cols int
	open       [][]bool
	openCount  int
}

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if cells has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGrid(cells [][]bool) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	for r, row := range cells {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), w)
		}
	}
	// Deep copy to prevent external mutation
	g := &Grid{rows: h, cols: w, open: make([][]bool, h)}
	for r := 0; r < h; r++ {
		g.open[r] = make([]bool, w)
		copy(g.open[r], cells[r])
		for _, ok := range g.open[r] {
			if ok {
				g.openCount++
			}
		}
	}

	return g, nil
}

// MustGrid is NewGrid for literals in tests and examples: rows are strings
// where '#' marks a wall and any other byte an open cell. It panics on error.
func MustGrid(rows ...string) *Grid {
	cells := make([][]bool, len(rows))
	for r, line := range rows {
		cells[r] = make([]bool, len(line))
		for c := 0; c < len(line); c++ {
			cells[r][c] = line[c] != '#'
		}
	}
	g, err := NewGrid(cells)
	if err != nil {
		panic(err)
	}

	return g
}

// Rows returns the grid height.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the grid width.
func (g *Grid) Cols() int { return g.cols }

// OpenCount returns the number of open cells.
func (g *Grid) OpenCount() int { return g.openCount }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// IsOpen reports whether c is in bounds and passable.
// Complexity: O(1).
func (g *Grid) IsOpen(c Coord) bool {
	return g.InBounds(c) && g.open[c.Row][c.Col]
}

// Cells returns a deep copy of the passability matrix.
func (g *Grid) Cells() [][]bool {
	out := make([][]bool, g.rows)
	for r := range g.open {
		out[r] = append([]bool(nil), g.open[r]...)
	}

	return out
}

// Neighbors returns the open orthogonal neighbors of c in the order
// down, up, right, left.
func (g *Grid) Neighbors(c Coord) []Coord {
	return g.AppendNeighbors(make([]Coord, 0, len(offsets)), c)
}

// AppendNeighbors appends the open neighbors of c to dst, in Neighbors order,
// and returns the extended slice. Lets hot loops reuse one buffer.
func (g *Grid) AppendNeighbors(dst []Coord, c Coord) []Coord {
	for _, d := range offsets {
		n := c.Add(d)
		if g.IsOpen(n) {
			dst = append(dst, n)
		}
	}

	return dst
}

// String renders the grid with '#' for walls and '.' for open cells,
// one row per line.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.open[r][c] {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('#')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// index maps c to a row-major index: Row*cols + Col.
// Complexity: O(1).
func (g *Grid) index(c Coord) int {
	return c.Row*g.cols + c.Col
}

// Coordinate converts a row-major index back to a Coord.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{Row: idx / g.cols, Col: idx % g.cols}
}
