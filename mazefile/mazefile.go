package mazefile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/katalvlaran/labyrinth/gridgraph"
)

// Cell glyphs.
const (
	Wall  = "#"
	Open  = "."
	Trail = "o"
	Start = "S"
	Goal  = "G"
)

// maxLine bounds a single maze row in bytes.
const maxLine = 1 << 20

// Parse reads a maze from r and builds a validated grid.
// Complexity: O(total input size).
func Parse(r io.Reader) (*gridgraph.Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLine)

	var cells [][]bool
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		row := parseRow(strings.ReplaceAll(line, " ", ""))
		if len(cells) > 0 && len(row) != len(cells[0]) {
			return nil, fmt.Errorf("mazefile: line %d has %d cells, want %d: %w",
				lineNo, len(row), len(cells[0]), gridgraph.ErrNonRectangular)
		}
		cells = append(cells, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("mazefile: read line %d: %w", lineNo+1, err)
	}

	g, err := gridgraph.NewGrid(cells)
	if err != nil {
		return nil, fmt.Errorf("mazefile: %w", err)
	}

	return g, nil
}

// parseRow splits line into grapheme clusters, one cell each.
func parseRow(line string) []bool {
	row := make([]bool, 0, len(line))
	gr := uniseg.NewGraphemes(line)
	for gr.Next() {
		row = append(row, gr.Str() != Wall)
	}

	return row
}

// Load opens path and parses it as a maze.
func Load(path string) (*gridgraph.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mazefile: %w", err)
	}
	defer f.Close()

	g, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// Format renders g as text, one row per line, with walls as '#' and open
// cells as '.'. Cells on path are drawn as 'o', its first cell as 'S' and
// its last as 'G'. A nil path renders the bare maze.
func Format(g *gridgraph.Grid, path []gridgraph.Coord) string {
	mark := make(map[gridgraph.Coord]string, len(path))
	for _, c := range path {
		mark[c] = Trail
	}
	if len(path) > 0 {
		mark[path[0]] = Start
		mark[path[len(path)-1]] = Goal
	}

	var sb strings.Builder
	sb.Grow(g.Rows() * (g.Cols() + 1))
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			at := gridgraph.Coord{Row: r, Col: c}
			switch glyph, ok := mark[at]; {
			case ok:
				sb.WriteString(glyph)
			case g.IsOpen(at):
				sb.WriteString(Open)
			default:
				sb.WriteString(Wall)
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
