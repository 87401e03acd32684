package bfs

import (
	"github.com/katalvlaran/labyrinth/gridgraph"
	"github.com/katalvlaran/labyrinth/search"
)

// Name identifies this strategy in errors and logs.
const Name = "bfs"

// walker encapsulates mutable BFS state for a single call.
type walker struct {
	grid    *gridgraph.Grid
	opts    search.Options
	goal    gridgraph.Coord
	queue   []gridgraph.Coord
	head    int
	visited map[gridgraph.Coord]bool
	parent  map[gridgraph.Coord]gridgraph.Coord
}

// BFS runs breadth-first search on g from start to goal,
// applying any number of functional Options.
// Returns search.ErrNilGrid, search.ErrEndpointOutOfBounds or
// search.ErrOptionViolation for invalid input, or any context or hook error.
// An unreachable or walled-in goal is reported as Result.Found == false.
func BFS(g *gridgraph.Grid, start, goal gridgraph.Coord, opts ...search.Option) (search.Result, error) {
	o, err := search.Prepare(g, start, goal, opts)
	if err != nil {
		return search.Result{}, err
	}
	if !g.IsOpen(start) || !g.IsOpen(goal) {
		return search.NotFound(0), nil
	}

	n := g.OpenCount()
	w := &walker{
		grid:    g,
		opts:    o,
		goal:    goal,
		queue:   make([]gridgraph.Coord, 0, n),
		visited: make(map[gridgraph.Coord]bool, n),
		parent:  make(map[gridgraph.Coord]gridgraph.Coord, n),
	}

	// Seed queue with start (no parent)
	w.enqueue(start)

	return w.loop()
}

// enqueue marks c visited, calls OnEnqueue and appends it to the queue.
func (w *walker) enqueue(c gridgraph.Coord) {
	w.visited[c] = true
	w.opts.OnEnqueue(c)
	w.queue = append(w.queue, c)
}

// loop processes the queue until goal, exhaustion, error or cancellation.
func (w *walker) loop() (search.Result, error) {
	expanded := 0
	nbs := make([]gridgraph.Coord, 0, 4)
	for w.head < len(w.queue) {
		// cancellation check (once per loop)
		if err := w.opts.Cancelled(); err != nil {
			return search.Result{}, err
		}

		cur := w.queue[w.head]
		w.head++
		if err := w.opts.Visit(Name, cur); err != nil {
			return search.Result{}, err
		}
		if cur == w.goal {
			return search.FoundPath(search.Reconstruct(w.parent, cur), len(w.visited)), nil
		}
		if w.opts.Exceeded(expanded) {
			return search.Stopped(len(w.visited)), nil
		}
		expanded++

		nbs = w.grid.AppendNeighbors(nbs[:0], cur)
		for _, nb := range nbs {
			// first time seen?
			if !w.visited[nb] {
				w.parent[nb] = cur
				w.enqueue(nb)
			}
		}
	}

	return search.NotFound(len(w.visited)), nil
}
