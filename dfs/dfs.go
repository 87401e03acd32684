package dfs

import (
	"github.com/katalvlaran/labyrinth/gridgraph"
	"github.com/katalvlaran/labyrinth/search"
)

// Name identifies this strategy in errors and logs.
const Name = "dfs"

// frame is one stack entry: a cell and the walk that led to it.
type frame struct {
	at   gridgraph.Coord
	path []gridgraph.Coord
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	grid    *gridgraph.Grid
	opts    search.Options
	goal    gridgraph.Coord
	stack   []frame
	visited map[gridgraph.Coord]bool
}

// DFS performs depth-first search on g from start to goal.
// Returns a Result with the first path found, or Found == false when the
// stack empties first. Errors only for invalid input, cancellation or hooks.
func DFS(g *gridgraph.Grid, start, goal gridgraph.Coord, opts ...search.Option) (search.Result, error) {
	o, err := search.Prepare(g, start, goal, opts)
	if err != nil {
		return search.Result{}, err
	}
	// Walled endpoints fail before any exploration.
	if !g.IsOpen(start) || !g.IsOpen(goal) {
		return search.NotFound(0), nil
	}

	w := &dfsWalker{
		grid:    g,
		opts:    o,
		goal:    goal,
		visited: make(map[gridgraph.Coord]bool, g.OpenCount()),
	}
	w.push(start, nil)

	return w.run()
}

// push copies path, extends it with c and puts the frame on the stack.
func (w *dfsWalker) push(c gridgraph.Coord, path []gridgraph.Coord) {
	next := make([]gridgraph.Coord, len(path)+1)
	copy(next, path)
	next[len(path)] = c
	w.opts.OnEnqueue(c)
	w.stack = append(w.stack, frame{at: c, path: next})
}

// run pops frames until goal is reached or the stack is empty.
func (w *dfsWalker) run() (search.Result, error) {
	nbs := make([]gridgraph.Coord, 0, 4)
	expanded := 0
	for len(w.stack) > 0 {
		// 1. Cancellation check
		if err := w.opts.Cancelled(); err != nil {
			return search.Result{}, err
		}

		// 2. Pop; stale duplicates are skipped
		top := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		if w.visited[top.at] {
			continue
		}

		// 3. Mark visited and run the hook
		w.visited[top.at] = true
		if err := w.opts.Visit(Name, top.at); err != nil {
			return search.Result{}, err
		}
		if top.at == w.goal {
			return search.FoundPath(top.path, len(w.visited)), nil
		}
		if w.opts.Exceeded(expanded) {
			return search.Stopped(len(w.visited)), nil
		}
		expanded++

		// 4. Push unvisited neighbors; the last pushed is explored first
		nbs = w.grid.AppendNeighbors(nbs[:0], top.at)
		for _, nb := range nbs {
			if !w.visited[nb] {
				w.push(nb, top.path)
			}
		}
	}

	return search.NotFound(len(w.visited)), nil
}
