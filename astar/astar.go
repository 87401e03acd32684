package astar

import (
	"container/heap"

	"github.com/katalvlaran/labyrinth/gridgraph"
	"github.com/katalvlaran/labyrinth/search"
)

// Name identifies this strategy in errors and logs.
const Name = "astar"

// AStar finds a shortest path on g from start to goal.
//
// Returns:
//
//   - a Result whose Path is optimal in move count when Found is true;
//   - Found == false when the frontier empties, or a walled endpoint makes the
//     goal unreachable, with Visited counting the cells closed;
//   - err for invalid input (search.ErrNilGrid, search.ErrEndpointOutOfBounds,
//     search.ErrOptionViolation), cancellation, or an OnVisit error.
func AStar(g *gridgraph.Grid, start, goal gridgraph.Coord, opts ...search.Option) (search.Result, error) {
	o, err := search.Prepare(g, start, goal, opts)
	if err != nil {
		return search.Result{}, err
	}
	if !g.IsOpen(start) || !g.IsOpen(goal) {
		return search.NotFound(0), nil
	}

	n := g.OpenCount()
	r := &runner{
		grid:   g,
		opts:   o,
		goal:   goal,
		gScore: make(map[gridgraph.Coord]int, n),
		parent: make(map[gridgraph.Coord]gridgraph.Coord, n),
		closed: make(map[gridgraph.Coord]bool, n),
		pq:     make(nodePQ, 0, n),
	}
	r.init(start)

	return r.process()
}

// runner holds the mutable state for a single A* execution.
type runner struct {
	grid   *gridgraph.Grid
	opts   search.Options
	goal   gridgraph.Coord
	gScore map[gridgraph.Coord]int             // best known moves from start
	parent map[gridgraph.Coord]gridgraph.Coord // predecessor on best known path
	closed map[gridgraph.Coord]bool            // expanded cells
	pq     nodePQ
	seq    int
}

// init seeds the heap with start at g = 0.
func (r *runner) init(start gridgraph.Coord) {
	heap.Init(&r.pq)
	r.gScore[start] = 0
	r.push(start, 0)
}

// push records a frontier entry for c with the given g-score.
func (r *runner) push(c gridgraph.Coord, g int) {
	r.opts.OnEnqueue(c)
	heap.Push(&r.pq, &nodeItem{
		at:  c,
		g:   g,
		f:   g + gridgraph.Manhattan(c, r.goal),
		seq: r.seq,
	})
	r.seq++
}

// process pops the lowest-f entry until goal is closed or the heap empties.
func (r *runner) process() (search.Result, error) {
	nbs := make([]gridgraph.Coord, 0, 4)
	expanded := 0
	for r.pq.Len() > 0 {
		if err := r.opts.Cancelled(); err != nil {
			return search.Result{}, err
		}

		// 1) Pop; drop entries superseded since they were pushed.
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.at
		if r.closed[u] || item.g > r.gScore[u] {
			continue
		}

		// 2) Close u. Its g-score is now final.
		r.closed[u] = true
		if err := r.opts.Visit(Name, u); err != nil {
			return search.Result{}, err
		}
		if u == r.goal {
			return search.FoundPath(search.Reconstruct(r.parent, u), len(r.closed)), nil
		}
		if r.opts.Exceeded(expanded) {
			return search.Stopped(len(r.closed)), nil
		}
		expanded++

		// 3) Relax every open neighbor.
		nbs = r.grid.AppendNeighbors(nbs[:0], u)
		r.relax(u, nbs)
	}

	return search.NotFound(len(r.closed)), nil
}

// relax improves the g-score of each neighbor of u reachable in one more move.
// Only strictly better scores are recorded, so the first parent found among
// equal-cost routes is kept.
func (r *runner) relax(u gridgraph.Coord, nbs []gridgraph.Coord) {
	tentative := r.gScore[u] + 1
	for _, v := range nbs {
		if r.closed[v] {
			continue
		}
		if old, ok := r.gScore[v]; ok && tentative >= old {
			continue
		}
		r.gScore[v] = tentative
		r.parent[v] = u
		r.push(v, tentative)
	}
}
