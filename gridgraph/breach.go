package gridgraph

import (
	"container/list"
	"fmt"
)

// BreachWalls finds a walk from start to goal that crosses the fewest walls.
// Moving into an open cell costs 0, moving into a wall costs 1.
// Returns the cells of the walk (start and goal included) and the number of
// walls on it. A cost of 0 means the goal is already reachable.
//
// Behavior:
//  1. Validate both coordinates.
//  2. 0-1 BFS from start: cost-0 moves go to the deque front, cost-1 to the back.
//  3. Stop when goal is popped.
//  4. Reconstruct the walk via predecessors.
//
// Complexity: O(W·H) time, O(W·H) memory.
func (g *Grid) BreachWalls(start, goal Coord) (path []Coord, cost int, err error) {
	if !g.InBounds(start) {
		return nil, 0, fmt.Errorf("%w: start %v", ErrOutOfBounds, start)
	}
	if !g.InBounds(goal) {
		return nil, 0, fmt.Errorf("%w: goal %v", ErrOutOfBounds, goal)
	}

	n := g.rows * g.cols
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	src := g.index(start)
	dist[src] = g.wallCost(start)
	dq := list.New()
	dq.PushFront(src)
	target := g.index(goal)

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if u == target {
			break
		}
		uc := g.Coordinate(u)
		for _, d := range offsets {
			vc := uc.Add(d)
			if !g.InBounds(vc) {
				continue
			}
			v := g.index(vc)
			step := g.wallCost(vc)
			nd := dist[u] + step
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	// Reconstruct walk
	for at := target; at >= 0; at = prev[at] {
		path = append(path, g.Coordinate(at))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[target], nil
}

func (g *Grid) wallCost(c Coord) int {
	if g.open[c.Row][c.Col] {
		return 0
	}

	return 1
}
