// Package labyrinth finds routes through text-encoded grid mazes.
//
// A maze is a rectangle of cells where '#' is a wall and anything else is
// open. The entrance is the first open cell of the top row and the exit the
// first open cell of the bottom row. Moves are orthogonal and cost one step.
//
// Three interchangeable strategies share one result type:
//
//	astar/  A* with the Manhattan heuristic; shortest path, few expansions
//	bfs/    breadth-first search; shortest path
//	dfs/    depth-first backtracking; some path, not necessarily shortest
//
// Supporting packages:
//
//	gridgraph/  immutable Grid and Coord, endpoint location, neighbor
//	            order, open-region analysis, wall-breach distance
//	search/     Result, shared functional options (context, hooks, visit
//	            cap), path reconstruction and validation
//	mazefile/   text maze parsing and rendering
//	solver/     strategy registry, time-boxed runs, concurrent comparison
//
// The mazesolve command under cmd/ ties them together:
//
//	mazesolve -algo all -draw maze.txt
//
// Every search is synchronous and allocates its own frontier, so one Grid
// may be searched by many goroutines at once.
package labyrinth
