// Package solver runs the maze strategies end to end.
//
// It locates the entrance and exit of a grid, dispatches to astar, bfs or
// dfs by name, bounds each run with a timeout, measures wall-clock time and
// logs every run through log/slog with a per-run identifier.
//
// Compare fans several strategies out over the same grid concurrently.
// A Grid is never mutated after construction, so sharing it between
// goroutines needs no locking.
//
// Example:
//
//	g, _ := mazefile.Load("maze.txt")
//	rep, err := solver.Solve(ctx, g, solver.AStar, solver.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(rep.Result.Steps(), rep.Result.Visited, rep.Elapsed)
package solver
