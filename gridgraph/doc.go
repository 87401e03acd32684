// Package gridgraph treats a 2D maze of open and wall cells as an implicit,
// unit-cost, orthogonally connected graph.
//
// What:
//
//   - Grid wraps a rectangular [][]bool (true = open, false = wall). It is
//     validated and deep-copied on construction and never mutated afterwards.
//   - Coord is a (Row, Col) value type usable as a map key.
//   - Neighbors yields the up-to-4 open neighbors of a cell in the fixed order
//     down, up, right, left.
//   - FindEndpoints locates the maze entrance (first opening in the top row) and
//     exit (first opening in the bottom row).
//   - ConnectedComponents / Reachable report open regions.
//   - BreachWalls computes the fewest walls a walk must cross (0-1 BFS).
//
// Why:
//
//   - The search packages (astar, bfs, dfs) only ever need InBounds, IsOpen and
//     Neighbors; keeping them here makes the three strategies share one
//     deterministic expansion order.
//
// Complexity:
//
//   - NewGrid:             O(W×H) time and memory.
//   - Neighbors:           O(1).
//   - ConnectedComponents: O(W×H), Memory: O(W×H).
//   - BreachWalls:         O(W×H), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNoOpeningFound: top or bottom row has no open cell.
//   - ErrOutOfBounds: a supplied coordinate lies outside the grid.
//
// Concurrency:
//
//	A *Grid is read-only after NewGrid returns, so any number of goroutines may
//	search the same grid at once.
package gridgraph
