// Package bfs finds shortest paths on a gridgraph.Grid by breadth-first search,
// returning the fewest-move path from start to goal and an exploration count.
//
// What
//
//   - Explores cells in non-decreasing distance (moves) from start.
//   - A cell is marked visited, and its parent recorded, when it is enqueued,
//     so no cell ever enters the queue twice.
//   - When goal is dequeued the path is rebuilt from the parent map.
//   - Visited in the Result is the number of cells marked at return time,
//     which includes cells still waiting in the queue.
//
// Determinism
//
//	Neighbors are enqueued in gridgraph's fixed down, up, right, left order, so
//	both the chosen path (among equal-length ones) and Visited are reproducible.
//
// Complexity (W×H grid)
//
//   - Time:   O(W·H)   (each cell enqueued at most once, 4 neighbors each)
//   - Memory: O(W·H)   (queue, visited set, parent map)
//
// Usage
//
//	res, err := bfs.BFS(grid, start, goal)
//	if err != nil {
//		// search.ErrNilGrid, search.ErrEndpointOutOfBounds,
//		// search.ErrOptionViolation, context or hook errors
//	}
//	if res.Found {
//		fmt.Println(res.Steps(), res.Path)
//	}
//
// Options are shared with the other strategies; see package search.
package bfs
