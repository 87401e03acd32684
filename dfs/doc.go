// Package dfs implements backtracking depth-first search on a gridgraph.Grid.
//
// Key features:
//   - DFS(g, start, goal, opts...): explicit LIFO stack, no recursion, so deep
//     mazes cannot overflow the goroutine stack.
//   - Each stack entry carries its own path-so-far; no parent map is kept.
//   - A cell is marked visited when popped, not when pushed, so the same cell
//     may sit on the stack several times; the first pop wins.
//   - Neighbors are pushed in gridgraph's down, up, right, left order, which
//     makes the last pushed (left) the first explored.
//
// The path returned is the first one found under that order. It is always a
// valid walk but generally not the shortest; use bfs or astar for that.
//
// Visited counts distinct cells popped, goal included on success.
// A walled start or goal is reported as not found with Visited == 0.
//
// Complexity:
//
//   - Time:   O(W·H·L) worst case, where L is the longest path copied onto the stack.
//   - Memory: O(W·H·L) for per-entry paths.
//
// Errors:
//
//   - search.ErrNilGrid, search.ErrEndpointOutOfBounds, search.ErrOptionViolation.
//   - context.Canceled / DeadlineExceeded if ctx is done.
//   - any error returned by OnVisit.
package dfs
