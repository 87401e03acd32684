// Package astar implements A* search on a gridgraph.Grid with the Manhattan
// distance heuristic.
//
// A* expands cells in order of f = g + h, where g is the number of moves from
// start and h = |Δrow| + |Δcol| to goal. For unit-cost orthogonal moves the
// heuristic is admissible and consistent, so the first time goal is popped its
// path is a shortest one, and a cell once closed never improves.
//
// Complexity:
//
//   - Time:  O(N log N), N = open cells
//   - Each cell is closed at most once.
//   - Each improvement pushes a new heap entry: at most 4 per closed cell.
//   - Space: O(N) for g-scores, parents, closed set and heap.
//
// Notes on implementation choices:
//
//   - Unknown g-scores are absent from the map and treated as infinite.
//   - Lazy decrease-key: an improved cell is pushed again; when an entry whose
//     cell is already closed, or whose g is stale, reaches the top of the heap
//     it is dropped without counting as a visit. No linear membership scans.
//   - Ties on f are broken by insertion order (FIFO), so among equal-length
//     shortest paths the result is reproducible run to run.
//   - A neighbor's parent changes only on a strictly smaller g-score. An
//     equal-cost route found later never replaces the first one, so the
//     returned path follows the earliest discovered parent of each cell in
//     neighbor order (down, up, right, left).
//   - Visited is the number of cells closed, goal included.
package astar
