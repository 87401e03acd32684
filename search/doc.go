// Package search holds what the astar, bfs and dfs strategies share: the
// unified Result, functional options, endpoint validation and path helpers.
//
// Result
//
//	Every strategy returns a Result. Found reports whether a path exists; when
//	it does, Path runs from start to goal inclusive. An unreachable goal and a
//	walled-in start or goal both yield Found == false with a nil Path. They are
//	outcomes, not errors.
//
// Options
//
//   - WithContext(ctx):     cancellation, checked once per expansion.
//   - WithOnVisit(fn):      hook on every expansion; an error aborts the search.
//   - WithOnEnqueue(fn):    hook whenever a cell joins the frontier.
//   - WithMaxVisits(n):     stop with Found == false and Truncated == true
//     after n expansions (n > 0).
//
// Errors
//
//   - ErrNilGrid               if the grid pointer is nil.
//   - ErrEndpointOutOfBounds   if start or goal lies outside the grid.
//   - ErrOptionViolation       if an Option was given an invalid value.
//   - context errors, and wrapped OnVisit errors.
package search
