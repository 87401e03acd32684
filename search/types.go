package search

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/labyrinth/gridgraph"
)

// Sentinel errors shared by all strategies.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrEndpointOutOfBounds is returned when start or goal lies outside the grid.
	ErrEndpointOutOfBounds = errors.New("search: endpoint out of bounds")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Result is the outcome of one search call. It is built once and not mutated.
type Result struct {
	// Path lists the cells from start to goal inclusive; nil when !Found.
	Path []gridgraph.Coord

	// Visited counts the cells the strategy explored (see each strategy's
	// package doc for what counts as explored).
	Visited int

	// Found reports whether goal was reached.
	Found bool

	// Truncated reports that the visit cap stopped the search before the
	// frontier ran out, so an unfound goal may still be reachable.
	Truncated bool
}

// NotFound builds the no-path outcome with the given exploration count.
func NotFound(visited int) Result {
	return Result{Visited: visited}
}

// Stopped builds the outcome of a search cut short by MaxVisits.
func Stopped(visited int) Result {
	return Result{Visited: visited, Truncated: true}
}

// FoundPath builds the path outcome.
func FoundPath(path []gridgraph.Coord, visited int) Result {
	return Result{Path: path, Visited: visited, Found: true}
}

// Steps returns the number of moves on the path, or -1 when no path exists.
func (r Result) Steps() int {
	if !r.Found {
		return -1
	}

	return len(r.Path) - 1
}

// Option configures a search via functional arguments.
// If an Option is invalid (e.g. negative visit cap), it is recorded
// internally and surfaced as ErrOptionViolation when the search starts.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a cell joins the frontier.
	OnEnqueue func(c gridgraph.Coord)

	// OnVisit is called when a cell is expanded. If it returns an error,
	// the search aborts and propagates that error.
	OnVisit func(c gridgraph.Coord) error

	// MaxVisits, if > 0, ends the search with Result.Truncated set once that
	// many cells have been expanded without reaching goal. 0 disables the cap.
	MaxVisits int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no-op hooks
//   - no visit cap
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(gridgraph.Coord) {},
		OnVisit:   func(gridgraph.Coord) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(c gridgraph.Coord)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on expansion; returning an error
// from it stops the search.
func WithOnVisit(fn func(c gridgraph.Coord) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxVisits caps the number of expansions.
//
//	n > 0: stop after n expansions
//	n == 0: explicit no cap
//	n < 0: invalid option → ErrOptionViolation
func WithMaxVisits(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxVisits cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxVisits = n
	}
}

// Prepare applies opts over DefaultOptions and validates the grid and both
// endpoints. Every strategy calls it before allocating frontier state.
func Prepare(g *gridgraph.Grid, start, goal gridgraph.Coord, opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	if g == nil {
		return o, ErrNilGrid
	}
	if !g.InBounds(start) {
		return o, fmt.Errorf("%w: start %v outside %dx%d grid", ErrEndpointOutOfBounds, start, g.Rows(), g.Cols())
	}
	if !g.InBounds(goal) {
		return o, fmt.Errorf("%w: goal %v outside %dx%d grid", ErrEndpointOutOfBounds, goal, g.Rows(), g.Cols())
	}

	return o, nil
}

// Exceeded reports whether visited has hit the configured cap.
func (o Options) Exceeded(visited int) bool {
	return o.MaxVisits > 0 && visited >= o.MaxVisits
}

// Visit runs the OnVisit hook, wrapping its error with the strategy name.
func (o Options) Visit(strategy string, c gridgraph.Coord) error {
	if err := o.OnVisit(c); err != nil {
		return fmt.Errorf("%s: OnVisit error at %v: %w", strategy, c, err)
	}

	return nil
}

// Cancelled returns the context error if the search should stop.
func (o Options) Cancelled() error {
	select {
	case <-o.Ctx.Done():
		return o.Ctx.Err()
	default:
		return nil
	}
}
