package solver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/labyrinth/astar"
	"github.com/katalvlaran/labyrinth/bfs"
	"github.com/katalvlaran/labyrinth/dfs"
	"github.com/katalvlaran/labyrinth/gridgraph"
	"github.com/katalvlaran/labyrinth/search"
)

// ErrUnknownStrategy is returned for a strategy name with no registered search.
var ErrUnknownStrategy = errors.New("solver: unknown strategy")

// Strategy names one search algorithm.
type Strategy string

// Registered strategies.
const (
	AStar Strategy = astar.Name
	BFS   Strategy = bfs.Name
	DFS   Strategy = dfs.Name
)

// Func is the signature shared by astar.AStar, bfs.BFS and dfs.DFS.
type Func func(g *gridgraph.Grid, start, goal gridgraph.Coord, opts ...search.Option) (search.Result, error)

var registry = map[Strategy]Func{
	AStar: astar.AStar,
	BFS:   bfs.BFS,
	DFS:   dfs.DFS,
}

// All returns every registered strategy in a fixed order.
func All() []Strategy {
	return []Strategy{AStar, BFS, DFS}
}

// ParseStrategy resolves a case-insensitive strategy name.
// "a*" is accepted as an alias for astar.
func ParseStrategy(name string) (Strategy, error) {
	s := Strategy(strings.ToLower(strings.TrimSpace(name)))
	if s == "a*" {
		s = AStar
	}
	if _, ok := registry[s]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}

	return s, nil
}

// Config controls a solver run.
type Config struct {
	// Timeout bounds each strategy run. Zero disables the bound.
	Timeout time.Duration

	// MaxVisits is forwarded to search.WithMaxVisits.
	MaxVisits int

	// Logger receives one record per run. Nil discards.
	Logger *slog.Logger
}

// DefaultConfig returns a 30 second timeout, no visit cap and a discarding logger.
func DefaultConfig() Config {
	return Config{
		Timeout: 30 * time.Second,
		Logger:  slog.New(slog.DiscardHandler),
	}
}

// Report is the outcome of one strategy run.
type Report struct {
	Strategy Strategy
	Result   search.Result
	Elapsed  time.Duration
	Start    gridgraph.Coord
	Goal     gridgraph.Coord
}

// Solve locates the endpoints of g and runs strategy s between them.
// The strategy runs on its own goroutine; if ctx ends or cfg.Timeout passes
// first, Solve returns the context error without waiting for it.
func Solve(ctx context.Context, g *gridgraph.Grid, s Strategy, cfg Config) (Report, error) {
	if g == nil {
		return Report{}, search.ErrNilGrid
	}
	start, goal, err := gridgraph.FindEndpoints(g)
	if err != nil {
		return Report{}, err
	}

	return SolveBetween(ctx, g, s, start, goal, cfg)
}

// SolveBetween is Solve with explicit endpoints.
func SolveBetween(ctx context.Context, g *gridgraph.Grid, s Strategy, start, goal gridgraph.Coord, cfg Config) (Report, error) {
	run, ok := registry[s]
	if !ok {
		return Report{}, fmt.Errorf("%w: %q", ErrUnknownStrategy, string(s))
	}
	if cfg.MaxVisits < 0 {
		return Report{}, fmt.Errorf("%w: MaxVisits cannot be negative (%d)", search.ErrOptionViolation, cfg.MaxVisits)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger = logger.With("run_id", uuid.NewString(), "strategy", string(s))

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	type outcome struct {
		res search.Result
		err error
	}
	done := make(chan outcome, 1) // buffered: the worker never blocks on an abandoned run

	logger.DebugContext(ctx, "search started", "start", start.String(), "goal", goal.String())
	began := time.Now()
	go func() {
		res, err := run(g, start, goal,
			search.WithContext(ctx),
			search.WithMaxVisits(cfg.MaxVisits),
		)
		done <- outcome{res: res, err: err}
	}()

	var out outcome
	select {
	case out = <-done:
	case <-ctx.Done():
		out.err = ctx.Err()
	}
	rep := Report{Strategy: s, Result: out.res, Elapsed: time.Since(began), Start: start, Goal: goal}

	if out.err != nil {
		logger.WarnContext(ctx, "search failed", "elapsed", rep.Elapsed, "error", out.err)
		return Report{}, out.err
	}
	logger.InfoContext(ctx, "search finished",
		"found", rep.Result.Found,
		"truncated", rep.Result.Truncated,
		"steps", rep.Result.Steps(),
		"visited", rep.Result.Visited,
		"elapsed", rep.Elapsed,
	)

	return rep, nil
}

// Compare runs each strategy on g concurrently and returns the reports in
// the order given. An empty list means All(). The first error cancels the
// remaining runs and is returned.
func Compare(ctx context.Context, g *gridgraph.Grid, strategies []Strategy, cfg Config) ([]Report, error) {
	if len(strategies) == 0 {
		strategies = All()
	}
	for _, s := range strategies {
		if _, ok := registry[s]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, string(s))
		}
	}
	if g == nil {
		return nil, search.ErrNilGrid
	}
	start, goal, err := gridgraph.FindEndpoints(g)
	if err != nil {
		return nil, err
	}

	reports := make([]Report, len(strategies))
	eg, egCtx := errgroup.WithContext(ctx)
	for i, s := range strategies {
		eg.Go(func() error {
			rep, err := SolveBetween(egCtx, g, s, start, goal, cfg)
			if err != nil {
				return fmt.Errorf("%s: %w", s, err)
			}
			reports[i] = rep
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}
