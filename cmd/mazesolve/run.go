package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/katalvlaran/labyrinth/gridgraph"
	"github.com/katalvlaran/labyrinth/mazefile"
	"github.com/katalvlaran/labyrinth/solver"
)

// errNoMazeFile is returned when no maze file name was supplied.
var errNoMazeFile = errors.New("mazesolve: no maze file given")

// options holds the parsed command line.
type options struct {
	file      string
	algo      string
	timeout   time.Duration
	maxVisits int
	logLevel  string
	draw      bool
	quiet     bool
	parallel  bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("mazesolve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.file, "file", "", "maze file to solve (may also be given as the first argument)")
	fs.StringVar(&o.algo, "algo", "all", "strategy: astar, bfs, dfs or all")
	fs.DurationVar(&o.timeout, "timeout", 30*time.Second, "time limit per strategy (0 for none)")
	fs.IntVar(&o.maxVisits, "max-visits", 0, "give up after expanding this many cells (0 for no limit)")
	fs.StringVar(&o.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	fs.BoolVar(&o.draw, "draw", false, "draw the maze with the route marked")
	fs.BoolVar(&o.quiet, "quiet", false, "omit the literal path")
	fs.BoolVar(&o.parallel, "parallel", false, "run strategies concurrently (execution times then share the CPU)")
	fs.Usage = func() {
		_, _ = fmt.Fprintln(stderr, "Usage: mazesolve [flags] [maze-file]")
		_, _ = fmt.Fprintln(stderr, "\nOptions:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if o.file == "" && fs.NArg() > 0 {
		o.file = fs.Arg(0)
	}
	if fs.NArg() > 1 {
		return o, fmt.Errorf("mazesolve: unexpected arguments: %s", strings.Join(fs.Args()[1:], " "))
	}

	return o, nil
}

// parseLogLevel maps a level name to a slog.Level.
func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level: %s", s)
	}
}

// strategies resolves the -algo value.
func strategies(algo string) ([]solver.Strategy, error) {
	if strings.EqualFold(strings.TrimSpace(algo), "all") {
		return solver.All(), nil
	}
	var out []solver.Strategy
	for _, name := range strings.Split(algo, ",") {
		s, err := solver.ParseStrategy(name)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	return out, nil
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	level, err := parseLogLevel(o.logLevel)
	if err != nil {
		return err
	}
	list, err := strategies(o.algo)
	if err != nil {
		return err
	}

	if o.file == "" {
		if o.file, err = promptPath(stdin, stdout); err != nil {
			return err
		}
		if o.file == "" {
			return errNoMazeFile
		}
	}

	g, err := mazefile.Load(o.file)
	if err != nil {
		return err
	}

	cfg := solver.Config{
		Timeout:   o.timeout,
		MaxVisits: o.maxVisits,
		Logger:    slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})),
	}
	cfg.Logger.Debug("maze loaded", "file", o.file, "rows", g.Rows(), "cols", g.Cols(), "open", g.OpenCount())

	reports, err := solveAll(ctx, g, list, cfg, o.parallel)
	if err != nil {
		return err
	}

	pr := newPrinter(stdout, o)
	for i, rep := range reports {
		if i > 0 {
			pr.blank()
		}
		pr.report(g, rep)
	}

	return pr.err
}

// solveAll runs each strategy in turn so every execution time is measured
// on an otherwise idle process. parallel hands the list to solver.Compare.
func solveAll(ctx context.Context, g *gridgraph.Grid, list []solver.Strategy, cfg solver.Config, parallel bool) ([]solver.Report, error) {
	if parallel {
		return solver.Compare(ctx, g, list, cfg)
	}
	reports := make([]solver.Report, 0, len(list))
	for _, s := range list {
		rep, err := solver.Solve(ctx, g, s, cfg)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s, err)
		}
		reports = append(reports, rep)
	}

	return reports, nil
}
