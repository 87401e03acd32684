package main

import (
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/katalvlaran/labyrinth/gridgraph"
	"github.com/katalvlaran/labyrinth/mazefile"
	"github.com/katalvlaran/labyrinth/solver"
)

// printer writes run reports, keeping the first write error.
type printer struct {
	w     io.Writer
	p     *message.Printer
	draw  bool
	quiet bool
	limit int
	err   error
}

func newPrinter(w io.Writer, o options) *printer {
	return &printer{
		w:     w,
		p:     message.NewPrinter(language.English),
		draw:  o.draw,
		quiet: o.quiet,
		limit: o.maxVisits,
	}
}

func (pr *printer) printf(format string, args ...any) {
	if pr.err != nil {
		return
	}
	_, pr.err = pr.p.Fprintf(pr.w, format, args...)
}

func (pr *printer) blank() { pr.printf("\n") }

// report prints one strategy outcome. Counts use thousands separators.
func (pr *printer) report(g *gridgraph.Grid, rep solver.Report) {
	res := rep.Result
	pr.printf("Strategy: %s\n", rep.Strategy)
	pr.printf("Time of execution: %.6f seconds\n", rep.Elapsed.Seconds())

	if res.Truncated {
		pr.printf("Search stopped after %d expansions without reaching the goal (raise -max-visits)\n", pr.limit)
		pr.printf("The number of nodes explored: %d\n", res.Visited)
		return
	}
	if !res.Found {
		pr.printf("No path is possible for the start and goal states entered\n")
		pr.printf("The number of nodes explored: %d\n", res.Visited)
		walk, walls, err := g.BreachWalls(rep.Start, rep.Goal)
		if err != nil {
			pr.printf("Walls to remove: unknown (%v)\n", err)
			return
		}
		pr.printf("Walls to remove for a path: %d\n", walls)
		if pr.draw {
			pr.printf("%s", mazefile.Format(g, walk))
		}
		return
	}

	pr.printf("Number of steps in the path: %d\n", res.Steps())
	pr.printf("The number of nodes explored: %d\n", res.Visited)
	if !pr.quiet {
		pr.printf("%v\n", res.Path)
	}
	if pr.draw {
		pr.printf("%s", mazefile.Format(g, res.Path))
	}
}
