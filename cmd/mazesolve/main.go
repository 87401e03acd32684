// Command mazesolve finds a route through a text maze file.
//
// The entrance is the first open cell of the top row and the exit the first
// open cell of the bottom row. '#' is a wall; any other character is open.
//
// Usage:
//
//	mazesolve [flags] [maze-file]
//
// With no file argument, the path is read from standard input after the
// prompt "Enter the Relative Path of the maze file: ".
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
