package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/labyrinth/bfs"
	"github.com/katalvlaran/labyrinth/gridgraph"
	"github.com/katalvlaran/labyrinth/search"
)

type coord = gridgraph.Coord

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	g := gridgraph.MustGrid("..")
	if _, err := bfs.BFS(nil, coord{}, coord{}); !errors.Is(err, search.ErrNilGrid) {
		t.Errorf("nil grid: want ErrNilGrid, got %v", err)
	}
	if _, err := bfs.BFS(g, coord{Row: 0, Col: 0}, coord{Row: 0, Col: 5}); !errors.Is(err, search.ErrEndpointOutOfBounds) {
		t.Errorf("goal oob: want ErrEndpointOutOfBounds, got %v", err)
	}
	if _, err := bfs.BFS(g, coord{}, coord{Row: 0, Col: 1}, search.WithMaxVisits(-2)); !errors.Is(err, search.ErrOptionViolation) {
		t.Errorf("negative cap: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_Corridor covers a single vertical corridor in a 3×3 grid.
func TestBFS_Corridor(t *testing.T) {
	g := gridgraph.MustGrid(
		"#.#",
		"#.#",
		"#.#",
	)
	res, err := bfs.BFS(g, coord{Row: 0, Col: 1}, coord{Row: 2, Col: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []coord{{0, 1}, {1, 1}, {2, 1}}
	if !res.Found || !reflect.DeepEqual(res.Path, want) {
		t.Errorf("Path = %v (found=%v); want %v", res.Path, res.Found, want)
	}
	if res.Visited != 3 {
		t.Errorf("Visited = %d; want 3", res.Visited)
	}
}

// TestBFS_CheckerboardUnreachable: the start's only neighbors are walls.
func TestBFS_CheckerboardUnreachable(t *testing.T) {
	g := gridgraph.MustGrid(
		"#.#",
		".#.",
		"#.#",
	)
	res, err := bfs.BFS(g, coord{Row: 0, Col: 1}, coord{Row: 2, Col: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Found || res.Path != nil {
		t.Errorf("expected no path, got %v", res.Path)
	}
	if res.Visited != 1 {
		t.Errorf("Visited = %d; want 1", res.Visited)
	}
}

// TestBFS_OpenRoomOrder pins the tie-break among equal-length paths.
func TestBFS_OpenRoomOrder(t *testing.T) {
	g := gridgraph.MustGrid(
		"...",
		"...",
		"...",
	)
	res, err := bfs.BFS(g, coord{Row: 0, Col: 0}, coord{Row: 2, Col: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []coord{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {2, 2}}
	if !reflect.DeepEqual(res.Path, want) {
		t.Errorf("Path = %v; want %v", res.Path, want)
	}
	if res.Visited != 9 {
		t.Errorf("Visited = %d; want 9", res.Visited)
	}
	if res.Steps() != 4 {
		t.Errorf("Steps = %d; want 4", res.Steps())
	}
}

// TestBFS_SideRoom counts cells marked but never dequeued.
//
//	. # # # #
//	. . . . .
//	. # # # #
func TestBFS_SideRoom(t *testing.T) {
	g := gridgraph.MustGrid(
		".####",
		".....",
		".####",
	)
	res, err := bfs.BFS(g, coord{Row: 0, Col: 0}, coord{Row: 2, Col: 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []coord{{0, 0}, {1, 0}, {2, 0}}; !reflect.DeepEqual(res.Path, want) {
		t.Errorf("Path = %v; want %v", res.Path, want)
	}
	// (1,1) was enqueued alongside (2,0)
	if res.Visited != 4 {
		t.Errorf("Visited = %d; want 4", res.Visited)
	}
}

// TestBFS_ClosedInterior: the goal is sealed inside a ring of walls, so the
// whole reachable region is marked before giving up.
func TestBFS_ClosedInterior(t *testing.T) {
	g := gridgraph.MustGrid(
		".....",
		".###.",
		".#.#.",
		".###.",
		".....",
	)
	start := coord{Row: 0, Col: 0}
	res, err := bfs.BFS(g, start, coord{Row: 2, Col: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Found {
		t.Fatalf("expected no path, got %v", res.Path)
	}
	if want := g.Reachable(start); res.Visited != want {
		t.Errorf("Visited = %d; want %d", res.Visited, want)
	}
}

// TestBFS_StartIsGoal yields a single-cell path.
func TestBFS_StartIsGoal(t *testing.T) {
	g := gridgraph.MustGrid("..", "..")
	c := coord{Row: 1, Col: 1}
	res, err := bfs.BFS(g, c, c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Found || !reflect.DeepEqual(res.Path, []coord{c}) {
		t.Errorf("Path = %v; want [%v]", res.Path, c)
	}
	if res.Visited < 1 {
		t.Errorf("Visited = %d; want >= 1", res.Visited)
	}
}

// TestBFS_BlockedEndpoint reports walled endpoints as not found.
func TestBFS_BlockedEndpoint(t *testing.T) {
	g := gridgraph.MustGrid("#.", "..")
	res, err := bfs.BFS(g, coord{Row: 0, Col: 0}, coord{Row: 1, Col: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Found || res.Visited != 0 {
		t.Errorf("got %+v; want NotFound with 0 visited", res)
	}
	res, _ = bfs.BFS(g, coord{Row: 1, Col: 1}, coord{Row: 0, Col: 0})
	if res.Found {
		t.Errorf("walled goal: got %+v; want NotFound", res)
	}
}

// TestBFS_Hooks checks OnEnqueue/OnVisit ordering and abort propagation.
func TestBFS_Hooks(t *testing.T) {
	g := gridgraph.MustGrid("...")
	var enq, vis []coord
	_, err := bfs.BFS(g, coord{Row: 0, Col: 0}, coord{Row: 0, Col: 2},
		search.WithOnEnqueue(func(c coord) { enq = append(enq, c) }),
		search.WithOnVisit(func(c coord) error { vis = append(vis, c); return nil }),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []coord{{0, 0}, {0, 1}, {0, 2}}
	if !reflect.DeepEqual(enq, want) || !reflect.DeepEqual(vis, want) {
		t.Errorf("enqueue=%v visit=%v; want %v for both", enq, vis, want)
	}

	stop := errors.New("stop")
	_, err = bfs.BFS(g, coord{Row: 0, Col: 0}, coord{Row: 0, Col: 2},
		search.WithOnVisit(func(c coord) error {
			if c.Col == 1 {
				return stop
			}
			return nil
		}),
	)
	if !errors.Is(err, stop) {
		t.Errorf("OnVisit abort: want %v, got %v", stop, err)
	}
}

// TestBFS_ContextCancel aborts immediately on a cancelled context.
func TestBFS_ContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := gridgraph.MustGrid("...")
	_, err := bfs.BFS(g, coord{}, coord{Row: 0, Col: 2}, search.WithContext(ctx))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}

// TestBFS_MaxVisits gives up after the configured number of expansions.
func TestBFS_MaxVisits(t *testing.T) {
	g := gridgraph.MustGrid(".....")
	res, err := bfs.BFS(g, coord{}, coord{Row: 0, Col: 4}, search.WithMaxVisits(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Found {
		t.Errorf("expected cap to stop search, got %v", res.Path)
	}
	if !res.Truncated {
		t.Errorf("Truncated = false; want true")
	}
	// two expansions mark (0,0), (0,1) and (0,2)
	if res.Visited != 3 {
		t.Errorf("Visited = %d; want 3", res.Visited)
	}
}

// TestBFS_MaxVisitsExhausted hits the end of the frontier before the cap,
// which is a plain no-path result.
func TestBFS_MaxVisitsExhausted(t *testing.T) {
	g := gridgraph.MustGrid("..#.")
	res, err := bfs.BFS(g, coord{}, coord{Row: 0, Col: 3}, search.WithMaxVisits(5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Found || res.Truncated {
		t.Errorf("got Found=%v Truncated=%v; want both false", res.Found, res.Truncated)
	}
	if res.Visited != 2 {
		t.Errorf("Visited = %d; want 2", res.Visited)
	}
}

// TestBFS_Idempotent re-runs the same query and expects identical output.
func TestBFS_Idempotent(t *testing.T) {
	g := gridgraph.MustGrid(
		"..#...",
		"#...#.",
		"..#...",
		".##.#.",
		"......",
	)
	start, goal := coord{Row: 0, Col: 0}, coord{Row: 4, Col: 5}
	first, err := bfs.BFS(g, start, goal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := search.ValidatePath(g, start, goal, first.Path); err != nil {
		t.Fatalf("invalid path: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, _ := bfs.BFS(g, start, goal)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs: %+v vs %+v", i, again, first)
		}
	}
}
