// File: gridgraph/breach_test.go
package gridgraph

import (
	"errors"
	"reflect"
	"testing"
)

// TestBreachWalls_SingleWall tests a 3×3 maze whose middle row is solid.
//
//	. . .
//	# # #
//	. . .
//
// Expected: one wall, straight down column 0.
func TestBreachWalls_SingleWall(t *testing.T) {
	g := MustGrid(
		"...",
		"###",
		"...",
	)
	path, cost, err := g.BreachWalls(Coord{0, 0}, Coord{2, 0})
	if err != nil {
		t.Fatalf("BreachWalls error: %v", err)
	}
	if cost != 1 {
		t.Errorf("cost = %d; want 1", cost)
	}
	want := []Coord{{0, 0}, {1, 0}, {2, 0}}
	if !reflect.DeepEqual(path, want) {
		t.Errorf("path = %v; want %v", path, want)
	}
}

// TestBreachWalls_AlreadyConnected expects zero cost when an open walk exists.
func TestBreachWalls_AlreadyConnected(t *testing.T) {
	g := MustGrid(
		".#.",
		"...",
	)
	path, cost, err := g.BreachWalls(Coord{0, 0}, Coord{0, 2})
	if err != nil {
		t.Fatalf("BreachWalls error: %v", err)
	}
	if cost != 0 {
		t.Errorf("cost = %d; want 0", cost)
	}
	if len(path) != 5 {
		t.Errorf("path length = %d; want 5 (%v)", len(path), path)
	}
	for _, c := range path {
		if !g.IsOpen(c) {
			t.Errorf("zero-cost path crosses wall at %v", c)
		}
	}
}

// TestBreachWalls_SameCell covers start == goal, open and walled.
func TestBreachWalls_SameCell(t *testing.T) {
	path, cost, err := MustGrid(".").BreachWalls(Coord{}, Coord{})
	if err != nil || cost != 0 || !reflect.DeepEqual(path, []Coord{{0, 0}}) {
		t.Errorf("open cell: path=%v cost=%d err=%v", path, cost, err)
	}
	_, cost, err = MustGrid("#").BreachWalls(Coord{}, Coord{})
	if err != nil || cost != 1 {
		t.Errorf("wall cell: cost=%d err=%v; want 1, nil", cost, err)
	}
}

// TestBreachWalls_OutOfBounds ensures invalid coordinates yield ErrOutOfBounds.
func TestBreachWalls_OutOfBounds(t *testing.T) {
	g := MustGrid("..")
	if _, _, err := g.BreachWalls(Coord{-1, 0}, Coord{0, 1}); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("start oob: got %v; want ErrOutOfBounds", err)
	}
	if _, _, err := g.BreachWalls(Coord{0, 0}, Coord{0, 2}); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("goal oob: got %v; want ErrOutOfBounds", err)
	}
}
