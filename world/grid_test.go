package world

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestGridOffsetsAreDistinct(t *testing.T) {
	g := NewGrid(3, 5)
	seen := make(map[mgl32.Vec2]Cell)
	for _, c := range Cells() {
		offset := g.Offset(c)
		if other, ok := seen[offset]; ok {
			t.Fatalf(`%v and %v share offset %v`, c, other, offset)
		}
		seen[offset] = c
	}
	if len(seen) != 9 {
		t.Fatalf(`len(offsets) = %d, want 9`, len(seen))
	}
}

func TestGridLayout(t *testing.T) {
	g := NewGrid(3, 5)
	tests := []struct {
		cell Cell
		want mgl32.Vec2
	}{
		{Center, mgl32.Vec2{0, 5}},
		{TopCenter, mgl32.Vec2{0, 8}},
		{BottomCenter, mgl32.Vec2{0, 2}},
		{Left, mgl32.Vec2{-3, 5}},
		{Right, mgl32.Vec2{3, 5}},
		{TopLeft, mgl32.Vec2{-3, 8}},
		{TopRight, mgl32.Vec2{3, 8}},
		{BottomLeft, mgl32.Vec2{-3, 2}},
		{BottomRight, mgl32.Vec2{3, 2}},
	}
	for _, tt := range tests {
		if got := g.Offset(tt.cell); got != tt.want {
			t.Fatalf(`Offset(%v) = %v, want %v`, tt.cell, got, tt.want)
		}
	}
}

func TestGridOffsetUnknownCell(t *testing.T) {
	g := NewGrid(3, 5)
	if got := g.Offset(Cell(42)); got != (mgl32.Vec2{}) {
		t.Fatalf(`Offset(42) = %v, want origin`, got)
	}
	if got := Cell(-1).String(); got != "unknown" {
		t.Fatalf(`Cell(-1).String() = %q, want "unknown"`, got)
	}
}

func TestNeighborStaysOnGrid(t *testing.T) {
	for _, c := range Cells() {
		for _, d := range []Direction{MoveUp, MoveDown, MoveLeft, MoveRight} {
			if got := Neighbor(c, d); !got.Valid() {
				t.Fatalf(`Neighbor(%v, %v) = %v, not a grid cell`, c, d, got)
			}
		}
	}
}

func TestEveryCellReachableFromCenter(t *testing.T) {
	reached := map[Cell]bool{Center: true}
	queue := []Cell{Center}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, d := range []Direction{MoveUp, MoveDown, MoveLeft, MoveRight} {
			next := Neighbor(c, d)
			if !reached[next] {
				reached[next] = true
				queue = append(queue, next)
			}
		}
	}
	for _, c := range Cells() {
		if !reached[c] {
			t.Fatalf(`%v is not reachable from center`, c)
		}
	}
}

// TestNeighborMovesOneStep checks that every allowed move lands on a cell
// one grid step away along the direction of travel.
func TestNeighborMovesOneStep(t *testing.T) {
	g := NewGrid(3, 5)
	step := map[Direction]mgl32.Vec2{
		MoveUp:    {0, 3},
		MoveDown:  {0, -3},
		MoveLeft:  {-3, 0},
		MoveRight: {3, 0},
	}
	for _, c := range Cells() {
		for d, delta := range step {
			next := Neighbor(c, d)
			if next == c {
				continue
			}
			if got, want := g.Offset(next), g.Offset(c).Add(delta); got != want {
				t.Fatalf(`Neighbor(%v, %v) = %v at %v, want a cell at %v`, c, d, next, got, want)
			}
		}
	}
}
