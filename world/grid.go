package world

import "github.com/go-gl/mathgl/mgl32"

// Cell is one of the nine discrete positions on the 3x3 grid.
type Cell int

const (
	TopLeft Cell = iota
	TopCenter
	TopRight
	Left
	Center
	Right
	BottomLeft
	BottomCenter
	BottomRight

	cellCount
)

var cellNames = [cellCount]string{
	"top-left",
	"top-center",
	"top-right",
	"left",
	"center",
	"right",
	"bottom-left",
	"bottom-center",
	"bottom-right",
}

func (c Cell) String() string {
	if !c.Valid() {
		return "unknown"
	}
	return cellNames[c]
}

func (c Cell) Valid() bool {
	return c >= 0 && c < cellCount
}

// column and row place a cell on the grid, -1..1 from the center, rows growing upwards.
func (c Cell) column() int {
	return int(c)%3 - 1
}

func (c Cell) row() int {
	return 1 - int(c)/3
}

// Cells lists every grid cell in declaration order.
func Cells() []Cell {
	cells := make([]Cell, 0, cellCount)
	for c := Cell(0); c < cellCount; c++ {
		cells = append(cells, c)
	}
	return cells
}

// Grid maps cells to their 2-D offset (horizontal, vertical). It is built once
// and never mutated, so a single Grid can be shared by every moveable.
type Grid struct {
	offsets [cellCount]mgl32.Vec2
}

// NewGrid lays the cells out space units apart around a center row that sits
// at the given height.
func NewGrid(space, center float32) *Grid {
	g := &Grid{}
	for _, c := range Cells() {
		g.offsets[c] = mgl32.Vec2{
			float32(c.column()) * space,
			center + float32(c.row())*space,
		}
	}
	return g
}

// Offset returns the offset of the cell. Unknown cells map to the origin.
func (g *Grid) Offset(c Cell) mgl32.Vec2 {
	if !c.Valid() {
		return mgl32.Vec2{}
	}
	return g.offsets[c]
}
