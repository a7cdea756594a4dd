package world

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// DefaultMoveDuration is how long, in seconds, one cell-to-cell move animates.
const DefaultMoveDuration float32 = 0.10

type MovementState int

const (
	Stopped MovementState = iota
	Queued
	Moving
)

func (s MovementState) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Queued:
		return "queued"
	case Moving:
		return "moving"
	}
	return "unknown"
}

// MovementInfo holds the interpolation parameters of an active move.
type MovementInfo struct {
	Elapsed  float32
	Duration float32

	StartOffset mgl32.Vec2
	EndOffset   mgl32.Vec2

	StartRotation mgl32.Quat
	EndRotation   mgl32.Quat

	StartCell Cell
	EndCell   Cell
}

// Movement is a tagged union: Direction is only meaningful while Queued and
// Info only while Moving.
type Movement struct {
	State     MovementState
	Direction Direction
	Info      MovementInfo
}

// Moveable is a grid entity's logical position plus its movement.
type Moveable struct {
	Cell     Cell
	Movement Movement
}

func NewMoveable(cell Cell) *Moveable {
	return &Moveable{Cell: cell}
}

// Queue accepts a move request only while the moveable is stopped, so at most
// one move is ever in flight.
func (m *Moveable) Queue(d Direction) bool {
	if m.Movement.State != Stopped {
		return false
	}
	m.Movement = Movement{State: Queued, Direction: d}
	return true
}

// Advance steps the movement by dt seconds, mutating t in place.
func (m *Moveable) Advance(g *Grid, t *Transform, dt, duration float32) {
	switch m.Movement.State {
	case Queued:
		m.start(g, t, duration)
	case Moving:
		m.step(t, dt)
	}
}

func (m *Moveable) start(g *Grid, t *Transform, duration float32) {
	end := Neighbor(m.Cell, m.Movement.Direction)
	if end == m.Cell {
		m.Movement = Movement{State: Stopped}
		return
	}
	m.Movement = Movement{
		State: Moving,
		Info: MovementInfo{
			Duration:      duration,
			StartOffset:   g.Offset(m.Cell),
			EndOffset:     g.Offset(end),
			StartRotation: t.Rotation,
			EndRotation:   t.Rotation,
			StartCell:     m.Cell,
			EndCell:       end,
		},
	}
}

func (m *Moveable) step(t *Transform, dt float32) {
	// Elapsed never decreases and never becomes NaN, so the move always ends.
	if math32.IsNaN(dt) || dt < 0 {
		dt = 0
	}
	info := &m.Movement.Info
	info.Elapsed += dt

	if info.Elapsed >= info.Duration {
		t.SetGridOffset(info.EndOffset)
		t.Rotation = info.EndRotation
		m.Cell = info.EndCell
		m.Movement = Movement{State: Stopped}
		return
	}

	progress := info.Elapsed / info.Duration
	offset := lerp2(info.StartOffset, info.EndOffset, progress)
	rotation := mgl32.QuatNlerp(info.StartRotation, info.EndRotation, progress)

	if !isNaN2(offset) {
		current := t.GridOffset()
		if current.Sub(info.EndOffset).Len() < current.Sub(offset).Len() {
			t.SetGridOffset(info.EndOffset)
			info.Elapsed = info.Duration
		} else {
			t.SetGridOffset(offset)
		}
	}

	// The logical cell settles as soon as the entity is visually there.
	if m.Cell != info.EndCell && sameGridUnit(t.GridOffset(), info.EndOffset) {
		m.Cell = info.EndCell
	}

	if !isNaNQuat(rotation) {
		if angleBetween(t.Rotation, info.EndRotation) < angleBetween(t.Rotation, rotation) {
			t.Rotation = info.EndRotation
		} else {
			t.Rotation = rotation
		}
	}
}
