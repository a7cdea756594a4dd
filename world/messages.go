package world

import "github.com/go-gl/mathgl/mgl32"

// Frame is everything the host needs after one tick: the transforms to apply
// and the entities to create or destroy.
type Frame struct {
	Tick      int64
	Moveables []MoveableUpdate
	Bullets   []BulletUpdate
	Spawned   []Shot
	Despawned []string
}

type MoveableUpdate struct {
	ID    string
	Cell  Cell
	State MovementState
	Transform
}

type BulletUpdate struct {
	ID          string
	Translation mgl32.Vec3
}

// Shot is a spawn request produced by an accepted fire event.
type Shot struct {
	ID        string
	Source    string
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

func (f *Frame) Moveable(ID string) (MoveableUpdate, bool) {
	for _, m := range f.Moveables {
		if m.ID == ID {
			return m, true
		}
	}
	return MoveableUpdate{}, false
}
