package world

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Transform is the spatial state a host renders for an entity.
type Transform struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Quat
}

func NewTransform(translation mgl32.Vec3) Transform {
	return Transform{
		Translation: translation,
		Rotation:    mgl32.QuatIdent(),
	}
}

// GridOffset projects the translation onto the grid plane: horizontal is Z and
// vertical is Y, leaving X for the projectile travel axis.
func (t *Transform) GridOffset() mgl32.Vec2 {
	return mgl32.Vec2{t.Translation.Z(), t.Translation.Y()}
}

func (t *Transform) SetGridOffset(offset mgl32.Vec2) {
	t.Translation[2] = offset.X()
	t.Translation[1] = offset.Y()
}

func lerp2(a, b mgl32.Vec2, t float32) mgl32.Vec2 {
	return a.Add(b.Sub(a).Mul(t))
}

func isNaN2(v mgl32.Vec2) bool {
	return math32.IsNaN(v.X()) || math32.IsNaN(v.Y())
}

func isNaNQuat(q mgl32.Quat) bool {
	return math32.IsNaN(q.W) || math32.IsNaN(q.V.X()) || math32.IsNaN(q.V.Y()) || math32.IsNaN(q.V.Z())
}

// angleBetween is the smallest rotation angle taking a to b.
func angleBetween(a, b mgl32.Quat) float32 {
	dot := math32.Abs(a.Dot(b))
	if dot > 1 {
		dot = 1
	}
	return 2 * math32.Acos(dot)
}

// sameGridUnit compares offsets after truncating them to whole units.
func sameGridUnit(a, b mgl32.Vec2) bool {
	return int32(a.X()) == int32(b.X()) && int32(a.Y()) == int32(b.Y())
}
