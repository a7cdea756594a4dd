package client

import (
	"fmt"
	"image/color"

	"pewpew/world"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var (
	// The camera sits behind the grid on the X axis, looking down +X where
	// the bullets fly.
	cameraTranslation = mgl32.Vec3{-16, 5, 0}
	cameraRotation    = mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{0, -0.9905375, 0})

	clearColor = color.RGBA{0x21, 0x12, 0x3d, 0xff}
)

const focalLength = 400

type Renderer struct {
	width, height int
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Layout(width, height int) {
	r.width, r.height = width, height
}

// project maps a world position to screen coordinates and a scale factor.
// Points at or behind the camera are not visible.
func (r *Renderer) project(p mgl32.Vec3) (x, y, scale float64, ok bool) {
	depth := float64(p.X() - cameraTranslation.X())
	if depth <= 0 {
		return 0, 0, 0, false
	}
	scale = focalLength / depth
	x = float64(r.width)/2 + float64(p.Z()-cameraTranslation.Z())*scale
	y = float64(r.height)/2 - float64(p.Y()-cameraTranslation.Y())*scale
	return x, y, scale, true
}

func (r *Renderer) drawAt(screen, image *ebiten.Image, p mgl32.Vec3, worldSize float64) {
	x, y, scale, ok := r.project(p)
	if !ok {
		return
	}
	w, h := image.Size()
	size := worldSize * scale / float64(w)
	opt := &ebiten.DrawImageOptions{}
	opt.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	opt.GeoM.Scale(size, size)
	opt.GeoM.Translate(x, y)
	opt.Filter = ebiten.FilterLinear
	screen.DrawImage(image, opt)
}

func (r *Renderer) RenderGrid(screen *ebiten.Image, a *Assets, g *world.Grid) {
	image, err := a.Image("cell")
	if err != nil {
		return
	}
	for _, c := range world.Cells() {
		offset := g.Offset(c)
		r.drawAt(screen, image, mgl32.Vec3{0, offset.Y(), offset.X()}, 0.2)
	}
}

func (r *Renderer) RenderMoveable(screen *ebiten.Image, a *Assets, m *world.MoveableUpdate) {
	image, err := a.Image("player")
	if err != nil {
		return
	}
	r.drawAt(screen, image, m.Translation, 1.0)
}

func (r *Renderer) RenderBullet(screen *ebiten.Image, a *Assets, b *world.BulletUpdate) {
	image, err := a.Image("bullet")
	if err != nil {
		return
	}
	r.drawAt(screen, image, b.Translation, 0.3)
}

func debugString(frame *world.Frame) string {
	return fmt.Sprintf("TPS: %0.02f, FPS: %0.02f\ntick: %d, bullets: %d",
		ebiten.CurrentTPS(), ebiten.CurrentFPS(), frame.Tick, len(frame.Bullets))
}

func (r *Renderer) RenderDebug(screen *ebiten.Image, frame *world.Frame) {
	ebitenutil.DebugPrint(screen, debugString(frame))
}
