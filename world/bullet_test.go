package world

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestBulletSweptPastDespawnPoint(t *testing.T) {
	b := NewBullets(DefaultBulletSpeed, DefaultDespawnPoint)
	ID := b.Spawn(mgl32.Vec3{}, mgl32.Vec3{1, 0, 0})

	b.Advance(5.5)
	if removed := b.Sweep(); len(removed) != 0 {
		t.Fatalf(`Sweep() at x=%v removed %v`, b.bullets.Front().Value.Translation.X(), removed)
	}

	b.Advance(0.06)
	bullet, ok := b.Get(ID)
	if !ok {
		t.Fatalf(`bullet %s missing before sweep`, ID)
	}
	if x := bullet.Translation.X(); x <= 500 {
		t.Fatalf(`x = %v, want past 500`, x)
	}
	removed := b.Sweep()
	if len(removed) != 1 || removed[0] != ID {
		t.Fatalf(`Sweep() = %v, want [%s]`, removed, ID)
	}
	if b.Len() != 0 {
		t.Fatalf(`Len() = %d after sweep, want 0`, b.Len())
	}
}

func TestBulletSingleLongStep(t *testing.T) {
	b := NewBullets(DefaultBulletSpeed, DefaultDespawnPoint)
	b.Spawn(mgl32.Vec3{}, mgl32.Vec3{1, 0, 0})
	b.Advance(5.56)
	if removed := b.Sweep(); len(removed) != 1 {
		t.Fatalf(`Sweep() = %v after 5.56s, want one bullet removed`, removed)
	}
}

func TestBulletDirectionNormalized(t *testing.T) {
	b := NewBullets(10, DefaultDespawnPoint)
	ID := b.Spawn(mgl32.Vec3{0, 5, 3}, mgl32.Vec3{4, 0, 0})
	b.Advance(1)
	bullet, _ := b.Get(ID)
	if want := (mgl32.Vec3{10, 5, 3}); !bullet.Translation.ApproxEqual(want) {
		t.Fatalf(`translation = %v, want %v`, bullet.Translation, want)
	}
}

func TestBulletSweepKeepsOrder(t *testing.T) {
	b := NewBullets(DefaultBulletSpeed, DefaultDespawnPoint)
	first := b.Spawn(mgl32.Vec3{}, mgl32.Vec3{1, 0, 0})
	gone := b.Spawn(mgl32.Vec3{600, 0, 0}, mgl32.Vec3{1, 0, 0})
	last := b.Spawn(mgl32.Vec3{}, mgl32.Vec3{1, 0, 0})

	if removed := b.Sweep(); len(removed) != 1 || removed[0] != gone {
		t.Fatalf(`Sweep() = %v, want [%s]`, removed, gone)
	}
	var order []string
	b.ForEach(func(bullet *Bullet) {
		order = append(order, bullet.ID)
	})
	if len(order) != 2 || order[0] != first || order[1] != last {
		t.Fatalf(`order = %v, want [%s %s]`, order, first, last)
	}
}
