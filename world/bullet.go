package world

import (
	"github.com/chewxy/math32"
	"github.com/elliotchance/orderedmap/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/segmentio/ksuid"
)

const (
	DefaultBulletSpeed  float32 = 90.0
	DefaultDespawnPoint float32 = 500.0
)

type Bullet struct {
	ID        string
	Direction mgl32.Vec3
	Transform
}

// Bullets is the projectile arena. Iteration follows spawn order.
type Bullets struct {
	Speed        float32
	DespawnPoint float32
	bullets      *orderedmap.OrderedMap[string, *Bullet]
}

func NewBullets(speed, despawnPoint float32) *Bullets {
	return &Bullets{
		Speed:        speed,
		DespawnPoint: despawnPoint,
		bullets:      orderedmap.NewOrderedMap[string, *Bullet](),
	}
}

// Spawn adds a bullet at origin travelling along direction, which is
// normalized. A zero direction leaves the bullet in place.
func (b *Bullets) Spawn(origin, direction mgl32.Vec3) string {
	if direction.Len() != 0 {
		direction = direction.Normalize()
	}
	bullet := &Bullet{
		ID:        ksuid.New().String(),
		Direction: direction,
		Transform: NewTransform(origin),
	}
	b.bullets.Set(bullet.ID, bullet)
	return bullet.ID
}

// Advance moves every bullet dt seconds along its direction. A NaN or
// negative dt moves nothing.
func (b *Bullets) Advance(dt float32) {
	if math32.IsNaN(dt) || dt < 0 {
		return
	}
	for el := b.bullets.Front(); el != nil; el = el.Next() {
		bullet := el.Value
		bullet.Translation = bullet.Translation.Add(bullet.Direction.Mul(b.Speed * dt))
	}
}

// Sweep removes every bullet past the despawn point and returns their IDs.
func (b *Bullets) Sweep() []string {
	var removed []string
	for el := b.bullets.Front(); el != nil; el = el.Next() {
		if el.Value.Translation.X() > b.DespawnPoint {
			removed = append(removed, el.Key)
		}
	}
	for _, ID := range removed {
		b.bullets.Delete(ID)
	}
	return removed
}

func (b *Bullets) Get(ID string) (*Bullet, bool) {
	return b.bullets.Get(ID)
}

func (b *Bullets) Len() int {
	return b.bullets.Len()
}

func (b *Bullets) ForEach(callback func(*Bullet)) {
	for el := b.bullets.Front(); el != nil; el = el.Next() {
		callback(el.Value)
	}
}
