package world

import (
	"time"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/segmentio/ksuid"
	"go.uber.org/zap"
)

type Config struct {
	GridSpace  float32
	GridCenter float32

	MoveDuration float32

	BulletSpeed     float32
	DespawnPoint    float32
	BulletDirection mgl32.Vec3

	FireCooldown time.Duration

	// Log receives debug output for state transitions. Nil discards it.
	Log *zap.SugaredLogger
}

func DefaultConfig() Config {
	return Config{
		GridSpace:       3.0,
		GridCenter:      5.0,
		MoveDuration:    DefaultMoveDuration,
		BulletSpeed:     DefaultBulletSpeed,
		DespawnPoint:    DefaultDespawnPoint,
		BulletDirection: mgl32.Vec3{1, 0, 0},
		FireCooldown:    DefaultFireCooldown,
	}
}

// Entity is a grid-bound moveable together with the transform it drives.
type Entity struct {
	ID string
	Moveable
	Transform
}

type World struct {
	grid      *Grid
	moveables *orderedmap.OrderedMap[string, *Entity]
	bullets   *Bullets
	latch     *FireLatch
	playerID  string
	tick      int64

	moveDuration    float32
	bulletDirection mgl32.Vec3
	log             *zap.SugaredLogger
}

// New builds a world with the player standing on the center cell.
func New(cfg Config) *World {
	log := cfg.Log
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	w := &World{
		grid:            NewGrid(cfg.GridSpace, cfg.GridCenter),
		moveables:       orderedmap.NewOrderedMap[string, *Entity](),
		bullets:         NewBullets(cfg.BulletSpeed, cfg.DespawnPoint),
		latch:           NewFireLatch(cfg.FireCooldown),
		moveDuration:    cfg.MoveDuration,
		bulletDirection: cfg.BulletDirection,
		log:             log,
	}
	w.playerID = w.AddMoveable(Center)
	return w
}

// AddMoveable spawns a grid entity on cell and returns its ID.
func (w *World) AddMoveable(cell Cell) string {
	offset := w.grid.Offset(cell)
	e := &Entity{
		ID:        ksuid.New().String(),
		Moveable:  Moveable{Cell: cell},
		Transform: NewTransform(mgl32.Vec3{0, offset.Y(), offset.X()}),
	}
	w.moveables.Set(e.ID, e)
	w.log.Debugw("moveable spawned", "id", e.ID, "cell", cell)
	return e.ID
}

func (w *World) Entity(ID string) *Entity {
	e, _ := w.moveables.Get(ID)
	return e
}

func (w *World) Player() string {
	return w.playerID
}

func (w *World) Grid() *Grid {
	return w.grid
}

func (w *World) Bullets() *Bullets {
	return w.bullets
}

func (w *World) CurrentTick() int64 {
	return w.tick
}

func (w *World) ForEachEntity(callback func(*Entity)) {
	for el := w.moveables.Front(); el != nil; el = el.Next() {
		callback(el.Value)
	}
}
