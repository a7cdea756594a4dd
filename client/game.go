package client

import (
	"errors"
	"time"

	"pewpew/utils"
	"pewpew/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

// ErrQuit is returned from Update when the player asks to leave.
var ErrQuit = errors.New("quit")

type appState int

const (
	loading appState = iota
	inGame
)

type Game struct {
	*Assets
	cfg      *utils.Config
	state    appState
	world    *world.World
	renderer *Renderer
	frame    *world.Frame
	log      *zap.SugaredLogger

	start    time.Time
	lastTick time.Time
}

func NewGame(cfg *utils.Config, log *zap.SugaredLogger) *Game {
	worldConfig := cfg.World()
	worldConfig.Log = log
	return &Game{
		cfg:      cfg,
		state:    loading,
		world:    world.New(worldConfig),
		renderer: NewRenderer(),
		frame:    &world.Frame{},
		log:      log,
	}
}

func (g *Game) Update() error {
	switch g.state {
	case loading:
		return g.load()
	case inGame:
		return g.update()
	}
	return nil
}

func (g *Game) load() error {
	g.log.Info("Loading...")
	assets, err := LoadAssets()
	if err != nil {
		return err
	}
	g.Assets = assets

	if g.cfg.UI.Fullscreen {
		g.log.Info("Setting fullscreen...")
		ebiten.SetFullscreen(true)
	}

	g.start = time.Now()
	g.lastTick = g.start
	g.state = inGame
	return nil
}

func (g *Game) update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ErrQuit
	}

	now := time.Now()
	tick := world.Tick{
		Delta: float32(now.Sub(g.lastTick).Seconds()),
		Since: now.Sub(g.start),
	}
	g.lastTick = now
	g.frame = g.world.Update(tick, pressedIntents())

	g.debugDump()
	return nil
}

// debugDump logs transforms while Z is held and the camera placement when P
// is pressed.
func (g *Game) debugDump() {
	if ebiten.IsKeyPressed(ebiten.KeyZ) {
		for _, m := range g.frame.Moveables {
			g.log.Infow("moveable",
				"id", m.ID,
				"cell", m.Cell,
				"state", m.State,
				"translation", m.Translation,
				"rotation", m.Rotation,
			)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.log.Infow("camera",
			"translation", cameraTranslation,
			"rotation", cameraRotation,
		)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(clearColor)
	if g.state != inGame {
		return
	}

	g.renderer.RenderGrid(screen, g.Assets, g.world.Grid())
	for i := range g.frame.Bullets {
		g.renderer.RenderBullet(screen, g.Assets, &g.frame.Bullets[i])
	}
	for i := range g.frame.Moveables {
		g.renderer.RenderMoveable(screen, g.Assets, &g.frame.Moveables[i])
	}
	g.renderer.RenderDebug(screen, g.frame)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	g.renderer.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
