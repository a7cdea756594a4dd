package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"time"

	"pewpew/world"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pelletier/go-toml/v2"
)

type PlayerConfig struct {
	MoveDuration float64 `toml:"move_duration"`
	GridSpace    float64 `toml:"grid_space"`
	GridCenter   float64 `toml:"grid_center"`
}

type BulletConfig struct {
	Speed        float64   `toml:"speed"`
	DespawnPoint float64   `toml:"despawn_point"`
	Direction    []float64 `toml:"direction"`
}

type FireConfig struct {
	CooldownMS int64 `toml:"cooldown_ms"`
}

type ResolutionConfig struct {
	X int `toml:"x"`
	Y int `toml:"y"`
}

type UIConfig struct {
	Resolution ResolutionConfig `toml:"resolution"`
	Fullscreen bool             `toml:"fullscreen"`
	Title      string           `toml:"title"`
}

type ServerConfig struct {
	Address string `toml:"address"`
	TickMS  int64  `toml:"tick_ms"`
	History int    `toml:"history"`
}

type LogConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type DebugConfig struct {
	StatsView     bool   `toml:"statsview"`
	StatsViewAddr string `toml:"statsview_addr"`
}

type SentryConfig struct {
	DSN string `toml:"dsn"`
}

type MathConfig struct {
	Float64EqualityThreshold float64 `toml:"float_equality_threshold"`
}

type Config struct {
	Player PlayerConfig `toml:"player"`
	Bullet BulletConfig `toml:"bullet"`
	Fire   FireConfig   `toml:"fire"`
	UI     UIConfig     `toml:"ui"`
	Server ServerConfig `toml:"server"`
	Log    LogConfig    `toml:"log"`
	Debug  DebugConfig  `toml:"debug"`
	Sentry SentryConfig `toml:"sentry"`
	Math   MathConfig   `toml:"math"`
}

func DefaultConfig() *Config {
	return &Config{
		Player: PlayerConfig{
			MoveDuration: 0.10,
			GridSpace:    3.0,
			GridCenter:   5.0,
		},
		Bullet: BulletConfig{
			Speed:        90.0,
			DespawnPoint: 500.0,
			Direction:    []float64{1, 0, 0},
		},
		Fire: FireConfig{
			CooldownMS: 100,
		},
		UI: UIConfig{
			Resolution: ResolutionConfig{X: 800, Y: 600},
			Title:      "pewpewpew",
		},
		Server: ServerConfig{
			Address: "localhost:4242",
			TickMS:  17,
			History: 32,
		},
		Log: LogConfig{
			Level: "info",
		},
		Debug: DebugConfig{
			StatsViewAddr: "localhost:18066",
		},
		Math: MathConfig{
			Float64EqualityThreshold: 1e-6,
		},
	}
}

// ReadTOML reads fileName over the defaults, so a config file only needs the
// keys it changes.
func ReadTOML(fileName string) (*Config, error) {
	file, err := os.ReadFile(fileName)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(file, config); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", fileName, err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", fileName, err)
	}
	return config, nil
}

// LoadConfig is ReadTOML, except a missing file yields the defaults.
func LoadConfig(fileName string) (*Config, error) {
	config, err := ReadTOML(fileName)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return config, err
}

func (c *Config) Validate() error {
	switch {
	case c.Player.MoveDuration <= 0:
		return fmt.Errorf("player.move_duration must be positive, got %v", c.Player.MoveDuration)
	case c.Player.GridSpace <= 0:
		return fmt.Errorf("player.grid_space must be positive, got %v", c.Player.GridSpace)
	case c.Fire.CooldownMS < 0:
		return fmt.Errorf("fire.cooldown_ms must not be negative, got %d", c.Fire.CooldownMS)
	case len(c.Bullet.Direction) != 3:
		return fmt.Errorf("bullet.direction needs 3 components, got %d", len(c.Bullet.Direction))
	}
	return nil
}

// World translates the config into the simulation's settings.
func (c *Config) World() world.Config {
	cfg := world.DefaultConfig()
	cfg.GridSpace = float32(c.Player.GridSpace)
	cfg.GridCenter = float32(c.Player.GridCenter)
	cfg.MoveDuration = float32(c.Player.MoveDuration)
	cfg.BulletSpeed = float32(c.Bullet.Speed)
	cfg.DespawnPoint = float32(c.Bullet.DespawnPoint)
	if len(c.Bullet.Direction) == 3 {
		cfg.BulletDirection = mgl32.Vec3{
			float32(c.Bullet.Direction[0]),
			float32(c.Bullet.Direction[1]),
			float32(c.Bullet.Direction[2]),
		}
	}
	cfg.FireCooldown = time.Duration(c.Fire.CooldownMS) * time.Millisecond
	return cfg
}

func (c *Config) TickInterval() time.Duration {
	if c.Server.TickMS <= 0 {
		return 17 * time.Millisecond
	}
	return time.Duration(c.Server.TickMS) * time.Millisecond
}

func AlmostEqual(a, b, threshold float64) bool {
	return math.Abs(a-b) <= threshold
}
