package utils

import (
	"regexp"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// TestReadTOML calls ReadTOML with a known test config, checking
// for a valid return value for each key
func TestReadTOML(t *testing.T) {
	cfg, err := ReadTOML("testdata/testConf.toml")
	if err != nil {
		t.Fatal(err)
	}

	var wantRegex = regexp.MustCompile("test")
	if !wantRegex.MatchString(cfg.UI.Title) {
		t.Fatalf(`UI.Title = %q, want match for %#q`, cfg.UI.Title, wantRegex)
	}

	var wantFloat = 0.25
	if !AlmostEqual(cfg.Player.MoveDuration, wantFloat, cfg.Math.Float64EqualityThreshold) {
		t.Fatalf(`Player.MoveDuration = %v, want match for %#v`, cfg.Player.MoveDuration, wantFloat)
	}

	wantFloat = 120
	if !AlmostEqual(cfg.Bullet.Speed, wantFloat, cfg.Math.Float64EqualityThreshold) {
		t.Fatalf(`Bullet.Speed = %v, want match for %#v`, cfg.Bullet.Speed, wantFloat)
	}

	var wantInt = 1
	if cfg.UI.Resolution.X != wantInt || cfg.UI.Resolution.Y != wantInt {
		t.Fatalf(`UI.Resolution = %+v, want match for %#v`, cfg.UI.Resolution, wantInt)
	}

	if !cfg.UI.Fullscreen {
		t.Fatalf(`UI.Fullscreen = false, want true`)
	}
	if cfg.TickInterval() != 20*time.Millisecond {
		t.Fatalf(`TickInterval() = %v, want 20ms`, cfg.TickInterval())
	}
}

func TestReadTOMLKeepsDefaults(t *testing.T) {
	cfg, err := ReadTOML("testdata/testConf.toml")
	if err != nil {
		t.Fatal(err)
	}
	defaults := DefaultConfig()
	if cfg.Player.GridCenter != defaults.Player.GridCenter {
		t.Fatalf(`Player.GridCenter = %v, want default %v`, cfg.Player.GridCenter, defaults.Player.GridCenter)
	}
	if cfg.Bullet.DespawnPoint != defaults.Bullet.DespawnPoint {
		t.Fatalf(`Bullet.DespawnPoint = %v, want default %v`, cfg.Bullet.DespawnPoint, defaults.Bullet.DespawnPoint)
	}
	if cfg.Server.Address != defaults.Server.Address {
		t.Fatalf(`Server.Address = %q, want default %q`, cfg.Server.Address, defaults.Server.Address)
	}
}

func TestReadTOMLErrors(t *testing.T) {
	if _, err := ReadTOML("testdata/missing.toml"); err == nil {
		t.Fatalf(`ReadTOML(missing) err = nil`)
	}
	if _, err := ReadTOML("testdata/badConf.toml"); err == nil {
		t.Fatalf(`ReadTOML(badConf) err = nil, want a validation error`)
	}
}

func TestConfigWorld(t *testing.T) {
	cfg, err := ReadTOML("testdata/testConf.toml")
	if err != nil {
		t.Fatal(err)
	}
	w := cfg.World()
	if w.FireCooldown != 250*time.Millisecond {
		t.Fatalf(`FireCooldown = %v, want 250ms`, w.FireCooldown)
	}
	if w.BulletDirection != (mgl32.Vec3{0, 1, 0}) {
		t.Fatalf(`BulletDirection = %v, want (0, 1, 0)`, w.BulletDirection)
	}
	if w.GridSpace != 4 || w.MoveDuration != 0.25 {
		t.Fatalf(`GridSpace/MoveDuration = %v/%v, want 4/0.25`, w.GridSpace, w.MoveDuration)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig("testdata/missing.toml")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Address != DefaultConfig().Server.Address {
		t.Fatalf(`Server.Address = %q, want the default`, cfg.Server.Address)
	}
	if _, err := LoadConfig("testdata/badConf.toml"); err == nil {
		t.Fatalf(`LoadConfig(badConf) err = nil`)
	}
}
