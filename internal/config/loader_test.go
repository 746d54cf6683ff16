package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/skyhop-game/skyhop/internal/sim"
)

func TestLoadEmbeddedDefaults(t *testing.T) {
	// With no custom path and no user config, the embedded YAML applies.
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.World.Width != 800 || cfg.World.Height != 600 {
		t.Errorf("world = %vx%v, want 800x600", cfg.World.Width, cfg.World.Height)
	}
	if cfg.World.ForgivenessMargin != 12 {
		t.Errorf("forgiveness margin = %v, want 12", cfg.World.ForgivenessMargin)
	}

	easy, ok := cfg.Tiers["easy"]
	if !ok {
		t.Fatal("easy tier missing from defaults")
	}
	if easy.Gravity != 0.25 || easy.JumpImpulse != -5.5 {
		t.Errorf("easy tier = %+v", easy)
	}
}

func TestLoadCustomPath(t *testing.T) {
	custom := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte(`
world:
  width: 400
  height: 300
tiers:
  hard:
    gravity: 0.5
`)
	if err := os.WriteFile(custom, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(custom)
	if err != nil {
		t.Fatalf("Load(custom) failed: %v", err)
	}
	if cfg.World.Width != 400 {
		t.Errorf("width = %v, want 400", cfg.World.Width)
	}
	if cfg.Tiers["hard"].Gravity != 0.5 {
		t.Errorf("hard gravity = %v, want 0.5", cfg.Tiers["hard"].Gravity)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("explicit missing path should fail")
	}
}

func TestProfilesConversion(t *testing.T) {
	cfg := Default()
	cfg.Tiers["medium"] = TierConfig{
		HorizontalSpeed: 9,
		VerticalGap:     100,
		Gravity:         1,
		JumpImpulse:     -9,
		SpawnIntervalMs: 500,
	}
	// Unknown tier names are skipped rather than rejected.
	cfg.Tiers["nightmare"] = TierConfig{Gravity: 99}

	profiles := cfg.Profiles()
	if got := profiles[sim.TierMedium].HorizontalSpeed; got != 9 {
		t.Errorf("medium speed = %v, want 9", got)
	}
	if got := profiles[sim.TierEasy].Gravity; got != 0.25 {
		t.Errorf("easy gravity = %v, want default 0.25", got)
	}
	if len(profiles) != 3 {
		t.Errorf("profiles count = %d, want 3", len(profiles))
	}
}

func TestSimWorldConversion(t *testing.T) {
	world := Default().SimWorld(60)
	if world.Width != 800 || world.PlayerStartY != 250 || world.TickRate != 60 {
		t.Errorf("unexpected world: %+v", world)
	}
}
