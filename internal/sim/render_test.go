package sim

import (
	"strings"
	"testing"

	"github.com/skyhop-game/skyhop/internal/core"
)

func TestRenderDrawsGroundAndHUD(t *testing.T) {
	m := newTestMatch(nil)
	m.Start()

	screen := core.NewScreen(80, 24)
	m.Render(screen)

	groundY := screen.Height() - 1
	if screen.Get(0, groundY) != groundChar {
		t.Errorf("ground not drawn, got %q", screen.Get(0, groundY))
	}
	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD missing from top row: %q", screen.Row(0))
	}
}

func TestRenderStartOverlay(t *testing.T) {
	m := newTestMatch(nil)

	screen := core.NewScreen(80, 24)
	m.Render(screen)

	if !strings.Contains(screen.String(), "SKYHOP") {
		t.Error("start overlay missing title")
	}
}

func TestRenderGameOverOverlay(t *testing.T) {
	m := newTestMatch(nil)
	m.Start()
	m.player.Y = m.world.Height
	m.Tick(Input{})

	screen := core.NewScreen(80, 24)
	m.Render(screen)

	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over overlay missing")
	}
}

func TestRenderTinyScreenIsSafe(t *testing.T) {
	m := newTestMatch(nil)
	m.Start()
	m.obstacles = append(m.obstacles, Obstacle{ID: 1, X: 400, GapTopY: 200, Width: 52})

	// Degenerate sizes must not panic.
	m.Render(core.NewScreen(1, 1))
	m.Render(core.NewScreen(0, 0))
	m.Render(core.NewScreen(3, 2))
}
