package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/skyhop-game/skyhop/internal/core"
	"github.com/skyhop-game/skyhop/internal/sim"
)

func newTestModel() GameModel {
	match := sim.NewMatch(sim.DefaultWorld(), sim.DefaultProfiles(), sim.NewLeaderboards(), 1, nil)
	return NewGameModel(match, NewEventFeed(), nil, core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	})
}

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m GameModel, msg tea.Msg) GameModel {
	t.Helper()
	updated, _ := m.Update(msg)
	next, ok := updated.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T, want GameModel", updated)
	}
	return next
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	tests := []struct {
		msg    tea.KeyMsg
		action core.Action
	}{
		{tea.KeyMsg{Type: tea.KeySpace}, core.ActionFlap},
		{keyMsg('a'), core.ActionLeft},
		{keyMsg('d'), core.ActionRight},
		{keyMsg('p'), core.ActionPause},
		{keyMsg('r'), core.ActionRestart},
		{keyMsg('2'), core.ActionTierMedium},
	}
	for _, tt := range tests {
		if quit := km.MapKeyToFrame(tt.msg, &frame); quit {
			t.Errorf("key %q reported quit", tt.msg.String())
		}
		if !frame.Has(tt.action) {
			t.Errorf("key %q did not set %v", tt.msg.String(), tt.action)
		}
	}

	if quit := km.MapKeyToFrame(keyMsg('q'), &frame); !quit {
		t.Error("q did not report quit")
	}

	frame.Clear()
	for _, tt := range tests {
		if frame.Has(tt.action) {
			t.Errorf("%v survived Clear", tt.action)
		}
	}
}

func TestFlapKeyLaunchesOnNextTick(t *testing.T) {
	m := newTestModel()

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if m.match.State() != sim.StateStart {
		t.Fatal("key press alone advanced the match before the tick")
	}

	m = update(t, m, TickMsg(time.Time{}))
	if m.match.State() != sim.StatePlaying {
		t.Fatalf("state after flap tick = %v, want playing", m.match.State())
	}
}

func TestHeldKeyDecay(t *testing.T) {
	m := newTestModel()
	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = update(t, m, TickMsg(time.Time{}))

	startX := m.match.Player().X

	// A single press drifts the player for heldDecayTicks ticks.
	m = update(t, m, keyMsg('d'))
	for i := 0; i < heldDecayTicks; i++ {
		m = update(t, m, TickMsg(time.Time{}))
	}

	moved := m.match.Player().X - startX
	want := m.match.World().MoveSpeed * float64(heldDecayTicks)
	if moved != want {
		t.Fatalf("drift after one press = %v, want %v", moved, want)
	}

	// Once decayed, further ticks leave X alone.
	m = update(t, m, TickMsg(time.Time{}))
	if got := m.match.Player().X - startX; got != moved {
		t.Errorf("player kept drifting after release, x offset = %v", got)
	}
}
