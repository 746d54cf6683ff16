package tui

import (
	"fmt"

	"github.com/skyhop-game/skyhop/internal/core"
	"github.com/skyhop-game/skyhop/internal/sim"
)

// Toast display durations, in simulation ticks.
const (
	milestoneToastTicks = 90
	backwardToastTicks  = 45
)

// EventFeed collects match events and turns them into transient on-screen
// toasts. It implements sim.EventSink.
type EventFeed struct {
	milestoneTicks int // Remaining ticks for the streak milestone banner
	milestoneCount int // How many milestones fired this match
	backwardTicks  int // Remaining ticks for the backward pass notice
	streak         int // Streak value at the last backward pass
}

func NewEventFeed() *EventFeed {
	return &EventFeed{}
}

// MatchStarted resets the feed for a fresh match.
func (f *EventFeed) MatchStarted() {
	*f = EventFeed{}
}

// Scored is a no-op; the score counter in the HUD already reflects it.
func (f *EventFeed) Scored(x, y float64) {}

// BackwardPass shows a short streak progress notice.
func (f *EventFeed) BackwardPass() {
	f.streak++
	f.backwardTicks = backwardToastTicks
}

// BackwardMilestone shows the bonus banner and restarts streak tracking.
func (f *EventFeed) BackwardMilestone() {
	f.milestoneCount++
	f.milestoneTicks = milestoneToastTicks
	f.backwardTicks = 0
	f.streak = 0
}

// Collided is a no-op; the game over overlay covers it.
func (f *EventFeed) Collided(x, y float64) {}

// MatchEnded clears transient toasts so they don't linger over the overlay.
func (f *EventFeed) MatchEnded(finalScore int) {
	f.milestoneTicks = 0
	f.backwardTicks = 0
}

// advance decays toast timers by one tick.
func (f *EventFeed) advance() {
	if f.milestoneTicks > 0 {
		f.milestoneTicks--
	}
	if f.backwardTicks > 0 {
		f.backwardTicks--
	}
}

// draw overlays active toasts onto the rendered screen.
func (f *EventFeed) draw(s *core.Screen) {
	w := s.Width()
	if w < 10 || s.Height() < 4 {
		return
	}

	if f.milestoneTicks > 0 {
		msg := "BONUS STREAK! +5x backward"
		s.DrawTextColored((w-len(msg))/2, 1, msg, core.ColorBrightMagenta)
		return
	}

	if f.backwardTicks > 0 && f.streak > 0 {
		msg := fmt.Sprintf("backward %d/%d", f.streak, sim.BackwardMilestoneCount)
		s.DrawTextColored((w-len(msg))/2, 1, msg, core.ColorBrightCyan)
	}
}
