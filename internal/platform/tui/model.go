package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/skyhop-game/skyhop/internal/core"
	"github.com/skyhop-game/skyhop/internal/sim"
	"github.com/skyhop-game/skyhop/internal/storage"
)

// heldDecayTicks is how many simulation ticks a movement key stays "held"
// after a key press. Terminals report repeats but never releases, so held
// state is emulated by refreshing a countdown on every press.
const heldDecayTicks = 8

// GameModel is the Bubble Tea model that drives a single match. Key presses
// accumulate into an input frame which is consumed at the next tick, so the
// simulation sees at most one batch of actions per step.
type GameModel struct {
	match      *sim.Match
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	feed       *EventFeed
	leftHeld   int // Ticks remaining before the left key counts as released
	rightHeld  int
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewGameModel creates a Bubble Tea model around an existing match.
func NewGameModel(match *sim.Match, feed *EventFeed, store *storage.Store, cfg core.RuntimeConfig) GameModel {
	return GameModel{
		match:      match,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		feed:       feed,
	}
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records keyboard input for the next tick.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events. The simulation runs in fixed
// world units, so only the render buffer changes.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick consumes the accumulated input frame and advances the
// simulation by one step.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	m.applyFrame()

	input := sim.Input{
		Left:  m.leftHeld > 0,
		Right: m.rightHeld > 0,
	}
	if m.leftHeld > 0 {
		m.leftHeld--
	}
	if m.rightHeld > 0 {
		m.rightHeld--
	}

	m.match.Tick(input)
	if m.feed != nil {
		m.feed.advance()
	}

	// Save score on game over (once)
	if m.match.State() == sim.StateGameOver && !m.scoreSaved && m.match.Score() > 0 {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveScore(m.match.Tier().String(), m.match.Score())
		}
		m.scoreSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// applyFrame dispatches the actions collected since the previous tick and
// clears the frame.
func (m *GameModel) applyFrame() {
	f := &m.inputFrame

	if f.Has(core.ActionFlap) {
		if m.match.State() == sim.StateStart {
			m.match.Start()
			m.scoreSaved = false
		} else {
			m.match.Flap()
		}
	}
	if f.Has(core.ActionLeft) {
		m.leftHeld = heldDecayTicks
	}
	if f.Has(core.ActionRight) {
		m.rightHeld = heldDecayTicks
	}
	if f.Has(core.ActionPause) {
		m.match.TogglePause()
	}
	if f.Has(core.ActionRestart) && m.match.State() == sim.StateGameOver {
		m.match.Start()
		m.scoreSaved = false
	}
	if f.Has(core.ActionTierEasy) {
		m.match.SelectTier(sim.TierEasy)
	}
	if f.Has(core.ActionTierMedium) {
		m.match.SelectTier(sim.TierMedium)
	}
	if f.Has(core.ActionTierHard) {
		m.match.SelectTier(sim.TierHard)
	}

	f.Clear()
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.match.Render(m.screen)
	if m.feed != nil {
		m.feed.draw(m.screen)
	}

	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user requested to quit.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for a single match.
func Run(match *sim.Match, feed *EventFeed, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewGameModel(match, feed, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
