package sim

import (
	"math"
	"math/rand"

	"github.com/skyhop-game/skyhop/internal/core"
)

// State is the match lifecycle state.
type State int

const (
	// StateStart is the idle state before the first run: the player hovers,
	// no obstacles move and no collisions are checked.
	StateStart State = iota
	// StatePlaying runs the full simulation.
	StatePlaying
	// StateGameOver freezes the simulation with entities retained for display.
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Input is the held-key state sampled at the start of a tick. Discrete
// inputs (flap, start, tier selection) are separate method calls.
type Input struct {
	Left  bool
	Right bool
}

// Visual tilt smoothing constants. The angle chases a target derived from
// vertical velocity and is purely cosmetic.
const (
	tiltFactor   = 0.1
	tiltMin      = -0.4
	tiltMax      = math.Pi / 3
	tiltApproach = 0.2
)

// Match is one self-contained simulation context: entities, counters and
// lifecycle state. Multiple matches can coexist; there is no package-level
// mutable state. All mutation happens through a single logical tick owner.
type Match struct {
	world    World
	profiles map[Tier]Profile
	tier     Tier
	profile  Profile

	state     State
	player    Player
	obstacles []Obstacle

	nextObstacleID int
	spawnAccumMs   float64
	score          int
	backwardStreak int
	ticks          int
	paused         bool
	hoverPhase     float64

	rng    *rand.Rand
	sink   EventSink
	boards *Leaderboards
}

// NewMatch creates a match in the start state. A nil sink or boards is
// replaced with a no-op sink and fresh, empty leaderboards.
func NewMatch(world World, profiles map[Tier]Profile, boards *Leaderboards, seed int64, sink EventSink) *Match {
	if profiles == nil {
		profiles = DefaultProfiles()
	}
	if sink == nil {
		sink = NopSink{}
	}
	if boards == nil {
		boards = NewLeaderboards()
	}

	m := &Match{
		world:    world,
		profiles: profiles,
		tier:     TierEasy,
		profile:  profiles[TierEasy],
		rng:      rand.New(rand.NewSource(seed)),
		sink:     sink,
		boards:   boards,
	}
	m.player = m.initialPlayer()
	return m
}

// initialPlayer returns the player at its starting pose.
func (m *Match) initialPlayer() Player {
	return Player{
		X:      m.world.PlayerStartX,
		Y:      m.world.PlayerStartY,
		Width:  m.world.PlayerWidth,
		Height: m.world.PlayerHeight,
	}
}

// SelectTier picks the difficulty for the next run. Selecting a tier while
// playing is a no-op; the active profile never changes mid-match.
func (m *Match) SelectTier(t Tier) {
	if m.state == StatePlaying {
		return
	}
	if _, ok := m.profiles[t]; !ok {
		return
	}
	m.tier = t
}

// Start begins a new run from either the start or game-over state.
// Starting while already playing is a no-op. All entities and counters are
// discarded and recreated.
func (m *Match) Start() {
	if m.state == StatePlaying {
		return
	}

	m.profile = m.profiles[m.tier]
	m.player = m.initialPlayer()
	m.obstacles = m.obstacles[:0]
	m.spawnAccumMs = 0
	m.score = 0
	m.backwardStreak = 0
	m.ticks = 0
	m.paused = false
	m.hoverPhase = 0

	m.state = StatePlaying
	m.sink.MatchStarted()
}

// Flap applies the jump impulse immediately. Only effective while playing
// and not paused.
func (m *Match) Flap() {
	if m.state != StatePlaying || m.paused {
		return
	}
	m.player.VY = m.profile.JumpImpulse
}

// TogglePause pauses or resumes the simulation. Only meaningful while playing.
func (m *Match) TogglePause() {
	if m.state != StatePlaying {
		return
	}
	m.paused = !m.paused
}

// Tick advances the simulation by one frame. Within a tick the order is
// fixed: input sampling, physics integration, collision testing, spawn
// check, then scoring. All mutations are visible before the next tick.
func (m *Match) Tick(in Input) {
	if m.state != StatePlaying {
		m.idleTick()
		return
	}
	if m.paused {
		return
	}
	m.ticks++

	m.integrate(in)
	m.advanceObstacles()

	if m.checkCollisions() {
		return
	}

	m.spawnTick()
	m.scoreTick()
}

// integrate applies horizontal input and vertical physics to the player.
func (m *Match) integrate(in Input) {
	dir := 0.0
	if in.Left {
		dir -= 1
	}
	if in.Right {
		dir += 1
	}
	m.player.X += m.world.MoveSpeed * dir
	m.player.X = core.ClampF(m.player.X, 0, m.world.Width-m.player.Width)

	m.player.VY += m.profile.Gravity
	m.player.Y += m.player.VY

	// Ceiling is a soft stop, not a kill plane.
	if m.player.Y < 0 {
		m.player.Y = 0
		m.player.VY = 0
	}

	target := core.ClampF(m.player.VY*tiltFactor, tiltMin, tiltMax)
	m.player.Angle += (target - m.player.Angle) * tiltApproach
}

// checkCollisions tests the floor rule and obstacle overlap. Returns true
// if the match ended this tick; the transition takes effect immediately,
// with no grace period.
func (m *Match) checkCollisions() bool {
	if m.player.Y+m.player.Height > m.world.Height {
		m.endMatch()
		return true
	}

	if m.collidesWith(m.player.Hitbox(m.world.ForgivenessMargin)) {
		m.endMatch()
		return true
	}
	return false
}

// endMatch transitions to game over and finalizes the score on the active
// tier's leaderboard. Zero scores are never ranked, mirroring how finished
// matches are persisted.
func (m *Match) endMatch() {
	m.state = StateGameOver
	m.sink.Collided(m.player.CenterX(), m.player.CenterY())
	if m.score > 0 {
		m.boards.Record(m.tier, m.score)
	}
	m.sink.MatchEnded(m.score)
}

// idleTick animates the cosmetic hover bob while not playing. Entities are
// otherwise frozen.
func (m *Match) idleTick() {
	if m.state != StateStart {
		return
	}
	m.hoverPhase += 0.08
	m.player.Y = m.world.PlayerStartY + math.Sin(m.hoverPhase)*8
	m.player.Angle = 0
}

// State returns the current lifecycle state.
func (m *Match) State() State { return m.state }

// Tier returns the selected difficulty tier.
func (m *Match) Tier() Tier { return m.tier }

// Profile returns the simulation constants of the active tier.
func (m *Match) Profile() Profile { return m.profile }

// Score returns the current forward-pass score.
func (m *Match) Score() int { return m.score }

// BackwardStreak returns the current backward-pass streak count.
func (m *Match) BackwardStreak() int { return m.backwardStreak }

// Player returns a copy of the player entity.
func (m *Match) Player() Player { return m.player }

// Obstacles returns the active obstacle set. The slice is owned by the
// match; callers must treat it as read-only.
func (m *Match) Obstacles() []Obstacle { return m.obstacles }

// Paused reports whether the simulation is paused.
func (m *Match) Paused() bool { return m.paused }

// Ticks returns the number of simulation ticks since the last start.
func (m *Match) Ticks() int { return m.ticks }

// World returns the playfield geometry.
func (m *Match) World() World { return m.world }

// Boards returns the leaderboards shared with this match.
func (m *Match) Boards() *Leaderboards { return m.boards }
