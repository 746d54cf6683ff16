package sim

import "github.com/skyhop-game/skyhop/internal/core"

// Obstacle is a paired top/bottom barrier with a vertical gap. It spawns at
// the right edge of the playfield, drifts left every tick, and is removed
// once its right edge is DespawnMargin past the left edge.
//
// PassedForward transitions false to true at most once and never reverses.
// PassedBackward can only become true after PassedForward.
type Obstacle struct {
	ID             int
	X              float64
	GapTopY        float64 // Y where the gap starts (bottom of the top barrier)
	Width          float64
	PassedForward  bool
	PassedBackward bool
}

// TopRect returns the collision rectangle of the top barrier.
func (o Obstacle) TopRect() core.RectF {
	return core.NewRectF(o.X, 0, o.Width, o.GapTopY)
}

// BottomRect returns the collision rectangle of the bottom barrier.
func (o Obstacle) BottomRect(gap, fieldHeight float64) core.RectF {
	bottomY := o.GapTopY + gap
	return core.NewRectF(o.X, bottomY, o.Width, fieldHeight-bottomY)
}

// advanceObstacles moves every obstacle left and drops the ones that have
// fully left the playfield. Removal is garbage collection only; it never
// affects score.
func (m *Match) advanceObstacles() {
	speed := m.profile.HorizontalSpeed
	for i := range m.obstacles {
		m.obstacles[i].X -= speed
	}

	kept := m.obstacles[:0]
	for _, o := range m.obstacles {
		if o.X+o.Width >= -m.world.DespawnMargin {
			kept = append(kept, o)
		}
	}
	m.obstacles = kept
}

// spawnTick accumulates simulated time and appends a new obstacle once the
// profile's spawn interval has elapsed.
func (m *Match) spawnTick() {
	m.spawnAccumMs += m.world.tickMs()
	if m.spawnAccumMs <= m.profile.SpawnIntervalMs {
		return
	}
	m.spawnAccumMs = 0
	m.spawnObstacle()
}

// spawnObstacle creates one obstacle at the right edge with a uniformly
// random gap position. The full gap always fits GapMargin away from both
// the top and bottom of the playfield.
func (m *Match) spawnObstacle() {
	minTop := m.world.GapMargin
	maxTop := m.world.Height - m.world.GapMargin - m.profile.VerticalGap
	if maxTop < minTop {
		maxTop = minTop // Degenerate geometry, pin the gap to the margin
	}

	gapTop := minTop
	if maxTop > minTop {
		gapTop = minTop + m.rng.Float64()*(maxTop-minTop)
	}

	m.nextObstacleID++
	m.obstacles = append(m.obstacles, Obstacle{
		ID:      m.nextObstacleID,
		X:       m.world.Width,
		GapTopY: gapTop,
		Width:   m.world.ObstacleWidth,
	})
}

// collidesWith reports whether the given hitbox overlaps either barrier of
// any active obstacle. The first hit wins; there is no partial-damage model.
func (m *Match) collidesWith(hitbox core.RectF) bool {
	gap := m.profile.VerticalGap
	for _, o := range m.obstacles {
		if hitbox.Intersects(o.TopRect()) || hitbox.Intersects(o.BottomRect(gap, m.world.Height)) {
			return true
		}
	}
	return false
}
