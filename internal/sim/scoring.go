package sim

// BackwardMilestoneCount is the number of backward passes that triggers a
// milestone. On reaching it the streak resets to zero, so a fresh run of
// the same length can re-trigger it. The streak only counts qualifying
// obstacles; it is never reset by forward passes or by elapsed time.
const BackwardMilestoneCount = 5

// scoreTick evaluates pass/fail flags for every active obstacle and raises
// scoring events. Each obstacle scores forward at most once, and may
// qualify backward at most once after that.
func (m *Match) scoreTick() {
	for i := range m.obstacles {
		o := &m.obstacles[i]

		// Forward pass: obstacle's right edge strictly left of the player's x.
		if !o.PassedForward && o.X+o.Width < m.player.X {
			o.PassedForward = true
			m.score++
			m.sink.Scored(m.player.CenterX(), m.player.CenterY())
			continue
		}

		// Backward pass: player's right edge strictly left of the obstacle's
		// x, for an obstacle the player had already cleared.
		if o.PassedForward && !o.PassedBackward && m.player.X+m.player.Width < o.X {
			o.PassedBackward = true
			m.backwardStreak++
			m.sink.BackwardPass()
			if m.backwardStreak == BackwardMilestoneCount {
				m.sink.BackwardMilestone()
				m.backwardStreak = 0
			}
		}
	}
}
