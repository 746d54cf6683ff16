package sim

import "testing"

func TestForwardPassScoresOnce(t *testing.T) {
	sink := &recordSink{}
	m := newTestMatch(sink)
	m.Start()

	// Obstacle fully behind the player's x: right edge 60+52=112 < 120.
	m.obstacles = append(m.obstacles, Obstacle{ID: 1, X: 60, GapTopY: 400, Width: 52})

	m.Tick(Input{})
	if m.Score() != 1 {
		t.Fatalf("score = %d, want 1", m.Score())
	}
	if !m.Obstacles()[0].PassedForward {
		t.Fatal("obstacle not marked passed forward")
	}
	if sink.scored != 1 {
		t.Fatalf("scored events = %d, want 1", sink.scored)
	}

	// Idempotent: the transition is monotonic and fires at most once.
	for i := 0; i < 10; i++ {
		m.Tick(Input{})
	}
	if m.Score() != 1 {
		t.Errorf("score after further ticks = %d, want 1", m.Score())
	}
	if sink.scored != 1 {
		t.Errorf("scored events after further ticks = %d, want 1", sink.scored)
	}
}

func TestForwardPassRequiresStrictCrossing(t *testing.T) {
	m := newTestMatch(nil)
	m.Start()

	// After one tick the obstacle sits at x=70, right edge exactly at the
	// player's x=120. Strictly-less means no score yet.
	m.obstacles = append(m.obstacles, Obstacle{ID: 1, X: 72, GapTopY: 400, Width: 50})
	m.Tick(Input{})

	if m.Score() != 0 {
		t.Fatalf("score at exact alignment = %d, want 0", m.Score())
	}

	// The next tick moves the edge strictly past.
	m.Tick(Input{})
	if m.Score() != 1 {
		t.Errorf("score after crossing = %d, want 1", m.Score())
	}
}

func TestBackwardPassNeedsForwardFirst(t *testing.T) {
	sink := &recordSink{}
	m := newTestMatch(sink)
	m.Start()

	// Obstacle ahead of the player that was never cleared: re-crossing
	// geometry alone does not qualify.
	m.obstacles = append(m.obstacles, Obstacle{ID: 1, X: 300, GapTopY: 400, Width: 52})
	m.Tick(Input{})

	if sink.backward != 0 {
		t.Errorf("backward events = %d, want 0", sink.backward)
	}
	if m.Obstacles()[0].PassedBackward {
		t.Error("obstacle marked passed backward without a forward pass")
	}
}

func TestBackwardPassIncrementsStreakOnce(t *testing.T) {
	sink := &recordSink{}
	m := newTestMatch(sink)
	m.Start()

	// Already-cleared obstacle ahead of the player's right edge (180).
	m.obstacles = append(m.obstacles, Obstacle{ID: 1, X: 300, GapTopY: 400, Width: 52, PassedForward: true})
	m.Tick(Input{})

	if m.BackwardStreak() != 1 {
		t.Fatalf("streak = %d, want 1", m.BackwardStreak())
	}
	if sink.backward != 1 {
		t.Fatalf("backward events = %d, want 1", sink.backward)
	}

	// The same obstacle never qualifies twice.
	for i := 0; i < 10; i++ {
		m.Tick(Input{})
	}
	if m.BackwardStreak() != 1 {
		t.Errorf("streak after further ticks = %d, want 1", m.BackwardStreak())
	}
}

func TestBackwardMilestoneFiresAtExactlyFive(t *testing.T) {
	sink := &recordSink{}
	m := newTestMatch(sink)
	m.Start()

	// Four qualifying obstacles: no milestone yet.
	for i := 0; i < 4; i++ {
		m.obstacles = append(m.obstacles, Obstacle{
			ID: i + 1, X: 300 + float64(i*80), GapTopY: 400, Width: 52, PassedForward: true,
		})
	}
	m.Tick(Input{})
	if m.BackwardStreak() != 4 {
		t.Fatalf("streak = %d, want 4", m.BackwardStreak())
	}
	if sink.milestones != 0 {
		t.Fatalf("milestone fired early: %d", sink.milestones)
	}

	// The fifth pass triggers the milestone exactly once and resets the
	// counter to zero.
	m.obstacles = append(m.obstacles, Obstacle{ID: 5, X: 700, GapTopY: 400, Width: 52, PassedForward: true})
	m.Tick(Input{})
	if sink.milestones != 1 {
		t.Fatalf("milestone events = %d, want 1", sink.milestones)
	}
	if m.BackwardStreak() != 0 {
		t.Fatalf("streak after milestone = %d, want 0", m.BackwardStreak())
	}
	if sink.backward != 5 {
		t.Errorf("backward events = %d, want 5", sink.backward)
	}

	// A sixth qualifying pass starts a fresh count at 1.
	m.obstacles = append(m.obstacles, Obstacle{ID: 6, X: 700, GapTopY: 400, Width: 52, PassedForward: true})
	m.Tick(Input{})
	if m.BackwardStreak() != 1 {
		t.Errorf("streak after sixth pass = %d, want 1", m.BackwardStreak())
	}
	if sink.milestones != 1 {
		t.Errorf("milestone events = %d, want 1", sink.milestones)
	}
}

func TestForwardPassDoesNotResetStreak(t *testing.T) {
	m := newTestMatch(nil)
	m.Start()

	// Two backward qualifiers ahead, one forward qualifier behind.
	m.obstacles = append(m.obstacles,
		Obstacle{ID: 1, X: 300, GapTopY: 400, Width: 52, PassedForward: true},
		Obstacle{ID: 2, X: 400, GapTopY: 400, Width: 52, PassedForward: true},
	)
	m.Tick(Input{})
	if m.BackwardStreak() != 2 {
		t.Fatalf("streak = %d, want 2", m.BackwardStreak())
	}

	m.obstacles = append(m.obstacles, Obstacle{ID: 3, X: 40, GapTopY: 400, Width: 52})
	m.Tick(Input{})
	if m.Score() != 1 {
		t.Fatalf("score = %d, want 1", m.Score())
	}
	if m.BackwardStreak() != 2 {
		t.Errorf("forward pass reset the streak to %d", m.BackwardStreak())
	}
}

func TestStreakSurvivesAcrossTicks(t *testing.T) {
	// The streak counts qualifying obstacles, not contiguous time: passes
	// spread over many ticks still accumulate to the milestone.
	sink := &recordSink{}
	m := newTestMatch(sink)
	m.Start()

	for i := 0; i < BackwardMilestoneCount; i++ {
		m.obstacles = append(m.obstacles, Obstacle{
			ID: i + 1, X: 500, GapTopY: 400, Width: 52, PassedForward: true,
		})
		m.Tick(Input{})
		// Idle a while between qualifying passes.
		for j := 0; j < 5; j++ {
			m.Tick(Input{})
		}
		m.obstacles = m.obstacles[:0]
	}

	if sink.milestones != 1 {
		t.Errorf("milestone events = %d, want 1", sink.milestones)
	}
	if sink.backward != BackwardMilestoneCount {
		t.Errorf("backward events = %d, want %d", sink.backward, BackwardMilestoneCount)
	}
}
