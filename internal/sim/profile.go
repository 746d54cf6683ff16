// Package sim implements the skyhop match simulation: player physics,
// obstacle spawning, collision, scoring and the match state machine.
// It contains pure logic with no rendering, audio or storage dependencies;
// those collaborators observe the match through an EventSink.
package sim

import "fmt"

// Tier is a named difficulty configuration. A tier is selected once per
// match; changing it mid-match is a no-op.
type Tier int

const (
	TierEasy Tier = iota
	TierMedium
	TierHard
)

// Tiers lists all tiers in ascending difficulty order.
func Tiers() []Tier {
	return []Tier{TierEasy, TierMedium, TierHard}
}

// String returns the canonical lowercase name of the tier.
func (t Tier) String() string {
	switch t {
	case TierEasy:
		return "easy"
	case TierMedium:
		return "medium"
	case TierHard:
		return "hard"
	default:
		return "unknown"
	}
}

// ParseTier converts a tier name to a Tier.
func ParseTier(s string) (Tier, error) {
	switch s {
	case "easy":
		return TierEasy, nil
	case "medium":
		return TierMedium, nil
	case "hard":
		return TierHard, nil
	default:
		return TierEasy, fmt.Errorf("sim: unknown difficulty %q", s)
	}
}

// Profile holds the simulation constants for one difficulty tier.
// Profiles are immutable for the duration of a match.
type Profile struct {
	HorizontalSpeed float64 // Obstacle speed in world units per tick
	VerticalGap     float64 // Height of the passable gap
	Gravity         float64 // Downward acceleration per tick
	JumpImpulse     float64 // Vertical velocity set by a flap (negative = up)
	SpawnIntervalMs float64 // Milliseconds between obstacle spawns
}

// DefaultProfiles returns the built-in difficulty table.
func DefaultProfiles() map[Tier]Profile {
	return map[Tier]Profile{
		TierEasy: {
			HorizontalSpeed: 2.0,
			VerticalGap:     220,
			Gravity:         0.25,
			JumpImpulse:     -5.5,
			SpawnIntervalMs: 2200,
		},
		TierMedium: {
			HorizontalSpeed: 2.5,
			VerticalGap:     190,
			Gravity:         0.30,
			JumpImpulse:     -6.0,
			SpawnIntervalMs: 1800,
		},
		TierHard: {
			HorizontalSpeed: 3.0,
			VerticalGap:     165,
			Gravity:         0.35,
			JumpImpulse:     -6.5,
			SpawnIntervalMs: 1500,
		},
	}
}
