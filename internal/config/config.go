// Package config provides YAML-based configuration loading for skyhop:
// playfield geometry, player constants and the per-tier difficulty table.
package config

import (
	"github.com/skyhop-game/skyhop/internal/sim"
)

// Config contains all tunable simulation parameters.
type Config struct {
	World  WorldConfig           `yaml:"world"`
	Player PlayerConfig          `yaml:"player"`
	Tiers  map[string]TierConfig `yaml:"tiers"`
}

// WorldConfig defines playfield geometry and difficulty-independent
// simulation constants, in world units.
type WorldConfig struct {
	Width             float64 `yaml:"width"`
	Height            float64 `yaml:"height"`
	MoveSpeed         float64 `yaml:"move_speed"`
	ForgivenessMargin float64 `yaml:"forgiveness_margin"`
	ObstacleWidth     float64 `yaml:"obstacle_width"`
	GapMargin         float64 `yaml:"gap_margin"`
	DespawnMargin     float64 `yaml:"despawn_margin"`
}

// PlayerConfig defines player sprite geometry and starting pose.
type PlayerConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
}

// TierConfig defines the simulation constants of one difficulty tier.
type TierConfig struct {
	HorizontalSpeed float64 `yaml:"horizontal_speed"`
	VerticalGap     float64 `yaml:"vertical_gap"`
	Gravity         float64 `yaml:"gravity"`
	JumpImpulse     float64 `yaml:"jump_impulse"`
	SpawnIntervalMs float64 `yaml:"spawn_interval_ms"`
}

// SimWorld converts the configuration into a simulation world. The tick
// rate comes from the platform, not the config file.
func (c Config) SimWorld(tickRate int) sim.World {
	return sim.World{
		Width:             c.World.Width,
		Height:            c.World.Height,
		PlayerWidth:       c.Player.Width,
		PlayerHeight:      c.Player.Height,
		PlayerStartX:      c.Player.StartX,
		PlayerStartY:      c.Player.StartY,
		MoveSpeed:         c.World.MoveSpeed,
		ForgivenessMargin: c.World.ForgivenessMargin,
		ObstacleWidth:     c.World.ObstacleWidth,
		GapMargin:         c.World.GapMargin,
		DespawnMargin:     c.World.DespawnMargin,
		TickRate:          tickRate,
	}
}

// Profiles converts the tier table into simulation profiles. Tiers missing
// from the config fall back to the built-in defaults.
func (c Config) Profiles() map[sim.Tier]sim.Profile {
	profiles := sim.DefaultProfiles()
	for name, tc := range c.Tiers {
		tier, err := sim.ParseTier(name)
		if err != nil {
			continue // Unknown tier names are ignored, not fatal
		}
		profiles[tier] = sim.Profile{
			HorizontalSpeed: tc.HorizontalSpeed,
			VerticalGap:     tc.VerticalGap,
			Gravity:         tc.Gravity,
			JumpImpulse:     tc.JumpImpulse,
			SpawnIntervalMs: tc.SpawnIntervalMs,
		}
	}
	return profiles
}
