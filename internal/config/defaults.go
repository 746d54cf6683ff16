package config

import (
	_ "embed"
)

//go:embed defaults/skyhop.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration, used as the final
// fallback if even the embedded YAML fails to parse.
func Default() Config {
	return Config{
		World: WorldConfig{
			Width:             800,
			Height:            600,
			MoveSpeed:         3.0,
			ForgivenessMargin: 12,
			ObstacleWidth:     52,
			GapMargin:         50,
			DespawnMargin:     50,
		},
		Player: PlayerConfig{
			Width:  60,
			Height: 45,
			StartX: 120,
			StartY: 250,
		},
		Tiers: map[string]TierConfig{
			"easy": {
				HorizontalSpeed: 2.0,
				VerticalGap:     220,
				Gravity:         0.25,
				JumpImpulse:     -5.5,
				SpawnIntervalMs: 2200,
			},
			"medium": {
				HorizontalSpeed: 2.5,
				VerticalGap:     190,
				Gravity:         0.30,
				JumpImpulse:     -6.0,
				SpawnIntervalMs: 1800,
			},
			"hard": {
				HorizontalSpeed: 3.0,
				VerticalGap:     165,
				Gravity:         0.35,
				JumpImpulse:     -6.5,
				SpawnIntervalMs: 1500,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML, for the config dump command.
func DefaultYAML() []byte {
	return defaultYAML
}
