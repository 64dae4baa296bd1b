package config

import (
	_ "embed"
)

//go:embed defaults/dash.yaml
var defaultDashYAML []byte

// DefaultDashConfig returns the default Dash configuration.
// It mirrors defaults/dash.yaml and is used when the embedded file
// cannot be parsed.
func DefaultDashConfig() DashConfig {
	return DashConfig{
		World: DashWorld{
			Width:   1000,
			Height:  600,
			GroundY: 450,
		},
		Physics: DashPhysics{
			Gravity:        3000,
			JumpVelocity:   -1000,
			ScrollSpeed:    450,
			ScorePerSecond: 100,
		},
		Player: DashPlayer{
			X:    80,
			Size: 60,
		},
		Spikes: DashSpikes{
			MinWidth:    45,
			MaxWidth:    75,
			MinHeight:   60,
			MaxHeight:   110,
			BaseMargin:  0.15,
			Forgiveness: 0.15,
		},
		Platforms: DashPlatforms{
			Elevation:        90,
			Height:           20,
			MinWidth:         160,
			MaxWidth:         240,
			CompanionSpike:   true,
			CompanionMinSize: 50,
			CompanionScale:   0.07,
			CompanionOffset:  0.45,
		},
		Spawning: DashSpawning{
			MinGap:      200,
			SpawnOffset: 50,
			MinSlack:    0.1,
			MaxSlack:    0.5,
		},
		Display: DashDisplay{
			ShowHitboxes: true,
			AssetsDir:    "assets",
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "dash", "dash-classic":
		return defaultDashYAML
	default:
		return nil
	}
}
