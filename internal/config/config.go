// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade platform.
package config

import (
	"errors"
	"fmt"
)

// DashConfig contains all configuration for the Dash runner.
// Distances are world pixels, times are seconds.
type DashConfig struct {
	World     DashWorld     `yaml:"world"`
	Physics   DashPhysics   `yaml:"physics"`
	Player    DashPlayer    `yaml:"player"`
	Spikes    DashSpikes    `yaml:"spikes"`
	Platforms DashPlatforms `yaml:"platforms"`
	Spawning  DashSpawning  `yaml:"spawning"`
	Display   DashDisplay   `yaml:"display"`
}

// DashWorld defines the play field.
type DashWorld struct {
	Width   int `yaml:"width"`
	Height  int `yaml:"height"`
	GroundY int `yaml:"ground_y"` // Top of the floor
}

// DashPhysics defines motion parameters.
type DashPhysics struct {
	Gravity        float64 `yaml:"gravity"`       // px/s², downward
	JumpVelocity   float64 `yaml:"jump_velocity"` // px/s, negative is up
	ScrollSpeed    float64 `yaml:"scroll_speed"`  // px/s, leftward
	ScorePerSecond float64 `yaml:"score_per_second"`
}

// DashPlayer defines the player's square body.
type DashPlayer struct {
	X    int `yaml:"x"`
	Size int `yaml:"size"`
}

// DashSpikes defines ground spike sizes and the forgiving hit test.
type DashSpikes struct {
	MinWidth    int     `yaml:"min_width"`
	MaxWidth    int     `yaml:"max_width"`
	MinHeight   int     `yaml:"min_height"`
	MaxHeight   int     `yaml:"max_height"`
	BaseMargin  float64 `yaml:"base_margin"` // Fraction of the base ignored on each side
	Forgiveness float64 `yaml:"forgiveness"` // Fraction of the height the player may sink in
}

// DashPlatforms defines floating platforms and their companion spikes.
type DashPlatforms struct {
	Elevation        int     `yaml:"elevation"` // Height of the platform top above the ground
	Height           int     `yaml:"height"`
	MinWidth         int     `yaml:"min_width"`
	MaxWidth         int     `yaml:"max_width"`
	CompanionSpike   bool    `yaml:"companion_spike"`
	CompanionMinSize int     `yaml:"companion_min_size"`
	CompanionScale   float64 `yaml:"companion_scale"`
	CompanionOffset  float64 `yaml:"companion_offset"` // Fraction of the platform width
}

// DashSpawning defines spawn timing.
type DashSpawning struct {
	MinGap      float64 `yaml:"min_gap"`      // Minimum distance between spawns
	SpawnOffset int     `yaml:"spawn_offset"` // Distance past the right edge
	MinSlack    float64 `yaml:"min_slack"`    // Extra gap, as a fraction of the minimum
	MaxSlack    float64 `yaml:"max_slack"`
}

// DashDisplay defines presentation defaults.
type DashDisplay struct {
	ShowHitboxes bool   `yaml:"show_hitboxes"`
	AssetsDir    string `yaml:"assets_dir"`
}

// Validate checks that the config describes a playable world.
func (c DashConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	nonNegative := func(name string, v float64) {
		if v < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %v", name, v))
		}
	}
	ordered := func(name string, lo, hi float64) {
		if lo > hi {
			errs = append(errs, fmt.Errorf("%s range is inverted: %v > %v", name, lo, hi))
		}
	}

	positive("world.width", float64(c.World.Width))
	positive("world.height", float64(c.World.Height))
	if c.World.GroundY <= 0 || c.World.GroundY > c.World.Height {
		errs = append(errs, fmt.Errorf("world.ground_y must be within (0, %d], got %d", c.World.Height, c.World.GroundY))
	}
	positive("physics.gravity", c.Physics.Gravity)
	if c.Physics.JumpVelocity >= 0 {
		errs = append(errs, fmt.Errorf("physics.jump_velocity must be negative (upward), got %v", c.Physics.JumpVelocity))
	}
	positive("physics.scroll_speed", c.Physics.ScrollSpeed)
	nonNegative("physics.score_per_second", c.Physics.ScorePerSecond)
	positive("player.size", float64(c.Player.Size))
	positive("spikes.min_width", float64(c.Spikes.MinWidth))
	positive("spikes.min_height", float64(c.Spikes.MinHeight))
	ordered("spikes.width", float64(c.Spikes.MinWidth), float64(c.Spikes.MaxWidth))
	ordered("spikes.height", float64(c.Spikes.MinHeight), float64(c.Spikes.MaxHeight))
	if c.Spikes.BaseMargin < 0 || c.Spikes.BaseMargin >= 0.5 {
		errs = append(errs, fmt.Errorf("spikes.base_margin must be within [0, 0.5), got %v", c.Spikes.BaseMargin))
	}
	nonNegative("spikes.forgiveness", c.Spikes.Forgiveness)
	positive("platforms.height", float64(c.Platforms.Height))
	positive("platforms.min_width", float64(c.Platforms.MinWidth))
	ordered("platforms.width", float64(c.Platforms.MinWidth), float64(c.Platforms.MaxWidth))
	if c.Platforms.CompanionSpike {
		positive("platforms.companion_min_size", float64(c.Platforms.CompanionMinSize))
		nonNegative("platforms.companion_scale", c.Platforms.CompanionScale)
		nonNegative("platforms.companion_offset", c.Platforms.CompanionOffset)
	}
	positive("spawning.min_gap", c.Spawning.MinGap)
	nonNegative("spawning.min_slack", c.Spawning.MinSlack)
	ordered("spawning.slack", c.Spawning.MinSlack, c.Spawning.MaxSlack)

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid dash config: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty converts a CLI value to a preset.
// The empty string keeps the config as loaded.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// SpeedScaleForPreset returns the scroll speed multiplier for a preset.
// The speed stays constant within a round; presets only pick it.
func SpeedScaleForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.8
	case DifficultyHard:
		return 1.25
	default:
		return 1.0
	}
}
