// Package config provides YAML-based game configuration loading for the
// Flappy simulation and its collaborators.
package config

import (
	"errors"
	"fmt"
	"time"
)

// FlappyConfig contains all configuration for the Flappy game.
type FlappyConfig struct {
	Playfield  FlappyPlayfield  `yaml:"playfield"`
	Player     FlappyPlayer     `yaml:"player"`
	Physics    FlappyPhysics    `yaml:"physics"`
	Obstacles  FlappyObstacles  `yaml:"obstacles"`
	Background FlappyBackground `yaml:"background"`
	Audio      AudioConfig      `yaml:"audio"`
}

// FlappyPlayfield defines the world dimensions in world units.
type FlappyPlayfield struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"ground_height"`
}

// GroundLevel returns the y-coordinate of the top of the ground.
func (p FlappyPlayfield) GroundLevel() float64 {
	return p.Height - p.GroundHeight
}

// FlappyPlayer defines the avatar's reset pose and hitbox.
type FlappyPlayer struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// FlappyPhysics defines per-tick physics constants.
type FlappyPhysics struct {
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"`
}

// FlappyObstacles defines obstacle geometry and spawn timing.
type FlappyObstacles struct {
	Width         float64       `yaml:"width"`
	GapSize       float64       `yaml:"gap_size"`
	Speed         float64       `yaml:"speed"`
	SpawnInterval time.Duration `yaml:"spawn_interval"`
	TopMargin     float64       `yaml:"top_margin"`
	BottomMargin  float64       `yaml:"bottom_margin"`
}

// FlappyBackground defines the parallax background scroll.
type FlappyBackground struct {
	ScrollFactor float64 `yaml:"scroll_factor"`
}

// AudioConfig controls the synthesized sound effects.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"` // Master gain, 0.0 to 1.0
	SampleRate int     `yaml:"sample_rate"`
}

// Validate reports configuration values the simulation cannot run with.
// A gap that does not fit the playfield is not an error; the obstacle
// generator clamps its range instead.
func (c FlappyConfig) Validate() error {
	var errs []error

	if c.Playfield.Width <= 0 || c.Playfield.Height <= 0 {
		errs = append(errs, fmt.Errorf("playfield must have positive size, got %vx%v", c.Playfield.Width, c.Playfield.Height))
	}
	if c.Playfield.GroundHeight < 0 || c.Playfield.GroundHeight >= c.Playfield.Height {
		errs = append(errs, fmt.Errorf("ground_height %v must be within [0, %v)", c.Playfield.GroundHeight, c.Playfield.Height))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, fmt.Errorf("player must have positive size, got %vx%v", c.Player.Width, c.Player.Height))
	}
	if c.Physics.JumpImpulse >= 0 {
		errs = append(errs, fmt.Errorf("jump_impulse must be negative (upward), got %v", c.Physics.JumpImpulse))
	}
	if c.Obstacles.Width <= 0 || c.Obstacles.GapSize <= 0 {
		errs = append(errs, fmt.Errorf("obstacle width and gap_size must be positive, got %v and %v", c.Obstacles.Width, c.Obstacles.GapSize))
	}
	if c.Obstacles.SpawnInterval <= 0 {
		errs = append(errs, fmt.Errorf("spawn_interval must be positive, got %v", c.Obstacles.SpawnInterval))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio volume must be within [0, 1], got %v", c.Audio.Volume))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid flappy config: %w", errors.Join(errs...))
	}
	return nil
}
