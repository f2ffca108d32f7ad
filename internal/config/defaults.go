package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the hard-coded Flappy configuration.
// It mirrors defaults/flappy.yaml and is used when the embedded file cannot be parsed.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Playfield: FlappyPlayfield{
			Width:        400,
			Height:       600,
			GroundHeight: 80,
		},
		Player: FlappyPlayer{
			X:      100,
			Y:      300,
			Width:  30,
			Height: 30,
		},
		Physics: FlappyPhysics{
			Gravity:     0.5,
			JumpImpulse: -8,
		},
		Obstacles: FlappyObstacles{
			Width:         52,
			GapSize:       150,
			Speed:         2,
			SpawnInterval: 1500 * time.Millisecond,
			TopMargin:     100,
			BottomMargin:  100,
		},
		Background: FlappyBackground{
			ScrollFactor: 0.5,
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     0.3,
			SampleRate: 44100,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
