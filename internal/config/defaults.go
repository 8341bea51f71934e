package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches defaults/flappy.yaml
// and is used when the embedded file cannot be decoded.
func Default() Config {
	return Config{
		Playfield: Playfield{
			Width:  800,
			Height: 600,
		},
		Physics: Physics{
			Gravity:         1800,
			FlapVelocity:    -520,
			MaxUpVelocity:   -800,
			MaxDownVelocity: 900,
			ScrollSpeed:     320,
		},
		Player: Player{
			StartX:     200, // a quarter of the width
			StartY:     300, // half the height
			HalfExtent: 32,
		},
		Obstacles: Obstacles{
			Width:       64,
			MinGap:      140,
			MaxGap:      220,
			Margin:      50,
			MinInterval: 1.0,
			MaxInterval: 1.8,
		},
		Audio: Audio{
			Muted:      false,
			Volume:     0.5,
			SampleRate: 44100,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
