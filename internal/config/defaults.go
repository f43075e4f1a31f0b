package config

import (
	_ "embed"
)

//go:embed defaults/capy.yaml
var defaultCapyYAML []byte

// DefaultConfig returns the built-in configuration.
// It matches defaults/capy.yaml and is used when the embedded file cannot be parsed.
func DefaultConfig() Config {
	return Config{
		World: World{
			Width:  400,
			Height: 600,
		},
		Character: Character{
			X:      80,
			Width:  60,
			Height: 45,
		},
		Physics: Physics{
			Gravity:       0.4,
			JumpStrength:  -8,
			TiltFactor:    2,
			TiltMin:       -30,
			TiltMax:       90,
			ImpulseFrames: 10,
		},
		Obstacles: Obstacles{
			Width:         60,
			GapSize:       200,
			Speed:         1.8,
			SpawnInterval: 100,
			MinMargin:     100,
		},
		Pickups: Pickups{
			Size:      20,
			Chance:    0.8,
			PulseStep: 0.1,
		},
		Colors: Colors{
			Capybara: "#8B4513",
			Tree:     "#2F4F2F",
			Ground:   "#1A3A2E",
			Sky:      "#4A7C59",
			Water:    "#3A5A4A",
			Mist:     "#C8E6C91A",
			Heart:    "#FF1493",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultCapyYAML
}
