package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the built-in configuration.
// It matches defaults/platformer.yaml and is used if the embedded file cannot be parsed.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Canvas: CanvasConfig{
			Width:       450,
			Height:      440,
			BorderWidth: 5,
		},
		Physics: PhysicsConfig{
			Gravity:  0.5,
			Friction: 0.8,
		},
		Player: PlayerConfig{
			X:      50,
			Y:      350,
			Width:  32,
			Height: 32,
			Speed:  5,
		},
		Target: TargetConfig{
			X:         10,
			Y:         10,
			Width:     32,
			Height:    32,
			LineWidth: 5,
		},
		Platforms: []PlatformConfig{
			{X: 0, Y: 400, Width: 450, Height: 50},
			{X: 100, Y: 300, Width: 100, Height: 10, SpeedMin: 1, SpeedMax: 3},
			{X: 200, Y: 200, Width: 100, Height: 10, SpeedMin: 1, SpeedMax: 3},
			{X: 300, Y: 100, Width: 100, Height: 10, SpeedMin: 1, SpeedMax: 3},
		},
		Colors: ColorsConfig{
			Border:   "#0f0",
			Player:   "#00f",
			Target:   "#f00",
			Platform: "#0f0",
		},
		Message: MessageConfig{
			Text: "Your keyword is 'Adventure'",
		},
		Input: InputConfig{
			HoldTicks: 8,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPlatformerYAML
}
