// Package config provides YAML-based game configuration loading, validation
// and difficulty presets for the platformer.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// PlatformerConfig contains all configuration for the platformer.
type PlatformerConfig struct {
	Canvas    CanvasConfig     `yaml:"canvas"`
	Physics   PhysicsConfig    `yaml:"physics"`
	Player    PlayerConfig     `yaml:"player"`
	Target    TargetConfig     `yaml:"target"`
	Platforms []PlatformConfig `yaml:"platforms"`
	Colors    ColorsConfig     `yaml:"colors"`
	Message   MessageConfig    `yaml:"message"`
	Input     InputConfig      `yaml:"input"`
}

// CanvasConfig defines the world bounds in pixels.
type CanvasConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	BorderWidth float64 `yaml:"border_width"`
}

// PhysicsConfig defines the environment constants.
type PhysicsConfig struct {
	Gravity  float64 `yaml:"gravity"`  // Added to vertical velocity every frame
	Friction float64 `yaml:"friction"` // Horizontal velocity multiplier per frame
}

// PlayerConfig defines the player's spawn box and movement speed.
type PlayerConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
}

// TargetConfig defines the goal zone.
type TargetConfig struct {
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	LineWidth float64 `yaml:"line_width"`
}

// PlatformConfig defines one platform. A zero speed range makes it static.
type PlatformConfig struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	SpeedMin float64 `yaml:"speed_min"`
	SpeedMax float64 `yaml:"speed_max"`
}

// Static reports whether the platform never patrols.
func (p PlatformConfig) Static() bool {
	return p.SpeedMin == 0 && p.SpeedMax == 0
}

// ColorsConfig names the palette entry for each drawn element.
type ColorsConfig struct {
	Border   string `yaml:"border"`
	Player   string `yaml:"player"`
	Target   string `yaml:"target"`
	Platform string `yaml:"platform"`
}

// Palette is the resolved form of ColorsConfig.
type Palette struct {
	Border   core.Color
	Player   core.Color
	Target   core.Color
	Platform core.Color
}

// Palette resolves color names. Call Validate first; unknown names map to ColorDefault.
func (c ColorsConfig) Palette() Palette {
	border, _ := core.ParseColor(c.Border)
	player, _ := core.ParseColor(c.Player)
	target, _ := core.ParseColor(c.Target)
	platform, _ := core.ParseColor(c.Platform)
	return Palette{Border: border, Player: player, Target: target, Platform: platform}
}

// MessageConfig holds the text shown on reaching the target.
type MessageConfig struct {
	Text string `yaml:"text"`
}

// InputConfig tunes how edge-only key events are turned into held input.
type InputConfig struct {
	HoldTicks int `yaml:"hold_ticks"`
}

// Validate checks that the configuration describes a playable world.
func (c PlatformerConfig) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return invalid("canvas size must be positive, got %vx%v", c.Canvas.Width, c.Canvas.Height)
	}
	if c.Physics.Gravity < 0 {
		return invalid("physics.gravity must not be negative, got %v", c.Physics.Gravity)
	}
	if c.Physics.Friction < 0 || c.Physics.Friction > 1 {
		return invalid("physics.friction must be within [0, 1], got %v", c.Physics.Friction)
	}

	p := c.Player
	if p.Width <= 0 || p.Height <= 0 {
		return invalid("player size must be positive, got %vx%v", p.Width, p.Height)
	}
	if p.Width > c.Canvas.Width || p.Height > c.Canvas.Height {
		return invalid("player %vx%v does not fit the canvas", p.Width, p.Height)
	}
	if p.Speed <= 0 {
		return invalid("player.speed must be positive, got %v", p.Speed)
	}

	if c.Target.Width <= 0 || c.Target.Height <= 0 {
		return invalid("target size must be positive, got %vx%v", c.Target.Width, c.Target.Height)
	}

	if len(c.Platforms) == 0 {
		return invalid("at least one platform is required")
	}
	for i, pl := range c.Platforms {
		if pl.Width <= 0 || pl.Height <= 0 {
			return invalid("platforms[%d] size must be positive, got %vx%v", i, pl.Width, pl.Height)
		}
		if pl.SpeedMin < 0 || pl.SpeedMax < pl.SpeedMin {
			return invalid("platforms[%d] speed range [%v, %v) is not valid", i, pl.SpeedMin, pl.SpeedMax)
		}
	}

	for name, v := range map[string]string{
		"border":   c.Colors.Border,
		"player":   c.Colors.Player,
		"target":   c.Colors.Target,
		"platform": c.Colors.Platform,
	} {
		if _, ok := core.ParseColor(v); !ok {
			return invalid("colors.%s: unknown color %q", name, v)
		}
	}

	if c.Message.Text == "" {
		return invalid("message.text must not be empty")
	}
	if c.Input.HoldTicks < 1 {
		return invalid("input.hold_ticks must be at least 1, got %d", c.Input.HoldTicks)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}
