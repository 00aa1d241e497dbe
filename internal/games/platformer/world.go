// Package platformer implements a single-screen platformer: a player box
// moves under gravity, lands on a static floor and three patrolling
// platforms, and wins by reaching a target zone.
package platformer

import (
	"math/rand"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Player is the controllable box.
type Player struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
	VX, VY        float64 // Velocity in px/frame
	Speed         float64 // Horizontal speed; jump impulse is twice this
	Jumping       bool
	Grounded      bool
}

// Box returns the player's bounding box.
func (p Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.Width, p.Height)
}

// Platform is a solid box that patrols horizontally between the canvas edges.
type Platform struct {
	X, Y          float64
	Width, Height float64
	VX            float64 // Patrol velocity, 0 for static platforms
}

// Box returns the platform's bounding box.
func (p Platform) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.Width, p.Height)
}

// patrol advances the platform and reverses it once an edge reaches the canvas bounds.
func (p *Platform) patrol(canvasW float64) {
	p.X += p.VX
	if p.X <= 0 || p.X+p.Width >= canvasW {
		p.VX = -p.VX
	}
}

// Environment holds the constants every frame reads.
type Environment struct {
	Gravity  float64
	Friction float64
	Width    float64 // Canvas width
	Height   float64 // Canvas height
}

// Bounds returns the canvas as a box.
func (e Environment) Bounds() core.Box {
	return core.NewBox(0, 0, e.Width, e.Height)
}

// Input is the held state of the three movement controls for one frame.
type Input struct {
	Left  bool
	Right bool
	Jump  bool
}

// InputFromFrame extracts movement controls from a platform input frame.
func InputFromFrame(f core.InputFrame) Input {
	return Input{
		Left:  f.Has(core.ActionLeft),
		Right: f.Has(core.ActionRight),
		Jump:  f.Has(core.ActionJump),
	}
}

// Overlay displays the win message.
type Overlay interface {
	ShowMessage(text string)
}

// World is the complete simulation state of one run.
type World struct {
	Env       Environment
	Player    Player
	Platforms []Platform
	Target    core.Box

	Palette         config.Palette
	BorderWidth     float64
	TargetLineWidth float64
	Message         string

	messageShown bool
}

// NewWorld builds a fresh run from cfg. Moving platforms draw their patrol
// speed from rng in platform order.
func NewWorld(cfg config.PlatformerConfig, rng *rand.Rand) *World {
	w := &World{
		Env: Environment{
			Gravity:  cfg.Physics.Gravity,
			Friction: cfg.Physics.Friction,
			Width:    cfg.Canvas.Width,
			Height:   cfg.Canvas.Height,
		},
		Player: Player{
			X:      cfg.Player.X,
			Y:      cfg.Player.Y,
			Width:  cfg.Player.Width,
			Height: cfg.Player.Height,
			Speed:  cfg.Player.Speed,
		},
		Target:          core.NewBox(cfg.Target.X, cfg.Target.Y, cfg.Target.Width, cfg.Target.Height),
		Palette:         cfg.Colors.Palette(),
		BorderWidth:     cfg.Canvas.BorderWidth,
		TargetLineWidth: cfg.Target.LineWidth,
		Message:         cfg.Message.Text,
		Platforms:       make([]Platform, 0, len(cfg.Platforms)),
	}

	for _, pc := range cfg.Platforms {
		p := Platform{X: pc.X, Y: pc.Y, Width: pc.Width, Height: pc.Height}
		if !pc.Static() {
			p.VX = pc.SpeedMin + rng.Float64()*(pc.SpeedMax-pc.SpeedMin)
		}
		w.Platforms = append(w.Platforms, p)
	}
	return w
}

// MessageShown reports whether the win message has been displayed in this run.
func (w *World) MessageShown() bool {
	return w.messageShown
}
