package platformer

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// ResettableOverlay can also take the message down again when a new run starts.
type ResettableOverlay interface {
	Overlay
	ClearMessage()
}

// Game adapts a World to the frame-driven frontends.
// It owns pausing, restarting and seeding; the World owns the physics.
type Game struct {
	cfg     config.PlatformerConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand
	world   *World
	overlay Overlay
	paused  bool
	ticks   int
}

// New creates a game for the given validated configuration.
// Call Reset before the first Step.
func New(cfg config.PlatformerConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "platformer"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Platformer"
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.PlatformerConfig {
	return g.cfg
}

// World exposes the current run's state.
func (g *Game) World() *World {
	return g.world
}

// Seed returns the seed of the last Reset.
func (g *Game) Seed() int64 {
	return g.runtime.Seed
}

// SetOverlay sets where the win message goes.
func (g *Game) SetOverlay(o Overlay) {
	g.overlay = o
}

// ResolveSeed returns seed, or the current time when seed is zero.
func ResolveSeed(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}

// Reset seeds the RNG from runtime and starts a fresh run.
// A zero seed is replaced by the current time.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	runtime.Seed = ResolveSeed(runtime.Seed)
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.newRun()
}

// newRun rebuilds the world, continuing the current RNG stream.
func (g *Game) newRun() {
	g.world = NewWorld(g.cfg, g.rng)
	g.paused = false
	g.ticks = 0
	if o, ok := g.overlay.(ResettableOverlay); ok {
		o.ClearMessage()
	}
}

// Step advances the game by one tick.
// Drawing is left to Render, which the frontend calls when it repaints.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.newRun()
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.ticks++
	g.world.Update(InputFromFrame(in))
	won := g.world.CheckWin(g.overlay)

	return core.StepResult{State: g.State(), WonThisTick: won}
}

// Render draws the current run onto dst.
func (g *Game) Render(dst core.Surface) {
	g.world.Draw(dst)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Won:    g.world != nil && g.world.MessageShown(),
		Paused: g.paused,
		Ticks:  g.ticks,
	}
}
